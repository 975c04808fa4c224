// Package server wires configuration and lifecycle for the translations
// HTTP service.
package server

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/nvalerio/phrasebook/internal/services/shared/authtoken"
	"github.com/nvalerio/phrasebook/internal/services/translations"

	entrypoint "github.com/nvalerio/phrasebook/internal/platform/cmd"
)

// Config defines startup options for the translations service.
type Config struct {
	// HTTPAddr is the HTTP listen address.
	HTTPAddr string `env:"PHRASEBOOK_HTTP_ADDR" envDefault:"localhost:8090"`
	// DBPath locates the override database. Empty disables overrides.
	DBPath string `env:"PHRASEBOOK_DB_PATH"`
}

// ParseConfig loads configuration from the environment and flags. Flags
// win over environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "override database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the translations service and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTranslations, func(ctx context.Context) error {
		adminToken, err := authtoken.LoadConfigFromEnv(time.Now)
		if err != nil {
			return fmt.Errorf("load admin token config: %w", err)
		}
		srv, err := translations.NewServer(ctx, translations.Config{
			HTTPAddr:   cfg.HTTPAddr,
			DBPath:     cfg.DBPath,
			AdminToken: adminToken,
		})
		if err != nil {
			return err
		}
		defer srv.Close()
		return srv.ListenAndServe(ctx)
	})
}
