// Package compile implements the catalog-compilation command: render
// catalog sources into the flat JSON documents served to clients.
package compile

import (
	"context"
	"flag"
	"log"

	"github.com/nvalerio/phrasebook/internal/bundle"

	entrypoint "github.com/nvalerio/phrasebook/internal/platform/cmd"
)

// Config defines options for the compilation run.
type Config struct {
	// SourceDir contains a locales/ catalog tree. Empty compiles the
	// embedded catalog.
	SourceDir string `env:"PHRASEBOOK_COMPILE_SOURCE"`
	// OutDir receives the compiled JSON documents.
	OutDir string `env:"PHRASEBOOK_COMPILE_OUT" envDefault:"dist/locales"`
}

// ParseConfig loads configuration from the environment and flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.SourceDir, "source", cfg.SourceDir, "catalog source directory (empty uses the embedded catalog)")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory for compiled JSON documents")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run compiles the catalog into JSON locale documents.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCompile, func(context.Context) error {
		written, err := bundle.CompileFromDir(cfg.SourceDir, cfg.OutDir)
		if err != nil {
			return err
		}
		log.Printf("compiled out=%s documents=%d", cfg.OutDir, written)
		return nil
	})
}
