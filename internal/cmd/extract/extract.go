// Package extract implements the message-extraction command: scan source
// for message keys and merge them into the base-locale catalog.
package extract

import (
	"context"
	"flag"
	"log"

	"github.com/nvalerio/phrasebook/internal/extract"

	entrypoint "github.com/nvalerio/phrasebook/internal/platform/cmd"
)

// Config defines options for the extraction run.
type Config struct {
	// SourceDir is the Go source tree to scan.
	SourceDir string `env:"PHRASEBOOK_EXTRACT_SOURCE" envDefault:"."`
	// LocalesDir receives merged catalog files.
	LocalesDir string `env:"PHRASEBOOK_EXTRACT_LOCALES" envDefault:"internal/platform/i18n/catalog/locales"`
	// DryRun reports keys without writing catalog files.
	DryRun bool
}

// ParseConfig loads configuration from the environment and flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.SourceDir, "source", cfg.SourceDir, "Go source tree to scan")
	fs.StringVar(&cfg.LocalesDir, "locales", cfg.LocalesDir, "catalog locales directory to merge into")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "report keys without writing catalog files")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run scans for keys and merges them into the base-locale catalog.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceExtract, func(context.Context) error {
		keys, err := extract.ScanKeys(cfg.SourceDir)
		if err != nil {
			return err
		}
		log.Printf("scanned source=%s keys=%d", cfg.SourceDir, len(keys))
		if cfg.DryRun {
			for _, key := range keys {
				log.Printf("key %s", key)
			}
			return nil
		}
		report, err := extract.MergeIntoCatalog(cfg.LocalesDir, keys)
		if err != nil {
			return err
		}
		log.Printf("merged locales=%s added=%d kept=%d", cfg.LocalesDir, report.AddedCount(), report.Kept)
		return nil
	})
}
