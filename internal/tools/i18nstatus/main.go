// Command i18nstatus reports catalog completion per locale: which base
// locale keys each translation is missing and which stale keys it carries.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nvalerio/phrasebook/internal/platform/config"
	"github.com/nvalerio/phrasebook/internal/platform/i18n/catalog"

	entrypoint "github.com/nvalerio/phrasebook/internal/platform/cmd"
)

func main() {
	fs := flag.NewFlagSet("i18nstatus", flag.ExitOnError)
	format := fs.String("format", "markdown", "output format: markdown or json")
	localesDir := fs.String("locales", "", "catalog source directory containing a locales/ tree (default: embedded catalog)")
	if err := entrypoint.ParseArgs(fs, os.Args[1:]); err != nil {
		config.Exitf("parse args: %v", err)
	}

	err := entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceStatus, func(context.Context) error {
		bundle := catalog.Default()
		if *localesDir != "" {
			loaded, err := catalog.LoadFromFS(os.DirFS(*localesDir))
			if err != nil {
				return fmt.Errorf("load catalogs: %w", err)
			}
			bundle = loaded
		}

		report := BuildReport(bundle)
		switch *format {
		case "json":
			return report.WriteJSON(os.Stdout)
		case "markdown":
			return report.WriteMarkdown(os.Stdout)
		default:
			return fmt.Errorf("unknown format %q", *format)
		}
	})
	if err != nil {
		config.Exitf("run status report: %v", err)
	}
}
