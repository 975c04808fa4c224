// Command extract scans Go source for message keys and merges them into
// the base-locale catalog files.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/nvalerio/phrasebook/internal/cmd/extract"
	"github.com/nvalerio/phrasebook/internal/platform/config"
)

func main() {
	log.SetPrefix("[EXTRACT] ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	cfg, err := extract.ParseConfig(fs, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	if err := extract.Run(context.Background(), cfg); err != nil {
		config.Exitf("run extraction: %v", err)
	}
}
