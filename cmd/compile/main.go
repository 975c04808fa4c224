// Command compile renders catalog sources into the flat JSON locale
// documents served to web clients.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/nvalerio/phrasebook/internal/cmd/compile"
	"github.com/nvalerio/phrasebook/internal/platform/config"
)

func main() {
	log.SetPrefix("[COMPILE] ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	cfg, err := compile.ParseConfig(fs, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	if err := compile.Run(context.Background(), cfg); err != nil {
		config.Exitf("run compilation: %v", err)
	}
}
