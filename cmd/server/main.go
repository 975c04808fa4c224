// Command server runs the phrasebook translations HTTP service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nvalerio/phrasebook/internal/cmd/server"
	"github.com/nvalerio/phrasebook/internal/platform/config"
)

func main() {
	log.SetPrefix("[TRANSLATIONS] ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := flag.NewFlagSet("server", flag.ExitOnError)
	cfg, err := server.ParseConfig(fs, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	if err := server.Run(ctx, cfg); err != nil {
		config.Exitf("run translations service: %v", err)
	}
}
