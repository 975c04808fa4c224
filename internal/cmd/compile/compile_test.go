package compile

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.SourceDir != "" {
		t.Fatalf("SourceDir = %q, want empty", cfg.SourceDir)
	}
	if cfg.OutDir != "dist/locales" {
		t.Fatalf("OutDir = %q, want dist/locales", cfg.OutDir)
	}
}

func TestRunCompilesEmbeddedCatalog(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "locales")

	err := Run(context.Background(), Config{OutDir: outDir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "en-US", "app.json")); err != nil {
		t.Fatalf("compiled document missing: %v", err)
	}
}
