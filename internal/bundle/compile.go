// Package bundle compiles catalog files into the flat JSON locale
// documents that web clients load at runtime.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nvalerio/phrasebook/internal/platform/i18n/catalog"
)

// Compile writes every locale/namespace pair of the bundle as
// <outDir>/<locale>/<namespace>.json with sorted keys. It returns the
// number of documents written.
func Compile(b *catalog.Bundle, outDir string) (int, error) {
	outDir = strings.TrimSpace(outDir)
	if outDir == "" {
		return 0, fmt.Errorf("output directory is required")
	}
	if b == nil {
		b = catalog.Default()
	}

	written := 0
	for _, locale := range b.Locales() {
		localeDir := filepath.Join(outDir, locale)
		if err := os.MkdirAll(localeDir, 0o755); err != nil {
			return written, fmt.Errorf("create locale directory %s: %w", locale, err)
		}
		for _, namespace := range b.Namespaces(locale) {
			doc := b.NamespaceMessages(locale, namespace)
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return written, fmt.Errorf("encode %s/%s: %w", locale, namespace, err)
			}
			data = append(data, '\n')
			target := filepath.Join(localeDir, namespace+".json")
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", target, err)
			}
			written++
		}
	}
	return written, nil
}

// CompileFromDir loads catalog sources from a directory containing a
// locales/ tree and compiles them into outDir. An empty sourceDir compiles
// the embedded catalog.
func CompileFromDir(sourceDir string, outDir string) (int, error) {
	if strings.TrimSpace(sourceDir) == "" {
		return Compile(catalog.Default(), outDir)
	}
	loaded, err := catalog.LoadFromFS(os.DirFS(sourceDir))
	if err != nil {
		return 0, fmt.Errorf("load catalogs from %s: %w", sourceDir, err)
	}
	return Compile(loaded, outDir)
}
