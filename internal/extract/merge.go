package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/nvalerio/phrasebook/internal/platform/i18n/catalog"
)

// Report summarizes one merge run.
type Report struct {
	// Added lists keys newly written to catalog files, grouped by namespace.
	Added map[string][]string
	// Kept counts keys that already existed and were left untouched.
	Kept int
}

// AddedCount returns the total number of newly written keys.
func (r Report) AddedCount() int {
	total := 0
	for _, keys := range r.Added {
		total += len(keys)
	}
	return total
}

// MergeIntoCatalog adds missing keys to the base-locale catalog files under
// localesDir. Keys are grouped by namespace into locales/<base>/<ns>.yaml;
// new keys get an empty value awaiting translation and existing values are
// never overwritten. Files are rewritten in canonical sorted order.
func MergeIntoCatalog(localesDir string, keys []string) (Report, error) {
	localesDir = strings.TrimSpace(localesDir)
	if localesDir == "" {
		return Report{}, fmt.Errorf("locales directory is required")
	}

	byNamespace := map[string][]string{}
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if !keyPattern.MatchString(key) {
			return Report{}, fmt.Errorf("key %q is not a dotted message key", key)
		}
		namespace := Namespace(key)
		byNamespace[namespace] = append(byNamespace[namespace], key)
	}

	report := Report{Added: map[string][]string{}}
	baseDir := filepath.Join(localesDir, catalog.BaseLocale)
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("create base locale directory: %w", err)
	}

	namespaces := make([]string, 0, len(byNamespace))
	for namespace := range byNamespace {
		namespaces = append(namespaces, namespace)
	}
	sort.Strings(namespaces)

	for _, namespace := range namespaces {
		filePath := filepath.Join(baseDir, namespace+".yaml")
		file, err := readCatalogFile(filePath, namespace)
		if err != nil {
			return Report{}, err
		}

		changed := false
		for _, key := range byNamespace[namespace] {
			if _, ok := file.Messages[key]; ok {
				report.Kept++
				continue
			}
			file.Messages[key] = ""
			report.Added[namespace] = append(report.Added[namespace], key)
			changed = true
		}
		if !changed {
			continue
		}
		sort.Strings(report.Added[namespace])
		if err := writeCatalogFile(filePath, file); err != nil {
			return Report{}, err
		}
	}
	return report, nil
}

// readCatalogFile loads an existing catalog file or returns an empty one
// for the base locale.
func readCatalogFile(filePath string, namespace string) (catalog.File, error) {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return catalog.File{
			Locale:    catalog.BaseLocale,
			Namespace: namespace,
			Messages:  map[string]string{},
		}, nil
	}
	if err != nil {
		return catalog.File{}, fmt.Errorf("read catalog %s: %w", filePath, err)
	}
	file, err := catalog.ParseFile(data)
	if err != nil {
		return catalog.File{}, fmt.Errorf("parse catalog %s: %w", filePath, err)
	}
	return file, nil
}

// writeCatalogFile renders a catalog file in canonical form: sorted keys,
// quoted tokens, trailing newline.
func writeCatalogFile(filePath string, file catalog.File) error {
	keys := make([]string, 0, len(file.Messages))
	for key := range file.Messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out strings.Builder
	fmt.Fprintf(&out, "locale: %s\n", strconv.Quote(file.Locale))
	fmt.Fprintf(&out, "namespace: %s\n", strconv.Quote(file.Namespace))
	out.WriteString("messages:\n")
	for _, key := range keys {
		fmt.Fprintf(&out, "  %s: %s\n", strconv.Quote(key), strconv.Quote(file.Messages[key]))
	}
	if err := os.WriteFile(filePath, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", filePath, err)
	}
	return nil
}
