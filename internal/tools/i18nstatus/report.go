package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nvalerio/phrasebook/internal/platform/i18n/catalog"
)

// NamespaceStatus summarizes one namespace of one locale against the base
// locale.
type NamespaceStatus struct {
	Namespace  string   `json:"namespace"`
	Translated int      `json:"translated"`
	Missing    []string `json:"missing,omitempty"`
	Extra      []string `json:"extra,omitempty"`
}

// LocaleStatus summarizes one locale.
type LocaleStatus struct {
	Locale     string            `json:"locale"`
	Namespaces []NamespaceStatus `json:"namespaces"`
	Translated int               `json:"translated"`
	Total      int               `json:"total"`
	Completion float64           `json:"completion"`
}

// Report is the full catalog completion report.
type Report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []LocaleStatus `json:"locales"`
}

// BuildReport compares every non-base locale against the base locale.
func BuildReport(b *catalog.Bundle) Report {
	if b == nil {
		b = catalog.Default()
	}
	report := Report{BaseLocale: catalog.BaseLocale}

	baseNamespaces := b.Namespaces(catalog.BaseLocale)
	for _, locale := range b.Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		status := LocaleStatus{Locale: locale}
		for _, namespace := range baseNamespaces {
			base := b.NamespaceMessages(catalog.BaseLocale, namespace)
			translated := b.NamespaceMessages(locale, namespace)
			ns := NamespaceStatus{Namespace: namespace}
			for key := range base {
				if value, ok := translated[key]; ok && strings.TrimSpace(value) != "" {
					ns.Translated++
				} else {
					ns.Missing = append(ns.Missing, key)
				}
			}
			for key := range translated {
				if _, ok := base[key]; !ok {
					ns.Extra = append(ns.Extra, key)
				}
			}
			sort.Strings(ns.Missing)
			sort.Strings(ns.Extra)
			status.Translated += ns.Translated
			status.Total += len(base)
			status.Namespaces = append(status.Namespaces, ns)
		}
		if status.Total > 0 {
			status.Completion = float64(status.Translated) / float64(status.Total)
		}
		report.Locales = append(report.Locales, status)
	}
	return report
}

// WriteJSON renders the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// WriteMarkdown renders the report as a markdown summary with one table
// per locale.
func (r Report) WriteMarkdown(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# Translation status\n\nBase locale: %s\n", r.BaseLocale); err != nil {
		return err
	}
	for _, locale := range r.Locales {
		fmt.Fprintf(w, "\n## %s: %.0f%% complete (%d/%d)\n\n", locale.Locale, locale.Completion*100, locale.Translated, locale.Total)
		fmt.Fprintln(w, "| Namespace | Translated | Missing | Extra |")
		fmt.Fprintln(w, "| --- | --- | --- | --- |")
		for _, ns := range locale.Namespaces {
			fmt.Fprintf(w, "| %s | %d | %d | %d |\n", ns.Namespace, ns.Translated, len(ns.Missing), len(ns.Extra))
		}
		for _, ns := range locale.Namespaces {
			for _, key := range ns.Missing {
				fmt.Fprintf(w, "- missing: `%s`\n", key)
			}
			for _, key := range ns.Extra {
				fmt.Fprintf(w, "- extra: `%s`\n", key)
			}
		}
	}
	return nil
}
