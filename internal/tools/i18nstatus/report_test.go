package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nvalerio/phrasebook/internal/platform/i18n/catalog"
)

func TestBuildReportFindsMissingKeys(t *testing.T) {
	t.Parallel()
	report := BuildReport(catalog.Default())

	if report.BaseLocale != catalog.BaseLocale {
		t.Fatalf("base locale = %q, want %q", report.BaseLocale, catalog.BaseLocale)
	}

	var ptBR *LocaleStatus
	for i := range report.Locales {
		if report.Locales[i].Locale == "pt-BR" {
			ptBR = &report.Locales[i]
		}
		if report.Locales[i].Locale == catalog.BaseLocale {
			t.Fatal("report must not include the base locale")
		}
	}
	if ptBR == nil {
		t.Fatal("pt-BR missing from report")
	}

	var appStatus *NamespaceStatus
	for i := range ptBR.Namespaces {
		if ptBR.Namespaces[i].Namespace == "app" {
			appStatus = &ptBR.Namespaces[i]
		}
	}
	if appStatus == nil {
		t.Fatal("app namespace missing from pt-BR report")
	}
	found := false
	for _, key := range appStatus.Missing {
		if key == "app.farewell" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing = %v, want app.farewell listed", appStatus.Missing)
	}
	if ptBR.Completion >= 1 {
		t.Fatalf("completion = %f, want below 1 for a partial locale", ptBR.Completion)
	}
}

func TestBuildReportCompleteLocale(t *testing.T) {
	t.Parallel()
	report := BuildReport(catalog.Default())

	for _, locale := range report.Locales {
		if locale.Locale != "es" {
			continue
		}
		if locale.Completion != 1 {
			t.Fatalf("es completion = %f, want 1", locale.Completion)
		}
		return
	}
	t.Fatal("es missing from report")
}

func TestReportWriteJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := BuildReport(catalog.Default()).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.BaseLocale != catalog.BaseLocale {
		t.Fatalf("base locale = %q, want %q", decoded.BaseLocale, catalog.BaseLocale)
	}
}

func TestReportWriteMarkdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := BuildReport(catalog.Default()).WriteMarkdown(&buf); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# Translation status") {
		t.Fatalf("markdown missing title:\n%s", out)
	}
	if !strings.Contains(out, "app.farewell") {
		t.Fatalf("markdown missing the untranslated key:\n%s", out)
	}
}
