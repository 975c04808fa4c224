package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultTagIsAmericanEnglish(t *testing.T) {
	t.Parallel()

	if got := DefaultTag(); got != language.AmericanEnglish {
		t.Fatalf("DefaultTag = %v, want %v", got, language.AmericanEnglish)
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value  string
		want   language.Tag
		wantOK bool
	}{
		{"es", language.Spanish, true},
		{"pt-BR", language.BrazilianPortuguese, true},
		{"pt", language.BrazilianPortuguese, true},
		{"en", language.AmericanEnglish, true},
		{"en-US", language.AmericanEnglish, true},
		{"zz-bogus", language.AmericanEnglish, false},
		{"", language.AmericanEnglish, false},
	}
	for _, tc := range cases {
		got, ok := ParseTag(tc.value)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseTag(%q) = %v, %v, want %v, %v", tc.value, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMatchTagsPrefersListedLanguage(t *testing.T) {
	t.Parallel()

	got := MatchTags([]language.Tag{language.French, language.Spanish})
	if got != language.Spanish {
		t.Fatalf("MatchTags = %v, want %v", got, language.Spanish)
	}
}

func TestMatchTagsEmptyFallsBack(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want default", got)
	}
}

func TestSupportedTagsCopyIsIsolated(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	if len(tags) < 3 {
		t.Fatalf("len(SupportedTags) = %d, want >= 3", len(tags))
	}
	tags[0] = language.French
	if DefaultTag() == language.French {
		t.Fatal("mutating the returned slice changed package state")
	}
}
