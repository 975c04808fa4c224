// Package i18n exposes the supported locale set and tag negotiation
// helpers. The supported set is derived from the embedded catalogs, so a
// locale becomes selectable by shipping its catalog files.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/nvalerio/phrasebook/internal/platform/i18n/catalog"
)

var (
	supportedTags    = loadSupportedTags()
	supportedMatcher = language.NewMatcher(supportedTags)
)

func loadSupportedTags() []language.Tag {
	locales := catalog.Default().Locales()
	tags := make([]language.Tag, 0, len(locales))

	// The base locale leads so the matcher falls back to it.
	tags = append(tags, language.MustParse(catalog.BaseLocale))
	for _, locale := range locales {
		if locale == catalog.BaseLocale {
			continue
		}
		tags = append(tags, language.MustParse(locale))
	}
	return tags
}

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses a locale value and coerces it to a supported tag.
// The bool reports whether the value named a supported language; when it
// did not, the default tag is returned.
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := supportedMatcher.Match(parsed)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[index], true
}

// MatchTags returns the best supported tag for an Accept-Language
// preference list.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, _ := supportedMatcher.Match(preferred...)
	return supportedTags[index]
}

// LocaleString returns the catalog locale identifier for a tag.
func LocaleString(tag language.Tag) string {
	return tag.String()
}
