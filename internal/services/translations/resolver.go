package translations

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/text/language"

	"github.com/nvalerio/phrasebook/internal/platform/i18n/catalog"
	"github.com/nvalerio/phrasebook/internal/services/translations/storage"
)

// Resolver answers message lookups by layering stored overrides over the
// embedded catalog bundle. Lookups never fail: a missing message falls
// back to the base locale and finally to the key itself.
type Resolver struct {
	bundle    *catalog.Bundle
	overrides storage.OverrideStore
}

// NewResolver builds a resolver. The override store may be nil, in which
// case only the embedded bundle serves lookups.
func NewResolver(bundle *catalog.Bundle, overrides storage.OverrideStore) *Resolver {
	if bundle == nil {
		bundle = catalog.Default()
	}
	return &Resolver{bundle: bundle, overrides: overrides}
}

// Message returns the message for a key in the given locale. Resolution
// order: stored override for the locale, embedded catalog (which falls
// back to the base locale), then the key itself.
func (r *Resolver) Message(ctx context.Context, tag language.Tag, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	locale := tag.String()
	if r.overrides != nil {
		override, err := r.overrides.GetOverride(ctx, locale, key)
		if err == nil {
			return override.Value
		}
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("override lookup locale=%s key=%s: %v", locale, key, err)
		}
	}
	if value, ok := r.bundle.Message(locale, key); ok {
		return value
	}
	return key
}

// NamespaceDocument returns the flat key/value document for one namespace,
// along with the locale that satisfied the request. Overrides stored for
// the served locale replace catalog values; overrides for keys absent from
// the catalog are included as long as they carry the namespace prefix.
func (r *Resolver) NamespaceDocument(ctx context.Context, tag language.Tag, namespace string) (string, map[string]string) {
	namespace = strings.TrimSpace(namespace)
	served, doc := r.bundle.NamespaceMessagesWithFallback(tag.String(), namespace)
	if r.overrides == nil || namespace == "" {
		return served, doc
	}
	overrides, err := r.overrides.ListOverrides(ctx, served)
	if err != nil {
		log.Printf("override list locale=%s: %v", served, err)
		return served, doc
	}
	for _, override := range overrides {
		if strings.HasPrefix(override.Key, namespace+".") {
			doc[override.Key] = override.Value
		}
	}
	return served, doc
}

// HasNamespace reports whether the namespace exists for the locale or the
// base locale.
func (r *Resolver) HasNamespace(tag language.Tag, namespace string) bool {
	_, doc := r.bundle.NamespaceMessagesWithFallback(tag.String(), namespace)
	return len(doc) > 0
}

// Bundle exposes the underlying catalog bundle.
func (r *Resolver) Bundle() *catalog.Bundle {
	return r.bundle
}
