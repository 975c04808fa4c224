// Package requestctx carries immutable request-scoped values through context.
//
// The locale is derived once per request by the locale middleware and read
// by handlers; nothing mutates process-global language state.
package requestctx

import (
	"context"

	"golang.org/x/text/language"
)

// localeContextKey is the context key for the resolved request locale.
type localeContextKey struct{}

// WithLocale stores the resolved locale tag in context.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey{}, tag)
}

// LocaleFromContext returns the locale stored in context.
// The bool reports whether a locale was resolved for this request.
func LocaleFromContext(ctx context.Context) (language.Tag, bool) {
	if ctx == nil {
		return language.Und, false
	}
	tag, ok := ctx.Value(localeContextKey{}).(language.Tag)
	if !ok {
		return language.Und, false
	}
	return tag, true
}
