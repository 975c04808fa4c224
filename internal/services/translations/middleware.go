package translations

import (
	"net/http"

	"github.com/nvalerio/phrasebook/internal/platform/requestctx"
	"github.com/nvalerio/phrasebook/internal/services/shared/authtoken"
	"github.com/nvalerio/phrasebook/internal/services/shared/httpx"
	"github.com/nvalerio/phrasebook/internal/services/shared/i18nhttp"

	apperrors "github.com/nvalerio/phrasebook/internal/platform/errors"
	platformi18n "github.com/nvalerio/phrasebook/internal/platform/i18n"
)

// withRequestLocale resolves the request language once and threads the
// immutable tag through the request context. A lang query parameter that
// named a supported language is persisted as a cookie.
func withRequestLocale() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			tag, persist := i18nhttp.ResolveTag(r)
			if persist {
				i18nhttp.SetLanguageCookie(w, tag)
			}
			w.Header().Set("Content-Language", platformi18n.LocaleString(tag))
			ctx := requestctx.WithLocale(r.Context(), tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireAdmin guards a handler behind bearer-token verification. The
// verified editor identity is stored in the request context.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.adminToken.Enabled() {
			s.writeError(w, r, apperrors.New(apperrors.CodeAdminDisabled, "admin surface is not configured"))
			return
		}
		token := authtoken.FromAuthorizationHeader(r.Header.Get("Authorization"))
		claims, err := authtoken.Verify(token, s.adminToken)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		ctx := requestctx.WithEditor(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
