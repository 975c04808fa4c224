package translations

import (
	"net/http"
	"strings"

	"github.com/nvalerio/phrasebook/internal/services/shared/httpx"
	"github.com/nvalerio/phrasebook/internal/services/shared/i18nhttp"

	platformi18n "github.com/nvalerio/phrasebook/internal/platform/i18n"
)

type localeInfo struct {
	Code       string   `json:"code"`
	Label      string   `json:"label"`
	Namespaces []string `json:"namespaces"`
}

type localesResponse struct {
	Default string       `json:"default"`
	Locales []localeInfo `json:"locales"`
}

// handleLocales lists the supported locales with display labels localized
// to the request language.
func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	requestTag := s.requestTag(r)

	response := localesResponse{Default: platformi18n.LocaleString(i18nhttp.Default())}
	for _, tag := range i18nhttp.Supported() {
		code := platformi18n.LocaleString(tag)
		response.Locales = append(response.Locales, localeInfo{
			Code:       code,
			Label:      s.resolver.Message(ctx, requestTag, labelKey(code)),
			Namespaces: s.resolver.Bundle().Namespaces(code),
		})
	}
	_ = httpx.WriteJSON(w, http.StatusOK, response)
}

// labelKey maps a locale code to its display-label message key.
func labelKey(code string) string {
	normalized := strings.ToLower(strings.ReplaceAll(code, "-", "_"))
	return "core.lang_" + normalized
}
