package translations

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nvalerio/phrasebook/internal/services/shared/httpx"

	apperrors "github.com/nvalerio/phrasebook/internal/platform/errors"
	platformi18n "github.com/nvalerio/phrasebook/internal/platform/i18n"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleBundle serves one namespace document as flat JSON for a locale.
// The path locale wins over the negotiated request locale so clients can
// fetch bundles for languages they are not currently displaying.
func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	namespace, ok := strings.CutSuffix(file, ".json")
	if !ok || strings.TrimSpace(namespace) == "" {
		http.NotFound(w, r)
		return
	}

	locale := r.PathValue("locale")
	tag, ok := platformi18n.ParseTag(locale)
	if !ok {
		s.writeError(w, r, apperrors.WithMetadata(apperrors.CodeLocaleUnsupported,
			fmt.Sprintf("locale %q is not supported", locale),
			map[string]string{"locale": locale}))
		return
	}

	if !s.resolver.HasNamespace(tag, namespace) {
		s.writeError(w, r, apperrors.WithMetadata(apperrors.CodeNamespaceUnknown,
			fmt.Sprintf("namespace %q has no messages", namespace),
			map[string]string{"namespace": namespace}))
		return
	}

	served, doc := s.resolver.NamespaceDocument(httpx.RequestContext(r), tag, namespace)
	w.Header().Set("Content-Language", served)
	_ = httpx.WriteJSON(w, http.StatusOK, doc)
}
