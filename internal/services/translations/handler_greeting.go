package translations

import (
	"net/http"

	"github.com/nvalerio/phrasebook/internal/services/shared/httpx"
)

// handleGreeting returns the localized greeting for the negotiated locale.
// The serving locale travels in the Content-Language header.
func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	tag := s.requestTag(r)
	payload := map[string]string{
		"message": s.resolver.Message(httpx.RequestContext(r), tag, "app.greeting"),
	}
	_ = httpx.WriteJSON(w, http.StatusOK, payload)
}
