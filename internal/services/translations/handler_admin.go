package translations

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/nvalerio/phrasebook/internal/platform/requestctx"
	"github.com/nvalerio/phrasebook/internal/services/shared/httpx"
	"github.com/nvalerio/phrasebook/internal/services/translations/storage"

	apperrors "github.com/nvalerio/phrasebook/internal/platform/errors"
	platformi18n "github.com/nvalerio/phrasebook/internal/platform/i18n"
)

// keyPattern matches dotted message keys: a namespace segment followed by
// one or more key segments, all lowercase.
var keyPattern = regexp.MustCompile(`^[a-z0-9_]+(\.[a-z0-9_]+)+$`)

type overridePayload struct {
	Locale    string    `json:"locale"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toOverridePayload(override storage.Override) overridePayload {
	return overridePayload{
		Locale:    override.Locale,
		Key:       override.Key,
		Value:     override.Value,
		UpdatedBy: override.UpdatedBy,
		UpdatedAt: override.UpdatedAt,
	}
}

// adminPathLocale validates the locale path segment against the supported
// set and returns its canonical code.
func (s *Server) adminPathLocale(w http.ResponseWriter, r *http.Request) (string, bool) {
	locale := r.PathValue("locale")
	tag, ok := platformi18n.ParseTag(locale)
	if !ok {
		s.writeError(w, r, apperrors.WithMetadata(apperrors.CodeLocaleUnsupported,
			fmt.Sprintf("locale %q is not supported", locale),
			map[string]string{"locale": locale}))
		return "", false
	}
	return platformi18n.LocaleString(tag), true
}

// adminPathKey validates the key path segment format.
func (s *Server) adminPathKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.PathValue("key")
	if !keyPattern.MatchString(key) {
		s.writeError(w, r, apperrors.WithMetadata(apperrors.CodeOverrideKeyInvalid,
			fmt.Sprintf("key %q is not a dotted message key", key),
			map[string]string{"key": key}))
		return "", false
	}
	return key, true
}

// handleListOverrides returns all overrides stored for one locale.
func (s *Server) handleListOverrides(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.adminPathLocale(w, r)
	if !ok {
		return
	}
	if s.store == nil {
		s.writeError(w, r, apperrors.New(apperrors.CodeStorageUnavailable, "override store is not configured"))
		return
	}

	overrides, err := s.store.ListOverrides(httpx.RequestContext(r), locale)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.CodeStorageUnavailable, "list overrides", err))
		return
	}
	payload := make([]overridePayload, 0, len(overrides))
	for _, override := range overrides {
		payload = append(payload, toOverridePayload(override))
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"locale":    locale,
		"overrides": payload,
	})
}

// handlePutOverride creates or replaces one override value.
func (s *Server) handlePutOverride(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.adminPathLocale(w, r)
	if !ok {
		return
	}
	key, ok := s.adminPathKey(w, r)
	if !ok {
		return
	}
	if s.store == nil {
		s.writeError(w, r, apperrors.New(apperrors.CodeStorageUnavailable, "override store is not configured"))
		return
	}

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.CodeOverrideValueEmpty, "decode request body", err))
		return
	}
	if strings.TrimSpace(body.Value) == "" {
		s.writeError(w, r, apperrors.New(apperrors.CodeOverrideValueEmpty, "override value must not be empty"))
		return
	}

	override := storage.Override{
		Locale:    locale,
		Key:       key,
		Value:     body.Value,
		UpdatedBy: requestctx.EditorFromContext(httpx.RequestContext(r)),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.UpsertOverride(httpx.RequestContext(r), override); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.CodeStorageUnavailable, "store override", err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toOverridePayload(override))
}

// handleDeleteOverride removes one override.
func (s *Server) handleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.adminPathLocale(w, r)
	if !ok {
		return
	}
	key, ok := s.adminPathKey(w, r)
	if !ok {
		return
	}
	if s.store == nil {
		s.writeError(w, r, apperrors.New(apperrors.CodeStorageUnavailable, "override store is not configured"))
		return
	}

	err := s.store.DeleteOverride(httpx.RequestContext(r), locale, key)
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, r, apperrors.WithMetadata(apperrors.CodeOverrideNotFound,
			fmt.Sprintf("no override for %s/%s", locale, key),
			map[string]string{"locale": locale, "key": key}))
		return
	}
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.CodeStorageUnavailable, "delete override", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
