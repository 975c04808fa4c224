// Package translations hosts the phrasebook HTTP surface: locale bundle
// documents for i18next-style clients, the example API endpoints, and the
// override admin API.
package translations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/nvalerio/phrasebook/internal/platform/i18n/catalog"
	"github.com/nvalerio/phrasebook/internal/platform/requestctx"
	"github.com/nvalerio/phrasebook/internal/platform/timeouts"
	"github.com/nvalerio/phrasebook/internal/services/shared/authtoken"
	"github.com/nvalerio/phrasebook/internal/services/shared/httpx"
	"github.com/nvalerio/phrasebook/internal/services/shared/i18nhttp"
	"github.com/nvalerio/phrasebook/internal/services/shared/observability"
	"github.com/nvalerio/phrasebook/internal/services/translations/storage"
	sqlitestore "github.com/nvalerio/phrasebook/internal/services/translations/storage/sqlite"

	apperrors "github.com/nvalerio/phrasebook/internal/platform/errors"
)

// Config defines startup inputs for the translations service.
type Config struct {
	// HTTPAddr is the listen address.
	HTTPAddr string
	// DBPath locates the override store. Empty disables overrides.
	DBPath string
	// AdminToken configures the admin bearer-token verifier. A zero value
	// disables the admin surface.
	AdminToken authtoken.Config
}

// Server hosts the translations HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.OverrideStore
	resolver   *Resolver
	adminToken authtoken.Config
}

// NewServer validates config and constructs a translations server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	var store storage.OverrideStore
	if strings.TrimSpace(cfg.DBPath) != "" {
		opened, err := sqlitestore.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open override store: %w", err)
		}
		store = opened
	}

	server := &Server{
		httpAddr:   httpAddr,
		store:      store,
		resolver:   NewResolver(catalog.Default(), store),
		adminToken: cfg.AdminToken,
	}
	server.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           server.handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return server, nil
}

// handler composes the route table and middleware chain.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /locales/{locale}/{file}", s.handleBundle)
	mux.HandleFunc("GET /api/greeting", s.handleGreeting)
	mux.HandleFunc("GET /api/locales", s.handleLocales)
	mux.HandleFunc("GET /api/admin/overrides/{locale}", s.requireAdmin(s.handleListOverrides))
	mux.HandleFunc("PUT /api/admin/overrides/{locale}/{key}", s.requireAdmin(s.handlePutOverride))
	mux.HandleFunc("DELETE /api/admin/overrides/{locale}/{key}", s.requireAdmin(s.handleDeleteOverride))

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		withRequestLocale(),
		observability.RequestLogger(log.Default()),
		observability.Traces("translations"),
	)
}

// Handler exposes the composed handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe serves until the context is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return errors.New("server is not configured")
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("translations listening addr=%s", s.httpAddr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// Close releases server resources.
func (s *Server) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.Close()
}

// requestTag returns the locale resolved by the middleware, falling back
// to fresh negotiation for handlers exercised without the chain.
func (s *Server) requestTag(r *http.Request) language.Tag {
	if tag, ok := requestctx.LocaleFromContext(httpx.RequestContext(r)); ok {
		return tag
	}
	tag, _ := i18nhttp.ResolveTag(r)
	return tag
}

// writeError renders a localized JSON error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	tag := s.requestTag(r)
	message := s.resolver.Message(httpx.RequestContext(r), tag, apperrors.LocalizationKey(err))
	httpx.WriteError(w, err, message)
}
