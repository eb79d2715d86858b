package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/docnav/internal/authnote"
	"github.com/dgallion1/docnav/internal/config"
	"github.com/dgallion1/docnav/internal/site"
	"github.com/dgallion1/docnav/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docnav.
type Server struct {
	router chi.Router
	index  *site.Index
	render *stats.Latency
	urls   authnote.URLs
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(index *site.Index, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		index:  index,
		render: stats.NewLatency(cfg.StatsWindow),
		urls:   authnote.URLs{App: cfg.AppURL, Docs: cfg.DocsURL},
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/api/tree", s.handleTree)
	r.Get("/api/nav", s.handleNav)
	r.Get("/nav", s.handleNavHTML)
	r.Get("/auth-token-note", s.handleAuthNote)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocnavAPIKey, s.log))

		r.Post("/api/reload", s.handleReload)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.index.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"pages":  snap.Pages,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
