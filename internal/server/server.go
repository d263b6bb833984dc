package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/config"
	"github.com/ondernemersloket/loket/internal/database"
	"github.com/ondernemersloket/loket/internal/match"
	"github.com/ondernemersloket/loket/internal/notifier"
)

// Server is the portal HTTP API. It serves the catalog matching
// endpoints, the profile store and the websocket notification feed.
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	programs []catalog.Program
	db       *database.DB
	hub      *notifier.Hub

	matcher  match.FacetMatcher
	scorer   match.Scorer
	sessions *sessionStore
}

// New builds a server from the loaded configuration and catalog.
func New(cfg *config.Config, log *zap.Logger, programs []catalog.Program, db *database.DB, hub *notifier.Hub) (*Server, error) {
	matcher, ok := match.NewFacetMatcher(cfg.Matching.FacetMatcher)
	if !ok {
		return nil, fmt.Errorf("unknown facet matcher: %s", cfg.Matching.FacetMatcher)
	}
	scorer, ok := match.NewScorer(cfg.Matching.Scorer)
	if !ok {
		return nil, fmt.Errorf("unknown scorer: %s", cfg.Matching.Scorer)
	}

	return &Server{
		cfg:      cfg,
		log:      log,
		programs: programs,
		db:       db,
		hub:      hub,
		matcher:  matcher,
		scorer:   scorer,
		sessions: newSessionStore(),
	}, nil
}

// Router assembles the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/api/login", s.handleLogin)
	r.Get("/api/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/api/logout", s.handleLogout)
		r.Get("/api/programs", s.handlePrograms)
		r.Get("/api/summary", s.handleSummary)
		r.Get("/api/profile", s.handleGetProfile)
		r.Put("/api/profile", s.handlePutProfile)
		r.Post("/api/programs/{name}/apply", s.handleApply)
		r.Get("/api/applications", s.handleApplications)
		r.Get("/api/opportunities", s.handleOpportunities)
	})

	r.Get("/ws", s.handleWebsocket)

	return r
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("server listening", zap.String("addr", s.cfg.Server.Addr))
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
