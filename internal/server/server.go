// Package server exposes the existential-graph engine over HTTP.
//
// The JSON API mirrors the CLI: parse notation, enumerate rule sites,
// apply a rule at a site, and manage the named graph store. Notation text
// is the only wire format for graphs.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/livalex/egraph/pkg/store"
)

// Server holds the chi router, the graph store, and the logger.
type Server struct {
	router chi.Router
	store  store.Store
	logger *log.Logger
}

// New creates a Server with all routes configured.
func New(st store.Store, logger *log.Logger) *Server {
	s := &Server{store: st, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Post("/rules/{rule}/sites", s.handleSites)
		r.Post("/rules/{rule}/apply", s.handleApply)

		r.Get("/graphs", s.handleListGraphs)
		r.Post("/graphs", s.handleSaveGraph)
		r.Get("/graphs/{name}", s.handleGetGraph)
		r.Delete("/graphs/{name}", s.handleDeleteGraph)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogger logs each request with method, path, status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
