// Package http provides the HTTP interface layer: router, server, and the
// middleware/handler wiring.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/PolicyLens/internal/interfaces/http/handlers"
	"github.com/turtacn/PolicyLens/internal/interfaces/http/middleware"
)

// RouterConfig aggregates all handler and middleware dependencies required to
// construct the complete HTTP route tree.
type RouterConfig struct {
	// Handlers
	AnalysisHandler *handlers.AnalysisHandler
	HealthHandler   *handlers.HealthHandler

	// Middleware
	CORSMiddleware    *middleware.CORSMiddleware
	LoggingMiddleware *middleware.LoggingMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware

	// Infrastructure
	MetricsCollector prometheus.MetricsCollector
}

// NewRouter constructs the complete HTTP route tree from the given
// configuration.  Nil handlers and middleware are simply skipped.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.CORSMiddleware != nil {
		r.Use(cfg.CORSMiddleware.Handler)
	}
	if cfg.LoggingMiddleware != nil {
		r.Use(cfg.LoggingMiddleware.Handler)
	}
	if cfg.MetricsMiddleware != nil {
		r.Use(cfg.MetricsMiddleware.Handler)
	}

	// Public health endpoints.
	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}

	// Metrics exposition; expected to sit behind an internal firewall rule.
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		registerAnalysisRoutes(api, cfg.AnalysisHandler)
	})

	return r
}

// registerAnalysisRoutes mounts the analysis endpoints.
func registerAnalysisRoutes(r chi.Router, h *handlers.AnalysisHandler) {
	if h == nil {
		return
	}
	r.Post("/analyze", h.Analyze)
	r.Get("/clauses", h.ListClauses)
	r.Get("/market/compare", h.CompareMarket)

	r.Route("/assessments", func(ar chi.Router) {
		ar.Get("/", h.List)
		ar.Get("/{assessmentID}", h.Get)
	})
}

//Personal.AI order the ending
