package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/PolicyLens/internal/infrastructure/monitoring/prometheus"
)

// MetricsMiddleware records request counts, durations, and in-flight gauges.
type MetricsMiddleware struct {
	metrics *prometheus.AppMetrics
}

// NewMetricsMiddleware creates a new metrics middleware.
func NewMetricsMiddleware(metrics *prometheus.AppMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handler returns the middleware handler function.  The route pattern rather
// than the raw path is used as the label so cardinality stays bounded.
func (m *MetricsMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		m.metrics.HTTPActiveRequests.WithLabelValues(r.Method).Inc()
		defer m.metrics.HTTPActiveRequests.WithLabelValues(r.Method).Dec()

		wrapped := newWrappedResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		pattern := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				pattern = p
			}
		}

		m.metrics.HTTPRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(wrapped.statusCode)).Inc()
		m.metrics.HTTPRequestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
	})
}

//Personal.AI order the ending
