// Package telemetry exposes Prometheus metrics for the HTTP surface and
// the rule compiler.
package telemetry

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	httpDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// RulesBuilt counts successful rule builds by target class.
	RulesBuilt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rules_built_total",
		Help: "Number of when rules built",
	}, []string{"applies_to"})

	// ValidationFindings counts lint findings returned by the validator.
	ValidationFindings = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "expression_validation_findings_total",
		Help: "Number of findings reported by expression validation",
	})

	// RegistryEntries reports the size of each registry catalog.
	RegistryEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "registry_entries",
		Help: "Number of entries per registry catalog",
	}, []string{"catalog"})
)

func Init() {
	prometheus.MustRegister(httpReqs, httpDur, RulesBuilt, ValidationFindings, RegistryEntries)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}

		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(ww, r)

		httpReqs.WithLabelValues(route, r.Method, http.StatusText(ww.status)).Inc()
		httpDur.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
