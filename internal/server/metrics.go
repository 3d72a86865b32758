// Package server exposes a small HTTP server for mplcalc's /metrics
// endpoint, grounded on the teacher's internal/server package shape.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors served at /metrics plus the
// handler built from them.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	activeRequests  prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
}

// NewMetrics builds a fresh registry (not the global DefaultRegisterer, so
// multiple Metrics instances can coexist in tests) and registers the
// handler-level counters on it, alongside the standard Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		activeRequests: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "mpl_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mpl_requests_total",
			Help: "Total number of HTTP requests served, by path and status class.",
		}, []string{"path", "status"}),
	}
	// Create one series up front so mpl_requests_total is exported before
	// the first request has been observed.
	m.requestsTotal.WithLabelValues("/metrics", "2xx")
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests records the start of a request being served.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests records the end of a request being served.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// observeRequest records a completed request's path and status class.
func (m *Metrics) observeRequest(path, statusClass string) {
	m.requestsTotal.WithLabelValues(path, statusClass).Inc()
}

// WritePrometheus renders the current metrics in the Prometheus text
// exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
