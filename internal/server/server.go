package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/agbru/mpl/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Server serves mplcalc's /metrics endpoint and nothing else: it exists
// purely so the Prometheus client dependency backs a real endpoint rather
// than a handler that's only ever constructed in tests.
type Server struct {
	addr     string
	metrics  *Metrics
	logger   logging.Logger
	security SecurityConfig
	httpSrv  *http.Server
}

// New builds a Server listening on addr (e.g. ":9090") once Start is
// called.
func New(addr string, logger logging.Logger) *Server {
	s := &Server{
		addr:     addr,
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.metricsMiddleware(s.handleMetrics))
	s.httpSrv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Registry exposes the server's Prometheus registry so callers can
// register additional collectors (e.g. operation counters) that should
// also be served at /metrics.
func (s *Server) Registry() *prometheus.Registry { return s.metrics.registry }

// Start runs the HTTP server until ctx is cancelled. It returns
// http.ErrServerClosed on a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.httpSrv.Shutdown(context.Background())
	}()
	s.logger.Info("metrics server listening", logging.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

// metricsMiddleware wraps next with the active-requests gauge and the
// per-path request counter, and applies the security headers every
// response on this server carries.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	wrapped := SecurityMiddleware(s.security, next)
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		wrapped(rec, r)
		s.metrics.observeRequest(r.URL.Path, statusClass(rec.status))
	}
}

// handleMetrics serves the Prometheus exposition format on GET and
// rejects every other method.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, fmt.Sprintf("method %s not allowed", r.Method), http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
