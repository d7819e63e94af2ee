// Package server exposes an optional HTTP listener serving the Prometheus
// metrics endpoint while a sweep is running. The listener is read-only;
// it serves /metrics and a trivial /healthz probe.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/sweepcalc/internal/logging"
)

// Timeouts applied to the listener. The endpoint serves small text payloads
// to scrapers, so these are deliberately tight.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server wraps an http.Server exposing the metrics endpoint.
type Server struct {
	httpServer *http.Server
	log        logging.Logger
}

// New creates a metrics server listening on addr and serving the metrics
// gathered from g.
//
// Parameters:
//   - addr: The listen address, e.g. ":9090".
//   - g: The Prometheus gatherer backing /metrics.
//   - security: The security settings applied to every request.
//   - log: The logger for lifecycle events.
//
// Returns:
//   - *Server: The configured, not yet started server.
func New(addr string, g prometheus.Gatherer, security SecurityConfig, log logging.Logger) *Server {
	metricsHandler := promhttp.HandlerFor(g, promhttp.HandlerOpts{})

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(security, metricsHandler.ServeHTTP))
	mux.HandleFunc("/healthz", SecurityMiddleware(security, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	}))

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		log: log,
	}
}

// Start runs the listener until Shutdown is called. It returns nil on a
// clean shutdown.
func (s *Server) Start() error {
	s.log.Info("metrics listener starting", logging.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener gracefully, waiting for in-flight scrapes up
// to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("metrics listener stopping")
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the server's root handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
