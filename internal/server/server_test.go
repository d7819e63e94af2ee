package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/sweepcalc/internal/logging"
	"github.com/agbru/sweepcalc/internal/metrics"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.JobsTotal.Inc()
	return New("127.0.0.1:0", reg, DefaultSecurityConfig(), logging.NewLogger(io.Discard, "server"))
}

// TestNew tests the server constructor.
func TestNew(t *testing.T) {
	s := testServer(t)

	if s == nil {
		t.Fatal("New returned nil")
	}
	if s.httpServer == nil {
		t.Error("Server.httpServer should be initialized")
	}
	if s.Handler() == nil {
		t.Error("Server.Handler() should not be nil")
	}
}

// TestServer_MetricsEndpoint tests the Prometheus metrics endpoint.
func TestServer_MetricsEndpoint(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	body := rec.Body.String()

	t.Run("Contains jobs metric", func(t *testing.T) {
		if !strings.Contains(body, "sweepcalc_jobs_total") {
			t.Error("metrics output should contain sweepcalc_jobs_total")
		}
	})

	t.Run("Security headers are set", func(t *testing.T) {
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("metrics responses should carry security headers")
		}
	})
}

// TestServer_HealthEndpoint tests the liveness probe.
func TestServer_HealthEndpoint(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q, want it to contain %q", rec.Body.String(), "ok")
	}
}
