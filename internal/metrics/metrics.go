// Package metrics defines the Prometheus instrumentation for sweep
// execution. All collectors are registered against an explicit Registerer so
// tests can use isolated registries instead of the global default.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agbru/sweepcalc/internal/orchestration"
	"github.com/agbru/sweepcalc/internal/sweep"
)

// Metrics holds the collectors tracking sweep execution.
type Metrics struct {
	// JobsTotal counts every job attempted, successful or not.
	JobsTotal prometheus.Counter
	// JobFailuresTotal counts jobs whose solve failed.
	JobFailuresTotal prometheus.Counter
	// SolveDuration observes per-job wall time in seconds.
	SolveDuration prometheus.Histogram
	// BatchDuration records the wall time of the last completed sweep.
	BatchDuration prometheus.Gauge
	// ActiveJobs tracks the number of jobs currently executing.
	ActiveJobs prometheus.Gauge
}

// New creates the sweep collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		JobsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sweepcalc_jobs_total",
			Help: "Total number of sweep jobs attempted.",
		}),
		JobFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sweepcalc_job_failures_total",
			Help: "Total number of sweep jobs whose solve failed.",
		}),
		SolveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sweepcalc_solve_duration_seconds",
			Help:    "Wall time of individual solve jobs.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}),
		BatchDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sweepcalc_batch_duration_seconds",
			Help: "Wall time of the most recently completed sweep batch.",
		}),
		ActiveJobs: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sweepcalc_active_jobs",
			Help: "Number of sweep jobs currently executing.",
		}),
	}
}

// ObserveBatch records the wall time of a completed sweep batch.
func (m *Metrics) ObserveBatch(d time.Duration) {
	m.BatchDuration.Set(d.Seconds())
}

// InstrumentRunner wraps a Runner so that every job it executes is reflected
// in the collectors. A nil Metrics returns the runner unchanged.
func InstrumentRunner(r orchestration.Runner, m *Metrics) orchestration.Runner {
	if m == nil {
		return r
	}
	return orchestration.RunnerFunc(func(ctx context.Context, cfg sweep.Config) (sweep.Result, error) {
		m.JobsTotal.Inc()
		m.ActiveJobs.Inc()
		start := time.Now()

		result, err := r.Run(ctx, cfg)

		m.ActiveJobs.Dec()
		m.SolveDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			m.JobFailuresTotal.Inc()
		}
		return result, err
	})
}
