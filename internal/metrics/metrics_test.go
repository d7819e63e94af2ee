package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/sweepcalc/internal/orchestration"
	"github.com/agbru/sweepcalc/internal/sweep"
)

// TestNew verifies that all collectors register without conflict.
func TestNew(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	if m == nil {
		t.Fatal("New returned nil")
	}

	// Touch each collector so Gather has samples to report.
	m.JobsTotal.Inc()
	m.JobFailuresTotal.Inc()
	m.SolveDuration.Observe(0.05)
	m.BatchDuration.Set(1.5)
	m.ActiveJobs.Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	want := map[string]bool{
		"sweepcalc_jobs_total":             false,
		"sweepcalc_job_failures_total":     false,
		"sweepcalc_solve_duration_seconds": false,
		"sweepcalc_batch_duration_seconds": false,
		"sweepcalc_active_jobs":            false,
	}
	for _, f := range families {
		if _, ok := want[f.GetName()]; ok {
			want[f.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("metric %s was not registered", name)
		}
	}
}

// TestInstrumentRunner verifies job accounting for both outcomes.
func TestInstrumentRunner(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	boom := errors.New("solver exploded")
	runner := orchestration.RunnerFunc(func(_ context.Context, cfg sweep.Config) (sweep.Result, error) {
		if cfg.Run == 1 {
			return sweep.Result{}, boom
		}
		return sweep.Result{Alpha: cfg.Alpha, Beta: cfg.Beta, Run: cfg.Run, Objective: 10}, nil
	})

	instrumented := InstrumentRunner(runner, m)

	if _, err := instrumented.Run(context.Background(), sweep.Config{Run: 0}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := instrumented.Run(context.Background(), sweep.Config{Run: 1}); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}

	if got := testutil.ToFloat64(m.JobsTotal); got != 2 {
		t.Errorf("JobsTotal = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.JobFailuresTotal); got != 1 {
		t.Errorf("JobFailuresTotal = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.ActiveJobs); got != 0 {
		t.Errorf("ActiveJobs after runs = %v, want 0", got)
	}
}

// TestInstrumentRunner_NilMetrics verifies the passthrough path.
func TestInstrumentRunner_NilMetrics(t *testing.T) {
	t.Parallel()

	runner := orchestration.RunnerFunc(func(context.Context, sweep.Config) (sweep.Result, error) {
		return sweep.Result{Objective: 1}, nil
	})

	instrumented := InstrumentRunner(runner, nil)
	res, err := instrumented.Run(context.Background(), sweep.Config{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Objective != 1 {
		t.Errorf("Objective = %v, want 1", res.Objective)
	}
}

// TestObserveBatch verifies the batch gauge.
func TestObserveBatch(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveBatch(2500 * time.Millisecond)
	if got := testutil.ToFloat64(m.BatchDuration); got != 2.5 {
		t.Errorf("BatchDuration = %v, want 2.5", got)
	}
}
