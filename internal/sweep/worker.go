package sweep

import (
	"context"
	"time"

	"github.com/agbru/sweepcalc/internal/solver"
)

// Worker executes one sweep job end to end: scenario synthesis, solver
// session lifecycle, objective readback, and wall-clock timing. A Worker
// holds no per-job state, so a single Worker value is safe to share across
// any number of concurrent Run calls.
type Worker struct {
	engine solver.Engine
	model  string
	econ   Economics
}

// NewWorker creates a Worker bound to a solver engine, an external model
// definition path, and the fixed economics of the sweep.
func NewWorker(engine solver.Engine, model string, econ Economics) *Worker {
	return &Worker{engine: engine, model: model, econ: econ}
}

// Run executes the job described by cfg and returns its Result.
//
// The wall-clock timer covers everything from scenario synthesis through
// objective readback. The solver session is a scoped resource: it is released
// on every exit path, including solver failure. On any failure a *SolveError
// carrying cfg is returned and no partial Result is produced.
func (w *Worker) Run(ctx context.Context, cfg Config) (Result, error) {
	start := time.Now()

	// Private, deterministically seeded generator; never shared across jobs.
	scenario := Synthesize(cfg.Seed, w.econ)
	maxRevenue, minRevenue := Bounds(scenario, w.econ)

	session, err := w.engine.NewSession(ctx)
	if err != nil {
		return Result{}, &SolveError{Config: cfg, Cause: err}
	}
	defer session.Close()

	if err := w.populate(session, cfg, scenario, maxRevenue, minRevenue); err != nil {
		return Result{}, &SolveError{Config: cfg, Cause: err}
	}
	if err := session.Solve(ctx); err != nil {
		return Result{}, &SolveError{Config: cfg, Cause: err}
	}
	objective, err := session.Value("profit")
	if err != nil {
		return Result{}, &SolveError{Config: cfg, Cause: err}
	}

	return Result{
		Alpha:      cfg.Alpha,
		Beta:       cfg.Beta,
		Run:        cfg.Run,
		Objective:  objective,
		WorkerTime: time.Since(start),
	}, nil
}

// populate loads the model and sets every parameter the model expects.
// The solver is forced single-threaded: parallelism is already achieved at
// the job level.
func (w *Worker) populate(session solver.Session, cfg Config, scenario []float64, maxRevenue, minRevenue float64) error {
	if err := session.LoadModel(w.model); err != nil {
		return err
	}

	scalars := []struct {
		name  string
		value float64
	}{
		{"samples", float64(w.econ.Samples)},
		{"cost", w.econ.Cost},
		{"recover", w.econ.Recover},
		{"retail", w.econ.Retail},
		{"minRevenue", minRevenue},
		{"maxRevenue", maxRevenue},
		{"alpha", cfg.Alpha},
		{"beta", cfg.Beta},
	}
	for _, s := range scalars {
		if err := session.SetScalar(s.name, s.value); err != nil {
			return err
		}
	}
	if err := session.SetVector("demand", scenario); err != nil {
		return err
	}
	return session.SetThreads(1)
}
