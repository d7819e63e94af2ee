package orchestration

import (
	"context"
	"io"
	"sync"

	"github.com/agbru/sweepcalc/internal/sweep"
)

// Runner executes a single sweep job to completion. *sweep.Worker is the
// production implementation; tests substitute stubs with controlled latency
// or failure behavior.
type Runner interface {
	// Run executes the job described by cfg and returns its Result, or an
	// error if the solve failed.
	Run(ctx context.Context, cfg sweep.Config) (sweep.Result, error)
}

// RunnerFunc is a function adapter that implements Runner.
type RunnerFunc func(ctx context.Context, cfg sweep.Config) (sweep.Result, error)

// Run calls the underlying function.
func (f RunnerFunc) Run(ctx context.Context, cfg sweep.Config) (sweep.Result, error) {
	return f(ctx, cfg)
}

// ProgressUpdate reports one completed job. Updates are emitted in input
// order regardless of completion order, so Completed always equals Index+1.
type ProgressUpdate struct {
	// Index is the input index of the completed job.
	Index int
	// Completed is the number of jobs emitted so far.
	Completed int
	// Total is the batch size.
	Total int
	// Result is the completed job's result.
	Result sweep.Result
}

// ProgressReporter defines the interface for displaying batch progress.
// This interface decouples the orchestration layer from the presentation
// layer; implementations handle the visual representation (spinner, plain
// log lines) while orchestration focuses on coordinating the jobs.
type ProgressReporter interface {
	// DisplayProgress consumes updates until the channel is closed.
	// It should be called in a separate goroutine.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - updates: Channel receiving in-order completion updates.
	//   - total: The batch size.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, total int, out io.Writer)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the update channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
		// Drain channel silently
	}
}
