package orchestration

import (
	"context"
	"io"
	"runtime"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/sweepcalc/internal/sweep"
)

// tracer instruments one span per job; it resolves to a noop tracer unless
// the process installs a trace provider.
var tracer = otel.Tracer("sweepcalc/orchestration")

// indexedConfig tags a dispatched job with its input index so results can be
// placed back in input order regardless of completion order.
type indexedConfig struct {
	index  int
	config sweep.Config
}

// ExecuteSweep runs every config through the runner on a fixed-size pool of
// workers and returns the results in input order: Results[i] always
// corresponds to configs[i], independent of which worker finished first.
//
// The call blocks until every job has completed or one has failed. Failure
// policy is fail-fast: the first error aborts the batch, outstanding jobs are
// not started, the batch context is canceled (killing in-flight solver
// processes), and already-completed results are discarded rather than
// partially reported.
//
// Parameters:
//   - ctx: The context for batch-level cancellation (operator interrupt).
//   - runner: The per-job executor.
//   - configs: The ordered, known-in-advance job set.
//   - workers: The pool size; values < 1 select the number of logical CPUs.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []sweep.Result: One result per config, in input order; nil on failure.
//   - error: The first failure observed, or nil.
func ExecuteSweep(ctx context.Context, runner Runner, configs []sweep.Config, workers int, reporter ProgressReporter, out io.Writer) ([]sweep.Result, error) {
	total := len(configs)
	if total == 0 {
		return []sweep.Result{}, nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([]sweep.Result, total)

	// Buffered to the batch size so neither workers nor the collector can
	// block on a slow display consumer.
	updates := make(chan ProgressUpdate, total)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, updates, total, out)

	completions := make(chan completion, total)

	// The collector restores input order for the update stream: completions
	// arrive in finish order, updates leave in input order.
	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		defer close(updates)
		var buffer inorderBuffer
		completed := 0
		for c := range completions {
			for _, ready := range buffer.Add(c) {
				completed++
				updates <- ProgressUpdate{
					Index:     ready.index,
					Completed: completed,
					Total:     total,
					Result:    ready.result,
				}
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan indexedConfig)
	g.Go(func() error {
		defer close(jobs)
		for i, cfg := range configs {
			select {
			case jobs <- indexedConfig{index: i, config: cfg}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for job := range jobs {
				result, err := runJob(gctx, runner, job)
				if err != nil {
					return err
				}
				results[job.index] = result
				completions <- completion{index: job.index, result: result}
			}
			return nil
		})
	}

	err := g.Wait()
	close(completions)
	collectWg.Wait()
	displayWg.Wait()

	if err != nil {
		return nil, err
	}
	return results, nil
}

// runJob executes one job under a tracing span carrying its identity.
func runJob(ctx context.Context, runner Runner, job indexedConfig) (sweep.Result, error) {
	ctx, span := tracer.Start(ctx, "sweep.job", trace.WithAttributes(
		attribute.Float64("sweep.alpha", job.config.Alpha),
		attribute.Float64("sweep.beta", job.config.Beta),
		attribute.Int("sweep.run", job.config.Run),
		attribute.Int64("sweep.seed", job.config.Seed),
	))
	defer span.End()

	result, err := runner.Run(ctx, job.config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve failed")
		return sweep.Result{}, err
	}
	span.SetStatus(codes.Ok, "")
	return result, nil
}
