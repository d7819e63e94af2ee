// Package report computes the timing summary of a finished batch and renders
// the final tabular report: generated configs, per-job results, and the three
// summary lines. It holds no state; everything is a pure function of the
// batch outcome.
package report

import (
	"time"

	apperrors "github.com/agbru/sweepcalc/internal/errors"
	"github.com/agbru/sweepcalc/internal/sweep"
)

// Summary holds the timing aggregates of a successful batch.
type Summary struct {
	// BatchTime is the wall time of the whole batch, measured by the caller
	// around the orchestrator call, not summed from per-job times.
	BatchTime time.Duration
	// TotalWorkerTime is the sum of every job's WorkerTime.
	TotalWorkerTime time.Duration
	// AverageWorkerTime is TotalWorkerTime divided by the worker count.
	// The divisor is the pool size, not the job count: the figure answers
	// "how long was each worker busy", not "how long did a job take".
	AverageWorkerTime time.Duration
	// Workers is the pool size used as the average's divisor.
	Workers int
}

// Aggregate computes the batch summary from the ordered result sequence.
//
// Parameters:
//   - results: The completed results, one per config.
//   - workers: The pool size the batch ran with.
//   - batchTime: The caller-measured wall time of the orchestrator call.
//
// Returns:
//   - Summary: The timing aggregates.
//   - error: An AggregationError if results is empty or workers is not positive.
func Aggregate(results []sweep.Result, workers int, batchTime time.Duration) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, apperrors.NewAggregationError("no results to aggregate")
	}
	if workers < 1 {
		return Summary{}, apperrors.NewAggregationError("worker count must be positive, got %d", workers)
	}

	var total time.Duration
	for _, r := range results {
		total += r.WorkerTime
	}

	return Summary{
		BatchTime:         batchTime,
		TotalWorkerTime:   total,
		AverageWorkerTime: total / time.Duration(workers),
		Workers:           workers,
	}, nil
}
