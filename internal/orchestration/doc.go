// Package orchestration coordinates the parallel execution of sweep jobs.
// It fans a fixed, known-in-advance job set out over a bounded pool of
// workers, fans the results back in preserving input order, and aborts the
// whole batch on the first failure.
//
// Ordering is only reimposed at collection time: jobs share no state while
// running, so no locking or cross-job coordination happens during execution.
package orchestration
