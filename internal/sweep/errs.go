package sweep

import "fmt"

// SolveError reports that one Worker invocation failed: the model could not be
// loaded, the solver found it infeasible or unbounded, or the solver process
// itself failed. It carries the originating Config for diagnostics. No partial
// Result accompanies a SolveError.
type SolveError struct {
	// Config is the job whose solve failed.
	Config Config
	// Cause is the underlying solver error.
	Cause error
}

// Error returns a message identifying the failed job and its cause.
func (e *SolveError) Error() string {
	return fmt.Sprintf("solve failed for alpha=%g beta=%g run=%d (seed %d): %v",
		e.Config.Alpha, e.Config.Beta, e.Config.Run, e.Config.Seed, e.Cause)
}

// Unwrap returns the underlying cause, supporting errors.Is and errors.As.
func (e *SolveError) Unwrap() error { return e.Cause }
