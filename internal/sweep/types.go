package sweep

import "time"

// Config is an immutable job descriptor for one point of the parameter sweep.
// It is created once at startup, consumed by exactly one Worker invocation,
// and never mutated.
type Config struct {
	// Alpha is the first swept economic parameter.
	Alpha float64
	// Beta is the second swept economic parameter.
	Beta float64
	// Run is the repetition index within the (Alpha, Beta) cell, in [0, Runs).
	Run int
	// Seed initializes the job's private pseudorandom generator. Seeds are
	// positional: they follow generation order, not the parameter values.
	Seed int64
}

// Result is the immutable outcome of one Worker invocation.
type Result struct {
	// Alpha echoes the job's alpha parameter.
	Alpha float64
	// Beta echoes the job's beta parameter.
	Beta float64
	// Run echoes the job's repetition index.
	Run int
	// Objective is the profit value reported by the solver.
	Objective float64
	// WorkerTime is the wall-clock time of the whole invocation: scenario
	// synthesis, solver session lifecycle, and objective readback.
	WorkerTime time.Duration
}

// Space defines the swept parameter grid. The element order of Alphas and
// Betas is significant: it fixes generation order and therefore every seed.
type Space struct {
	// Alphas are the alpha values to sweep, in sweep order.
	Alphas []float64
	// Betas are the beta values to sweep, in sweep order.
	Betas []float64
	// Runs is the number of repetitions per (alpha, beta) cell.
	Runs int
}

// Size returns the number of jobs the space enumerates.
func (s Space) Size() int {
	return len(s.Alphas) * len(s.Betas) * s.Runs
}

// Economics bundles the fixed economic and statistical constants of the model.
// It is passed explicitly into scenario synthesis and the worker rather than
// living as ambient global state, keeping jobs pure functions of their inputs.
type Economics struct {
	// Samples is the demand scenario length.
	Samples int
	// Mu is the mean of the demand distribution.
	Mu float64
	// Sigma is the standard deviation of the demand distribution.
	Sigma float64
	// Cost is the unit acquisition cost.
	Cost float64
	// Retail is the unit retail price.
	Retail float64
	// Recover is the unit salvage value for unsold stock.
	Recover float64
}
