// Package sweep implements the parameter-sweep domain: deterministic
// enumeration of job configurations, seeded synthesis of stochastic demand
// scenarios, and the per-job worker that hands one scenario to the external
// optimization solver and times the whole exchange.
//
// Every job is a pure function of its Config and the immutable Economics
// value; no shared mutable state exists between jobs, so any number of Worker
// invocations may run concurrently.
package sweep
