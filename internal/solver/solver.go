//go:generate mockgen -source=solver.go -destination=mock/mock_solver.go -package=mock

// Package solver defines the narrow contract through which the sweep drives
// the external optimization engine, and provides the default process-backed
// implementation. The rest of the application never inspects solver internals
// beyond this contract: named scalar parameters and one named vector in, one
// named scalar objective out.
package solver

import (
	"context"
	"errors"
)

// ErrNotSolved is returned by Session.Value when no successful Solve has
// completed in this session.
var ErrNotSolved = errors.New("solver: model has not been solved")

// Engine creates solver sessions. Engines must be safe for concurrent use;
// the sessions they create are not, and each session belongs to exactly one
// job for its entire lifetime.
type Engine interface {
	// Name identifies the engine for logs and the report banner.
	Name() string
	// NewSession acquires a fresh solver session. The caller owns the session
	// and must Close it on every exit path.
	NewSession(ctx context.Context) (Session, error)
}

// Session is one scoped solver conversation: load a model, populate its
// parameters, solve, read the objective, release. A Session is single-use and
// not safe for concurrent callers.
type Session interface {
	// LoadModel points the session at the externally supplied model definition.
	LoadModel(path string) error
	// SetScalar sets a named scalar parameter of the model.
	SetScalar(name string, value float64) error
	// SetVector sets a named array parameter of the model.
	SetVector(name string, values []float64) error
	// SetThreads caps the solver's internal parallelism. The sweep always
	// passes 1: parallelism is achieved at the job level and oversubscription
	// inside a job must be avoided.
	SetThreads(n int) error
	// Solve runs the solver to completion. It returns an error if the model
	// is infeasible or unbounded or the solver process fails.
	Solve(ctx context.Context) error
	// Value reads a named scalar result from the solved model.
	Value(name string) (float64, error)
	// Close releases the session and any native resources it holds. Close is
	// idempotent and must be called on every exit path.
	Close() error
}
