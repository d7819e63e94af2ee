package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// Solver process exit contract: the engine binary reads one JSON request on
// stdin and writes one JSON response on stdout. Anything on stderr is
// diagnostic only.
type solveRequest struct {
	Model   string               `json:"model"`
	Scalars map[string]float64   `json:"scalars"`
	Vectors map[string][]float64 `json:"vectors"`
	Options solveOptions         `json:"options"`
}

type solveOptions struct {
	Threads int `json:"threads"`
}

type solveResponse struct {
	Status  string             `json:"status"`
	Values  map[string]float64 `json:"values"`
	Message string             `json:"message,omitempty"`
}

// Response statuses recognized from the solver process.
const (
	statusOptimal    = "optimal"
	statusInfeasible = "infeasible"
	statusUnbounded  = "unbounded"
)

// ExecEngine is the default Engine implementation: each session drives one
// external solver process over the JSON request/response contract. Sessions
// are cheap to create; the process itself only runs during Solve.
type ExecEngine struct {
	path string
	args []string
}

// Verify interface compliance.
var _ Engine = (*ExecEngine)(nil)

// NewExecEngine creates an engine that invokes the solver binary at path with
// the given fixed arguments.
func NewExecEngine(path string, args ...string) *ExecEngine {
	return &ExecEngine{path: path, args: args}
}

// Name identifies the engine by the base name of its binary.
func (e *ExecEngine) Name() string {
	return "exec:" + filepath.Base(e.path)
}

// NewSession acquires a fresh session bound to this engine. The returned
// session is released by Close; closing it mid-solve kills the solver process.
func (e *ExecEngine) NewSession(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sessCtx, cancel := context.WithCancel(ctx)
	return &execSession{
		path:    e.path,
		args:    e.args,
		ctx:     sessCtx,
		cancel:  cancel,
		scalars: make(map[string]float64),
		vectors: make(map[string][]float64),
		threads: 1,
	}, nil
}

// execSession accumulates model parameters and runs the solver process once
// per Solve call. Each job owns its session; only Close may be called from
// another goroutine.
type execSession struct {
	path   string
	args   []string
	ctx    context.Context
	cancel context.CancelFunc

	model   string
	scalars map[string]float64
	vectors map[string][]float64
	threads int

	values map[string]float64

	mu     sync.Mutex
	closed bool
}

// isClosed reports whether Close has been called.
func (s *execSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Verify interface compliance.
var _ Session = (*execSession)(nil)

// LoadModel points the session at the model definition file.
func (s *execSession) LoadModel(path string) error {
	if s.isClosed() {
		return fmt.Errorf("solver: session is closed")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("solver: loading model %q: %w", path, err)
	}
	s.model = path
	return nil
}

// SetScalar sets a named scalar parameter of the model.
func (s *execSession) SetScalar(name string, value float64) error {
	if s.isClosed() {
		return fmt.Errorf("solver: session is closed")
	}
	s.scalars[name] = value
	return nil
}

// SetVector sets a named array parameter of the model. The slice is copied so
// that later caller mutation cannot leak into the request.
func (s *execSession) SetVector(name string, values []float64) error {
	if s.isClosed() {
		return fmt.Errorf("solver: session is closed")
	}
	copied := make([]float64, len(values))
	copy(copied, values)
	s.vectors[name] = copied
	return nil
}

// SetThreads caps the solver's internal thread count.
func (s *execSession) SetThreads(n int) error {
	if s.isClosed() {
		return fmt.Errorf("solver: session is closed")
	}
	if n < 1 {
		return fmt.Errorf("solver: thread count must be at least 1, got %d", n)
	}
	s.threads = n
	return nil
}

// Solve runs the solver process to completion and stores the reported values.
func (s *execSession) Solve(ctx context.Context) error {
	if s.isClosed() {
		return fmt.Errorf("solver: session is closed")
	}
	if s.model == "" {
		return fmt.Errorf("solver: no model loaded")
	}

	request, err := json.Marshal(solveRequest{
		Model:   s.model,
		Scalars: s.scalars,
		Vectors: s.vectors,
		Options: solveOptions{Threads: s.threads},
	})
	if err != nil {
		return fmt.Errorf("solver: encoding request: %w", err)
	}

	// Closing the session mid-solve must kill the process.
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	stop := context.AfterFunc(s.ctx, cancelRun)
	defer stop()

	cmd := exec.CommandContext(runCtx, s.path, s.args...)
	cmd.Stdin = bytes.NewReader(request)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := runCtx.Err(); ctxErr != nil {
			return fmt.Errorf("solver: process aborted: %w", ctxErr)
		}
		return fmt.Errorf("solver: process failed: %w (stderr: %s)", err, stderr.String())
	}

	var response solveResponse
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return fmt.Errorf("solver: decoding response: %w", err)
	}

	switch response.Status {
	case statusOptimal:
		s.values = response.Values
		return nil
	case statusInfeasible:
		return fmt.Errorf("solver: model is infeasible: %s", response.Message)
	case statusUnbounded:
		return fmt.Errorf("solver: model is unbounded: %s", response.Message)
	default:
		return fmt.Errorf("solver: unexpected status %q: %s", response.Status, response.Message)
	}
}

// Value reads a named scalar result from the solved model.
func (s *execSession) Value(name string) (float64, error) {
	if s.values == nil {
		return 0, ErrNotSolved
	}
	v, ok := s.values[name]
	if !ok {
		return 0, fmt.Errorf("solver: result has no value named %q", name)
	}
	return v, nil
}

// Close releases the session. Idempotent; kills an in-flight solver process.
func (s *execSession) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	s.cancel()
	return nil
}
