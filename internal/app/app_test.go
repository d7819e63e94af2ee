package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/agbru/sweepcalc/internal/config"
	apperrors "github.com/agbru/sweepcalc/internal/errors"
	"github.com/agbru/sweepcalc/internal/logging"
	"github.com/agbru/sweepcalc/internal/solver"
	"github.com/agbru/sweepcalc/internal/sweep"
)

// stubEngine is a solver.Engine returning canned sessions, so application
// tests run without an external solver binary.
type stubEngine struct {
	objective float64
	solveErr  error
}

func (e *stubEngine) Name() string { return "stub" }

func (e *stubEngine) NewSession(ctx context.Context) (solver.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &stubSession{engine: e}, nil
}

type stubSession struct {
	engine *stubEngine
	solved bool
}

func (s *stubSession) LoadModel(string) error            { return nil }
func (s *stubSession) SetScalar(string, float64) error   { return nil }
func (s *stubSession) SetVector(string, []float64) error { return nil }
func (s *stubSession) SetThreads(int) error              { return nil }
func (s *stubSession) Close() error                      { return nil }

func (s *stubSession) Solve(context.Context) error {
	if s.engine.solveErr != nil {
		return s.engine.solveErr
	}
	s.solved = true
	return nil
}

func (s *stubSession) Value(string) (float64, error) {
	if !s.solved {
		return 0, solver.ErrNotSolved
	}
	return s.engine.objective, nil
}

// syncBuffer serializes writes so the spinner goroutine and the report can
// share one capture buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newTestApp builds an application over the stub engine with quiet logging.
func newTestApp(t *testing.T, args []string, engine solver.Engine) *Application {
	t.Helper()
	argv := append([]string{"sweepcalc"}, args...)
	a, err := New(argv, io.Discard,
		WithEngine(engine),
		WithLogger(logging.NewLogger(io.Discard, "test")))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func TestNew_ParsesArguments(t *testing.T) {
	a := newTestApp(t, []string{"-workers", "2", "-solver", "/opt/lp"}, &stubEngine{})

	if got, want := a.Config.Workers, 2; got != want {
		t.Errorf("Config.Workers = %d, want %d", got, want)
	}
	if got, want := a.Config.SolverPath, "/opt/lp"; got != want {
		t.Errorf("Config.SolverPath = %q, want %q", got, want)
	}
}

func TestNew_InvalidFlag(t *testing.T) {
	if _, err := New([]string{"sweepcalc", "-frobnicate"}, io.Discard); err == nil {
		t.Error("New() with an unknown flag should fail")
	}
}

func TestNew_HelpFlag(t *testing.T) {
	_, err := New([]string{"sweepcalc", "-h"}, io.Discard)
	if err == nil || !IsHelpError(err) {
		t.Errorf("New(-h) error = %v, want a help error", err)
	}
}

func TestNew_DefaultEngine(t *testing.T) {
	a, err := New([]string{"sweepcalc", "-solver", "/opt/lp"}, io.Discard,
		WithLogger(logging.NewLogger(io.Discard, "test")))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, want := a.Engine.Name(), "exec:lp"; got != want {
		t.Errorf("Engine.Name() = %q, want %q", got, want)
	}
}

func TestRun_EndToEnd(t *testing.T) {
	a := newTestApp(t, []string{"-w", "2", "-no-color"}, &stubEngine{objective: 812.5})

	var out syncBuffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d\noutput:\n%s", code, apperrors.ExitSuccess, out.String())
	}

	output := out.String()
	for _, s := range []string{
		"Execution Configuration",
		"Generated Configs",
		"Sweep Results",
		"Timing Summary",
		"812.50",
		"(over 2 workers)",
	} {
		if !strings.Contains(output, s) {
			t.Errorf("Run() output should contain %q, got:\n%s", s, output)
		}
	}

	// 2 alphas x 2 betas x 3 runs from the default space.
	if got, want := strings.Count(output, "812.50"), 12; got != want {
		t.Errorf("Run() printed %d result rows, want %d", got, want)
	}
}

func TestRun_QuietStillReports(t *testing.T) {
	a := newTestApp(t, []string{"-q", "-no-color", "-w", "2"}, &stubEngine{objective: 10})

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d", code, apperrors.ExitSuccess)
	}

	output := out.String()
	if strings.Contains(output, "Starting Sweep") {
		t.Error("quiet mode should suppress the execution banner")
	}
	for _, s := range []string{"Generated Configs", "Sweep Results", "Timing Summary"} {
		if !strings.Contains(output, s) {
			t.Errorf("quiet output should still contain %q, got:\n%s", s, output)
		}
	}
}

func TestRun_SolveFailure(t *testing.T) {
	a := newTestApp(t, []string{"-q", "-w", "2"}, &stubEngine{solveErr: errors.New("infeasible")})

	var errOut bytes.Buffer
	a.ErrWriter = &errOut

	code := a.Run(context.Background(), io.Discard)
	if code != apperrors.ExitErrorSolve {
		t.Fatalf("Run() = %d, want %d", code, apperrors.ExitErrorSolve)
	}
	if !strings.Contains(errOut.String(), "solve failed") {
		t.Errorf("stderr should describe the failed config, got %q", errOut.String())
	}
}

func TestRun_Canceled(t *testing.T) {
	a := newTestApp(t, []string{"-q"}, &stubEngine{objective: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := a.Run(ctx, io.Discard)
	if code != apperrors.ExitErrorCanceled {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Nil", err: nil, want: apperrors.ExitSuccess},
		{name: "Canceled", err: context.Canceled, want: apperrors.ExitErrorCanceled},
		{name: "Deadline", err: context.DeadlineExceeded, want: apperrors.ExitErrorCanceled},
		{name: "Config", err: apperrors.NewConfigError("bad space"), want: apperrors.ExitErrorConfig},
		{
			name: "Solve",
			err:  &sweep.SolveError{Config: sweep.Config{Alpha: 0.7}, Cause: errors.New("infeasible")},
			want: apperrors.ExitErrorSolve,
		},
		{name: "Generic", err: errors.New("boom"), want: apperrors.ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeForError(tt.err); got != tt.want {
				t.Errorf("exitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "Long form", args: []string{"--version"}, want: true},
		{name: "Short form", args: []string{"-version"}, want: true},
		{name: "Absent", args: []string{"-workers", "2"}, want: false},
		{name: "Empty", args: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasVersionFlag(tt.args); got != tt.want {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "sweepcalc") {
		t.Errorf("PrintVersion output = %q, want it to name the program", buf.String())
	}
}

// Guard against the default space drifting away from the documented grid.
func TestDefaultSpaceSize(t *testing.T) {
	if got, want := config.DefaultSpace().Size(), 12; got != want {
		t.Errorf("DefaultSpace().Size() = %d, want %d", got, want)
	}
}
