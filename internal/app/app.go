// Package app wires configuration, solver, orchestration, and reporting into
// the runnable sweepcalc application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/sweepcalc/internal/config"
	apperrors "github.com/agbru/sweepcalc/internal/errors"
	"github.com/agbru/sweepcalc/internal/logging"
	"github.com/agbru/sweepcalc/internal/solver"
	"github.com/agbru/sweepcalc/internal/sweep"
	"github.com/agbru/sweepcalc/internal/ui"
)

// Application represents the sweepcalc application instance.
type Application struct {
	Config    config.AppConfig
	Engine    solver.Engine
	Log       logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithEngine sets a custom solver Engine for the application.
func WithEngine(e solver.Engine) AppOption {
	return func(a *Application) { a.Engine = e }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Log = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "sweepcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Engine == nil {
		app.Engine = solver.NewExecEngine(cfg.SolverPath)
	}
	if app.Log == nil {
		app.Log = logging.NewDefaultLogger()
	}
	return app, nil
}

// Run executes the sweep and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(logging.ParseLevel(a.Config.LogLevel))
	ui.InitTheme(a.Config.NoColor)

	return a.runSweep(ctx, out)
}

// exitCodeForError maps an execution error to the process exit code.
func exitCodeForError(err error) int {
	var cfgErr apperrors.ConfigError
	var solveErr *sweep.SolveError
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case apperrors.IsContextError(err):
		return apperrors.ExitErrorCanceled
	case errors.As(err, &cfgErr):
		return apperrors.ExitErrorConfig
	case errors.As(err, &solveErr):
		return apperrors.ExitErrorSolve
	default:
		return apperrors.ExitErrorGeneric
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
