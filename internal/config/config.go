// Package config handles parsing and validation of the application
// configuration from command-line flags and environment variables.
// Priority order: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"io"
	"runtime"

	apperrors "github.com/agbru/sweepcalc/internal/errors"
	"github.com/agbru/sweepcalc/internal/sweep"
)

// EnvPrefix is the prefix of every environment variable the application
// reads.
const EnvPrefix = "SWEEPCALC_"

// AppConfig holds the complete runtime configuration of the application.
type AppConfig struct {
	// Space defines the parameter grid the sweep enumerates.
	Space sweep.Space
	// Econ defines the scenario economics shared by every run.
	Econ sweep.Economics
	// Workers is the size of the worker pool.
	Workers int
	// SolverPath is the path of the solver binary to execute.
	SolverPath string
	// ModelPath is the path of the model definition passed to the solver.
	ModelPath string
	// MetricsListen is the optional listen address of the Prometheus
	// endpoint; empty disables the listener.
	MetricsListen string
	// LogLevel selects the minimum log level (debug, info, warn, error).
	LogLevel string
	// Quiet suppresses the spinner and progress output.
	Quiet bool
	// NoColor disables ANSI colors in the report output.
	NoColor bool
}

// DefaultSpace returns the parameter grid swept when no overrides are given.
func DefaultSpace() sweep.Space {
	return sweep.Space{
		Alphas: []float64{0.7, 0.8},
		Betas:  []float64{0.6, 0.7},
		Runs:   3,
	}
}

// DefaultEconomics returns the scenario economics shared by every run.
func DefaultEconomics() sweep.Economics {
	return sweep.Economics{
		Samples: 10000,
		Mu:      100,
		Sigma:   30,
		Cost:    5,
		Retail:  15,
		Recover: 2,
	}
}

// ParseConfig parses the command-line arguments into an AppConfig, applying
// environment variable overrides for flags left unset.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The raw command-line arguments, without the program name.
//   - errWriter: The writer for flag parsing errors and usage text.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: A parsing error, including flag.ErrHelp for -h.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Space: DefaultSpace(),
		Econ:  DefaultEconomics(),
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.SolverPath, "solver", "newsvendor-lp", "path of the solver binary")
	fs.StringVar(&cfg.ModelPath, "model", "models/newsvendor.mod", "path of the model definition file")
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "size of the worker pool")
	fs.IntVar(&cfg.Workers, "w", runtime.NumCPU(), "size of the worker pool (shorthand)")
	fs.StringVar(&cfg.MetricsListen, "metrics-listen", "", "listen address of the Prometheus endpoint (empty disables it)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "minimum log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress output")
	fs.BoolVar(&cfg.Quiet, "q", false, "suppress progress output (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors in the output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the sweep cannot run with.
func (c AppConfig) Validate() error {
	if len(c.Space.Alphas) == 0 {
		return apperrors.NewConfigError("sweep space has no alpha values")
	}
	if len(c.Space.Betas) == 0 {
		return apperrors.NewConfigError("sweep space has no beta values")
	}
	if c.Space.Runs < 1 {
		return apperrors.NewConfigError("sweep space needs at least 1 run per cell, got %d", c.Space.Runs)
	}
	if c.Econ.Samples < 1 {
		return apperrors.NewConfigError("scenario needs at least 1 demand sample, got %d", c.Econ.Samples)
	}
	if c.Econ.Sigma < 0 {
		return apperrors.NewConfigError("demand sigma must be non-negative, got %g", c.Econ.Sigma)
	}
	if c.Econ.Retail <= c.Econ.Cost {
		return apperrors.NewConfigError("retail price %g must exceed unit cost %g", c.Econ.Retail, c.Econ.Cost)
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("worker pool needs at least 1 worker, got %d", c.Workers)
	}
	if c.SolverPath == "" {
		return apperrors.NewConfigError("solver binary path is empty")
	}
	if c.ModelPath == "" {
		return apperrors.NewConfigError("model definition path is empty")
	}
	return nil
}
