package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/sweepcalc/internal/config"
	"github.com/agbru/sweepcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the sweep dimensions, the scenario parameters, and details
// about the runtime environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - engineName: The name of the solver engine backing the sweep.
//   - jobs: The total number of configurations the sweep will run.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, engineName string, jobs int, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Sweeping %s%d%s configurations (%d alphas x %d betas x %d runs).\n",
		ui.ColorMagenta(), jobs, ui.ColorReset(),
		len(cfg.Space.Alphas), len(cfg.Space.Betas), cfg.Space.Runs)
	fmt.Fprintf(out, "Scenarios: %s%d%s demand samples per run, mu=%s%g%s sigma=%s%g%s.\n",
		ui.ColorCyan(), cfg.Econ.Samples, ui.ColorReset(),
		ui.ColorCyan(), cfg.Econ.Mu, ui.ColorReset(),
		ui.ColorCyan(), cfg.Econ.Sigma, ui.ColorReset())
	fmt.Fprintf(out, "Solver: %s%s%s.\n", ui.ColorGreen(), engineName, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintSweepMode displays the worker pool configuration before the sweep
// starts.
//
// Parameters:
//   - workers: The number of workers in the pool.
//   - out: The writer for standard output.
func PrintSweepMode(workers int, out io.Writer) {
	fmt.Fprintf(out, "Execution mode: pool of %s%d%s workers.\n",
		ui.ColorGreen(), workers, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Sweep ---\n")
}
