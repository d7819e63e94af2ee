package report

import (
	"fmt"
	"io"

	"github.com/agbru/sweepcalc/internal/format"
	"github.com/agbru/sweepcalc/internal/sweep"
	"github.com/agbru/sweepcalc/internal/ui"
)

// WriteConfigTable displays the generated job set: one row per Config showing
// its swept parameters, repetition index, and assigned seed.
func WriteConfigTable(configs []sweep.Config, out io.Writer) {
	fmt.Fprintf(out, "\n--- Generated Configs ---\n")
	fmt.Fprintf(out, "%s%-8s  %-8s  %4s  %5s%s\n",
		ui.ColorUnderline(), "alpha", "beta", "run", "seed", ui.ColorReset())
	for _, cfg := range configs {
		fmt.Fprintf(out, "%-8.4g  %-8.4g  %4d  %5d\n", cfg.Alpha, cfg.Beta, cfg.Run, cfg.Seed)
	}
}

// WriteResultTable displays the batch outcome: one row per Result showing its
// job identity, the solver objective, and the per-job wall time.
func WriteResultTable(results []sweep.Result, out io.Writer) {
	fmt.Fprintf(out, "\n--- Sweep Results ---\n")
	fmt.Fprintf(out, "%s%-8s  %-8s  %4s  %12s  %10s%s\n",
		ui.ColorUnderline(), "alpha", "beta", "run", "objective", "time", ui.ColorReset())
	for _, r := range results {
		fmt.Fprintf(out, "%-8.4g  %-8.4g  %4d  %s%12s%s  %s%10s%s\n",
			r.Alpha, r.Beta, r.Run,
			ui.ColorGreen(), format.FormatObjective(r.Objective), ui.ColorReset(),
			ui.ColorYellow(), format.FormatSeconds(r.WorkerTime), ui.ColorReset())
	}
}

// WriteSummary displays the three timing summary lines of the report.
func WriteSummary(summary Summary, out io.Writer) {
	fmt.Fprintf(out, "\n--- Timing Summary ---\n")
	fmt.Fprintf(out, "Batch wall time:     %s%s%s\n",
		ui.ColorCyan(), format.FormatSeconds(summary.BatchTime), ui.ColorReset())
	fmt.Fprintf(out, "Average worker time: %s%s%s (over %d workers)\n",
		ui.ColorCyan(), format.FormatSeconds(summary.AverageWorkerTime), ui.ColorReset(), summary.Workers)
	fmt.Fprintf(out, "Total worker time:   %s%s%s\n",
		ui.ColorCyan(), format.FormatSeconds(summary.TotalWorkerTime), ui.ColorReset())
}

// Write renders the complete report in order: configs, results, summary.
func Write(configs []sweep.Config, results []sweep.Result, summary Summary, out io.Writer) {
	WriteConfigTable(configs, out)
	WriteResultTable(results, out)
	WriteSummary(summary, out)
}
