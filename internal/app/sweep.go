package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/sweepcalc/internal/cli"
	apperrors "github.com/agbru/sweepcalc/internal/errors"
	"github.com/agbru/sweepcalc/internal/logging"
	"github.com/agbru/sweepcalc/internal/metrics"
	"github.com/agbru/sweepcalc/internal/orchestration"
	"github.com/agbru/sweepcalc/internal/report"
	"github.com/agbru/sweepcalc/internal/server"
	"github.com/agbru/sweepcalc/internal/sweep"
	"github.com/agbru/sweepcalc/internal/sysmon"
)

// metricsShutdownTimeout bounds the graceful stop of the metrics listener.
const metricsShutdownTimeout = 5 * time.Second

// runSweep orchestrates the execution of the parameter sweep.
func (a *Application) runSweep(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (signals)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	stopMetrics := a.startMetricsListenerIfEnabled(registry)
	defer stopMetrics()

	host := sysmon.Sample()
	a.Log.Info("starting sweep",
		logging.Float64("load1", host.Load1),
		logging.Float64("mem_percent", host.MemPercent),
		logging.Int("workers", a.Config.Workers))

	configs, err := sweep.Generate(a.Config.Space)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return exitCodeForError(err)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, a.Engine.Name(), len(configs), out)
		report.WriteConfigTable(configs, out)
		cli.PrintSweepMode(a.Config.Workers, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = &cli.CLIProgressReporter{}
	}

	worker := sweep.NewWorker(a.Engine, a.Config.ModelPath, a.Config.Econ)
	runner := metrics.InstrumentRunner(worker, m)

	start := time.Now()
	results, err := orchestration.ExecuteSweep(ctx, runner, configs, a.Config.Workers, progressReporter, progressOut)
	batchTime := time.Since(start)
	m.ObserveBatch(batchTime)

	if err != nil {
		a.Log.Error("sweep aborted", err, logging.Dur("elapsed", batchTime))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return exitCodeForError(err)
	}

	a.Log.Info("sweep complete",
		logging.Int("jobs", len(results)),
		logging.Dur("batch_time", batchTime))

	summary, err := report.Aggregate(results, a.Config.Workers, batchTime)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if a.Config.Quiet {
		// The pre-sweep banner was suppressed, so emit the full report here.
		report.Write(configs, results, summary, out)
	} else {
		report.WriteResultTable(results, out)
		report.WriteSummary(summary, out)
	}

	return apperrors.ExitSuccess
}

// startMetricsListenerIfEnabled starts the Prometheus endpoint when a listen
// address is configured. The returned function stops the listener and is safe
// to call unconditionally.
func (a *Application) startMetricsListenerIfEnabled(g prometheus.Gatherer) func() {
	if a.Config.MetricsListen == "" {
		return func() {}
	}

	srv := server.New(a.Config.MetricsListen, g, server.DefaultSecurityConfig(), a.Log)
	go func() {
		if err := srv.Start(); err != nil {
			a.Log.Error("metrics listener failed", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			a.Log.Warn("metrics listener shutdown", logging.Err(err))
		}
	}
}
