package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	"github.com/agbru/sweepcalc/internal/orchestration"
	"github.com/agbru/sweepcalc/internal/ui"
)

// CLIProgressReporter implements the orchestration.ProgressReporter interface
// for a command-line environment. It renders sweep progress as an animated
// spinner with a textual progress bar.
type CLIProgressReporter struct{}

// DisplayProgress consumes in-order progress updates from the sweep and
// renders them on the terminal. It signals the provided WaitGroup when the
// updates channel has been fully drained.
//
// Parameters:
//   - wg: The WaitGroup to signal upon completion.
//   - updates: The channel from which progress updates are received.
//   - total: The total number of configurations in the sweep.
//   - out: The writer to which the spinner output is directed.
func (r *CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	defer s.Stop()

	for u := range updates {
		progress := float64(u.Completed) / float64(total)
		bar := progressBar(progress, ProgressBarWidth)
		s.UpdateSuffix(fmt.Sprintf(" [%s] %d/%d  %salpha=%g beta=%g run=%d%s",
			bar, u.Completed, total,
			ui.ColorCyan(), u.Result.Alpha, u.Result.Beta, u.Result.Run, ui.ColorReset()))
	}
}
