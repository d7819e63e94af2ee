package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatSeconds renders a duration as fractional seconds with millisecond
// precision, the unit used by the timing summary of the sweep report.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: The duration in seconds, e.g. "12.345s".
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// FormatObjective renders a solver objective value for tabular display.
// Objectives are monetary quantities; two decimal places are enough.
//
// Parameters:
//   - v: The objective value.
//
// Returns:
//   - string: The formatted value, e.g. "1234.57".
func FormatObjective(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
