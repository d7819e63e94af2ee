// Package sysmon provides a one-shot snapshot of host load and memory
// pressure, logged before a sweep starts so batch timings can be read in
// context.
package sysmon

// Stats holds a single snapshot of host resource usage.
type Stats struct {
	Load1      float64 // 1-minute load average
	MemPercent float64 // 0.0 .. 100.0
	TotalMemMB uint64  // physical memory in MiB
}

// Sample collects a single host snapshot. On platforms without support it
// returns zero values.
func Sample() Stats {
	return sample()
}
