//go:build linux

package sysmon

import "golang.org/x/sys/unix"

// Sysinfo load averages are fixed-point with 16 fractional bits.
const loadScale = 1 << 16

func sample() Stats {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return Stats{}
	}

	var s Stats
	s.Load1 = float64(si.Loads[0]) / loadScale

	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	total := uint64(si.Totalram) * unit
	if total > 0 {
		available := (uint64(si.Freeram) + uint64(si.Bufferram)) * unit
		s.MemPercent = 100 * float64(total-available) / float64(total)
		s.TotalMemMB = total / (1 << 20)
	}
	return s
}
