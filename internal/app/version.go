package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/agbru/sweepcalc/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "sweepcalc %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
