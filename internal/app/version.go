package app

import (
	"fmt"
	"io"
)

// Version is the application version. Overridden at build time via
// -ldflags "-X github.com/talmage47/pprimes/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests the version.
// Checked before flag parsing so --version works without any other flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "pprimes %s\n", Version)
}
