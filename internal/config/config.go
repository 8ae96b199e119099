// Package config defines the application configuration and the resolution
// chain that populates it: CLI flags > PPRIMES_* environment variables >
// defaults, followed by validation.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/talmage47/pprimes/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "PPRIMES_"

// Defaults for the core parameters. The worker default of 2 matches the
// historical behavior of the tool; 0 requests auto-detection from the CPU
// count.
const (
	DefaultMaxValue = uint64(1000)
	DefaultWorkers  = 2
)

// AppConfig holds the fully resolved application configuration.
type AppConfig struct {
	// MaxValue is the inclusive upper bound of the scanned range (>= 2).
	MaxValue uint64
	// Workers is the requested worker count (>= 1, or 0 for auto-detect).
	Workers int
	// ListPrimes prints the full prime list instead of just the count.
	ListPrimes bool
	// Quiet reduces output to the prime count only.
	Quiet bool
	// Verbose echoes the execution configuration and a post-run resource summary.
	Verbose bool
	// OutputFile, when non-empty, receives the result with a metadata header.
	OutputFile string
	// NoColor disables ANSI colors in terminal output.
	NoColor bool
	// TUI launches the live dashboard instead of plain CLI output.
	TUI bool
	// Serve, when non-empty, starts the HTTP API on this address instead of
	// running a one-shot computation.
	Serve string
	// DemoHandoff runs the producer/consumer teaching demo and exits.
	DemoHandoff bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags left unset, and validates the result.
// Usage and flag errors are written to errWriter; flag.ErrHelp passes through
// unchanged so callers can exit cleanly on --help.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		MaxValue: DefaultMaxValue,
		Workers:  DefaultWorkers,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Finds all primes in [2, max] using a pool of workers\n")
		fmt.Fprintf(errWriter, "coordinated through a shared work cursor.\n\n")
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
	}

	fs.Uint64Var(&cfg.MaxValue, "max", cfg.MaxValue, "inclusive upper bound of the scan (>= 2)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker count (>= 1, 0 = one per logical CPU)")
	fs.BoolVar(&cfg.ListPrimes, "c", false, "print the full prime list (shorthand)")
	fs.BoolVar(&cfg.ListPrimes, "list", false, "print the full prime list")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the prime count (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the prime count")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose output with resource summary")
	fs.StringVar(&cfg.OutputFile, "o", "", "write results to file (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write results to file")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.StringVar(&cfg.Serve, "serve", "", "serve the HTTP API on this address (e.g. :8080)")
	fs.BoolVar(&cfg.DemoHandoff, "demo-handoff", false, "run the producer/consumer handoff demo and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected argument %q (use flags, see --help)", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration. The max-value rule is strict:
// values below 2 are rejected rather than silently adjusted.
func Validate(cfg AppConfig) error {
	if !cfg.DemoHandoff && cfg.Serve == "" && cfg.MaxValue < 2 {
		return apperrors.ValidationError{
			Field:   "max",
			Message: fmt.Sprintf("must be >= 2, got %d", cfg.MaxValue),
		}
	}
	if cfg.Workers < 0 {
		return apperrors.ValidationError{
			Field:   "workers",
			Message: fmt.Sprintf("must be >= 1 (or 0 for auto-detect), got %d", cfg.Workers),
		}
	}
	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return nil
}
