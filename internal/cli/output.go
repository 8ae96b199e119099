// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//   - Write* functions write data to files on the filesystem.
//   - Print* functions echo configuration or mode information before a run.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/talmage47/pprimes/internal/config"
	"github.com/talmage47/pprimes/internal/engine"
	"github.com/talmage47/pprimes/internal/format"
	"github.com/talmage47/pprimes/internal/metrics"
	"github.com/talmage47/pprimes/internal/sysmon"
	"github.com/talmage47/pprimes/internal/ui"
)

// PrimesPerLine is the number of primes printed per line in list output.
const PrimesPerLine = 10

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode reduces output to the prime count only.
	Quiet bool
	// Verbose adds the resource summary after the result.
	Verbose bool
	// ListPrimes enables printing of the full prime list.
	ListPrimes bool
}

// PrintExecutionConfig displays the current execution configuration to the
// user: the scanned range, the worker count, and environment details.
func PrintExecutionConfig(cfg config.AppConfig, workers int, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Scanning %s[2, %s]%s with %s%d%s worker(s).\n",
		ui.ColorPrimary(), format.FormatCount(cfg.MaxValue), ui.ColorReset(),
		ui.ColorYellow(), workers, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Scan ---\n")
}

// FormatPrimeList renders primes in rows of perLine values, right-padded for
// rough column alignment.
func FormatPrimeList(primes []uint64, perLine int) string {
	if len(primes) == 0 {
		return ""
	}
	if perLine < 1 {
		perLine = PrimesPerLine
	}

	width := len(format.FormatCount(primes[len(primes)-1]))
	var b strings.Builder
	for i, p := range primes {
		if i > 0 {
			if i%perLine == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(fmt.Sprintf("%*s", width, format.FormatCount(p)))
	}
	return b.String()
}

// FormatQuietResult formats a result for quiet mode output: the bare count,
// suitable for scripting.
func FormatQuietResult(res *engine.Result) string {
	return fmt.Sprintf("%d", res.Count)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, res *engine.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResult outputs the run summary: prime count, range, elapsed wall
// clock in milliseconds, and optionally the full prime list.
func DisplayResult(out io.Writer, res *engine.Result, cfg OutputConfig) {
	if cfg.Quiet {
		DisplayQuietResult(out, res)
		return
	}

	fmt.Fprintf(out, "\n--- Result ---\n")
	fmt.Fprintf(out, "Found %s%s%s primes in [2, %s] using %s%d%s worker(s).\n",
		ui.ColorGreen(), format.FormatCount(uint64(res.Count)), ui.ColorReset(),
		format.FormatCount(res.MaxValue),
		ui.ColorCyan(), res.Workers, ui.ColorReset())
	fmt.Fprintf(out, "Elapsed: %s%d ms%s (%s).\n",
		ui.ColorYellow(), res.Elapsed.Milliseconds(), ui.ColorReset(),
		format.FormatExecutionDuration(res.Elapsed))

	if cfg.ListPrimes {
		fmt.Fprintf(out, "\n%s\n", FormatPrimeList(res.Primes, PrimesPerLine))
	}
}

// DisplayResourceSummary prints the verbose post-run resource report: heap
// growth during the run and a system-wide CPU/memory snapshot.
func DisplayResourceSummary(out io.Writer, delta metrics.MemorySnapshot, sys sysmon.Stats) {
	fmt.Fprintf(out, "\n--- Resource Summary ---\n")
	fmt.Fprintf(out, "Heap growth: %s%.2f MiB%s (%s objects, %d GC cycles).\n",
		ui.ColorCyan(), float64(delta.HeapAlloc)/(1024*1024), ui.ColorReset(),
		format.FormatCount(delta.HeapObjects), delta.NumGC)
	fmt.Fprintf(out, "System: CPU %s%.1f%%%s, memory %s%.1f%%%s used.\n",
		ui.ColorCyan(), sys.CPUPercent, ui.ColorReset(),
		ui.ColorCyan(), sys.MemPercent, ui.ColorReset())
}

// WriteResultToFile writes a completed run to a file with a metadata header
// followed by the prime list.
func WriteResultToFile(res *engine.Result, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Prime Scan Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Range: [2, %d]\n", res.MaxValue)
	fmt.Fprintf(file, "# Workers: %d\n", res.Workers)
	fmt.Fprintf(file, "# Duration: %s\n", res.Elapsed)
	fmt.Fprintf(file, "# Count: %d\n", res.Count)
	fmt.Fprintf(file, "\n")

	for _, p := range res.Primes {
		fmt.Fprintf(file, "%d\n", p)
	}
	return nil
}
