// Package app wires configuration, the scan engine, and the presentation
// layers into a runnable application. The cmd/pprimes binary is a thin shell
// around Application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/talmage47/pprimes/internal/cli"
	"github.com/talmage47/pprimes/internal/config"
	"github.com/talmage47/pprimes/internal/engine"
	apperrors "github.com/talmage47/pprimes/internal/errors"
	"github.com/talmage47/pprimes/internal/handoff"
	"github.com/talmage47/pprimes/internal/logging"
	"github.com/talmage47/pprimes/internal/metrics"
	"github.com/talmage47/pprimes/internal/server"
	"github.com/talmage47/pprimes/internal/sysmon"
	"github.com/talmage47/pprimes/internal/tui"
	"github.com/talmage47/pprimes/internal/ui"
)

// Application represents the pprimes application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "pprimes"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(logLevel(a.Config))
	ui.InitTheme(a.Config.NoColor)

	if a.Config.DemoHandoff {
		return a.runHandoffDemo(out)
	}
	if a.Config.Serve != "" {
		return a.runServe(ctx)
	}
	if a.Config.TUI {
		return tui.Run(a.Config)
	}

	return a.runScan(out)
}

// logLevel maps the verbosity flags onto the global zerolog level.
func logLevel(cfg config.AppConfig) zerolog.Level {
	switch {
	case cfg.Quiet:
		return zerolog.ErrorLevel
	case cfg.Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// runScan executes a one-shot scan with CLI presentation.
func (a *Application) runScan(out io.Writer) int {
	workers := a.Config.Workers
	if workers == 0 {
		workers = engine.AutoWorkers()
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, workers, out)
	}

	var memBefore metrics.MemorySnapshot
	collector := metrics.NewMemoryCollector()
	if a.Config.Verbose {
		memBefore = collector.Snapshot()
	}

	// Quiet mode skips the spinner and the per-candidate callback entirely.
	var progress engine.ProgressFn
	var wg sync.WaitGroup
	var done chan struct{}
	if !a.Config.Quiet {
		tracker := cli.NewTracker(a.Config.MaxValue)
		progress = tracker.Observe
		done = make(chan struct{})
		wg.Add(1)
		go cli.DisplayProgress(&wg, tracker, done, out)
	}

	res, err := engine.Run(a.Config.MaxValue, workers, progress)
	if done != nil {
		close(done)
		wg.Wait()
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeForError(err)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ListPrimes: a.Config.ListPrimes,
	}
	cli.DisplayResult(out, res, outputCfg)

	if err := cli.WriteResultToFile(res, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if a.Config.Verbose {
		delta := collector.Snapshot().Delta(memBefore)
		cli.DisplayResourceSummary(out, delta, sysmon.Sample())
	}

	return apperrors.ExitSuccess
}

// runServe starts the HTTP API and blocks until interrupted.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(a.Config.Serve, logging.NewLogger(a.ErrWriter, "server"))
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runHandoffDemo runs the single-slot producer/consumer demonstration.
func (a *Application) runHandoffDemo(out io.Writer) int {
	handoff.Demo(out, handoff.DefaultExchanges)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
