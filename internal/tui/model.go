// Package tui implements the interactive scan monitor: a live progress view
// over a single prime scan, built on bubbletea.
//
// Unlike the plain CLI spinner, the monitor polls the shared progress tracker
// on a fixed tick and renders a full-screen panel with system and runtime
// statistics alongside the bar.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talmage47/pprimes/internal/cli"
	"github.com/talmage47/pprimes/internal/config"
	"github.com/talmage47/pprimes/internal/engine"
	apperrors "github.com/talmage47/pprimes/internal/errors"
	"github.com/talmage47/pprimes/internal/format"
)

// Layout constants for the scan monitor.
const (
	maxBarWidth  = 60
	panelPadding = 8
)

// Model is the root bubbletea model for the scan monitor.
type Model struct {
	config  config.AppConfig
	workers int
	keymap  KeyMap

	tracker *cli.Tracker
	bar     progress.Model
	spin    spinner.Model

	width      int
	start      time.Time
	generation uint64
	done       bool
	exitCode   int
	result     *engine.Result
	err        error
	sys        SysStatsMsg
	mem        MemStatsMsg
}

// NewModel creates a monitor for one scan over [2, cfg.MaxValue].
func NewModel(cfg config.AppConfig) Model {
	workers := cfg.Workers
	if workers == 0 {
		workers = engine.AutoWorkers()
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = maxBarWidth

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(statusRunStyle),
	)

	return Model{
		config:   cfg,
		workers:  workers,
		keymap:   DefaultKeyMap(),
		tracker:  cli.NewTracker(cfg.MaxValue),
		bar:      bar,
		spin:     sp,
		start:    time.Now(),
		exitCode: apperrors.ExitSuccess,
	}
}

// Init returns the initial commands: spinner animation, refresh tick, stat
// sampling, and the scan itself.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		tickCmd(),
		sampleSysStatsCmd(),
		sampleMemStatsCmd(),
		startScanCmd(m.config.MaxValue, m.workers, m.tracker, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - panelPadding
		if w > maxBarWidth {
			w = maxBarWidth
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(tickCmd(), sampleSysStatsCmd(), sampleMemStatsCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ScanDoneMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a restarted scan
		}
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		if msg.Err != nil {
			m.exitCode = apperrors.ExitCodeForError(msg.Err)
		}
		return m, nil

	case SysStatsMsg:
		m.sys = msg
		return m, nil

	case MemStatsMsg:
		m.mem = msg
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Restart):
		// A running scan cannot be canceled, so a restart is only honored
		// once the current one has finished.
		if !m.done {
			return m, nil
		}
		m.generation++
		m.tracker = cli.NewTracker(m.config.MaxValue)
		m.start = time.Now()
		m.done = false
		m.result = nil
		m.err = nil
		m.exitCode = apperrors.ExitSuccess
		return m, tea.Batch(
			tickCmd(),
			startScanCmd(m.config.MaxValue, m.workers, m.tracker, m.generation),
		)
	}

	return m, nil
}

// View renders the monitor panel.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("pprimes"),
		"  ",
		m.statusView(),
		"  ",
		elapsedStyle.Render(m.elapsed().Round(100*time.Millisecond).String()),
	)

	rangeLine := fmt.Sprintf("%s [2, %s]   %s %d",
		metricLabelStyle.Render("range"),
		metricValueStyle.Render(format.FormatCount(m.config.MaxValue)),
		metricLabelStyle.Render("workers"),
		m.workers)

	f := m.tracker.Fraction()
	if m.done && m.err == nil {
		f = 1.0
	}
	barLine := fmt.Sprintf("%s %5.1f%%", m.bar.ViewAs(f), f*100)
	posLine := fmt.Sprintf("%s %s of %s",
		metricLabelStyle.Render("at"),
		format.FormatCount(m.tracker.Claimed()),
		format.FormatCount(m.config.MaxValue))

	statsLine := fmt.Sprintf("%s %5.1f%%   %s %5.1f%%   %s %s   %s %d   %s %d",
		metricLabelStyle.Render("cpu"), m.sys.CPUPercent,
		metricLabelStyle.Render("mem"), m.sys.MemPercent,
		metricLabelStyle.Render("heap"), formatBytes(m.mem.HeapAlloc),
		metricLabelStyle.Render("goroutines"), m.mem.NumGoroutine,
		metricLabelStyle.Render("gc"), m.mem.NumGC)

	lines := []string{title, "", rangeLine, barLine, posLine, "", statsLine}

	if m.done {
		lines = append(lines, "", m.resultView())
	}
	lines = append(lines, "", m.footerView())

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// statusView renders the current run state indicator.
func (m Model) statusView() string {
	switch {
	case !m.done:
		return m.spin.View() + statusRunStyle.Render("SCANNING")
	case m.err != nil:
		return statusErrStyle.Render("FAILED")
	default:
		return statusDoneStyle.Render("DONE")
	}
}

// resultView renders the outcome line after completion.
func (m Model) resultView() string {
	if m.err != nil {
		return statusErrStyle.Render("error: " + m.err.Error())
	}
	return fmt.Sprintf("%s %s primes in [2, %s]   %s %s",
		metricLabelStyle.Render("found"),
		metricValueStyle.Render(format.FormatCount(uint64(m.result.Count))),
		format.FormatCount(m.result.MaxValue),
		metricLabelStyle.Render("elapsed"),
		metricValueStyle.Render(format.FormatExecutionDuration(m.result.Elapsed)))
}

// footerView renders the key help line.
func (m Model) footerView() string {
	help := footerKeyStyle.Render("q") + footerDescStyle.Render(" quit")
	if m.done {
		help += "   " + footerKeyStyle.Render("r") + footerDescStyle.Render(" restart")
	}
	return help
}

// elapsed returns the wall-clock time of the current scan, frozen once done.
func (m Model) elapsed() time.Duration {
	if m.done && m.result != nil {
		return m.result.Elapsed
	}
	return time.Since(m.start)
}

// formatBytes renders a byte count in binary units.
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(cfg config.AppConfig) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
