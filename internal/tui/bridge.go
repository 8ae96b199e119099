package tui

import (
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/talmage47/pprimes/internal/cli"
	"github.com/talmage47/pprimes/internal/engine"
	"github.com/talmage47/pprimes/internal/sysmon"
)

// tickInterval is the refresh rate of the live progress display.
const tickInterval = 200 * time.Millisecond

// TickMsg drives the periodic refresh of the progress bar and stats.
type TickMsg time.Time

// ScanDoneMsg carries the outcome of a finished scan.
type ScanDoneMsg struct {
	Result     *engine.Result
	Err        error
	Generation uint64
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// MemStatsMsg carries process-local runtime statistics.
type MemStatsMsg struct {
	HeapAlloc    uint64
	NumGC        uint32
	NumGoroutine int
}

// startScanCmd launches the scan on its own goroutine. Progress flows through
// the shared tracker, which the model polls on every tick; only completion is
// delivered as a message. The scan runs to exhaustion, so the command always
// returns exactly one ScanDoneMsg.
func startScanCmd(maxValue uint64, workers int, tracker *cli.Tracker, gen uint64) tea.Cmd {
	return func() tea.Msg {
		res, err := engine.Run(maxValue, workers, tracker.Observe)
		return ScanDoneMsg{Result: res, Err: err, Generation: gen}
	}
}

// tickCmd schedules the next display refresh.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// sampleMemStatsCmd reads process runtime stats.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			HeapAlloc:    ms.HeapAlloc,
			NumGC:        ms.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}
