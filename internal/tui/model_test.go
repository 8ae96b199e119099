package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/talmage47/pprimes/internal/config"
	"github.com/talmage47/pprimes/internal/engine"
	apperrors "github.com/talmage47/pprimes/internal/errors"
	"github.com/talmage47/pprimes/internal/ui"
)

func init() {
	// Deterministic rendering without ANSI escapes.
	ui.SetTheme("none")
	initTUIStyles()
}

func testModel(maxValue uint64, workers int) Model {
	return NewModel(config.AppConfig{MaxValue: maxValue, Workers: workers})
}

// keyMsg builds a plain character key message.
func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModel_InitialState(t *testing.T) {
	m := testModel(1000, 4)

	if m.done {
		t.Error("fresh model should not be done")
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitSuccess)
	}
	if m.workers != 4 {
		t.Errorf("workers = %d, want 4", m.workers)
	}
	if m.tracker == nil {
		t.Fatal("tracker should be initialized")
	}
}

func TestNewModel_AutoWorkers(t *testing.T) {
	m := testModel(1000, 0)

	if m.workers < 1 {
		t.Errorf("auto-detected workers = %d, want >= 1", m.workers)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := testModel(100, 2)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = updated.(Model)

	if m.width != 120 {
		t.Errorf("width = %d, want 120", m.width)
	}
	if m.bar.Width != maxBarWidth {
		t.Errorf("bar width = %d, want clamped to %d", m.bar.Width, maxBarWidth)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	m = updated.(Model)
	if m.bar.Width != 40-panelPadding {
		t.Errorf("bar width = %d, want %d on a narrow terminal", m.bar.Width, 40-panelPadding)
	}
}

func TestModel_ScanDone(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m := testModel(10, 2)
		res := &engine.Result{MaxValue: 10, Workers: 2, Primes: []uint64{2, 3, 5, 7}, Count: 4}

		updated, _ := m.Update(ScanDoneMsg{Result: res, Generation: 0})
		m = updated.(Model)

		if !m.done {
			t.Error("model should be done after ScanDoneMsg")
		}
		if m.exitCode != apperrors.ExitSuccess {
			t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitSuccess)
		}
		if m.result != res {
			t.Error("result should be stored")
		}
	})

	t.Run("failure maps the exit code", func(t *testing.T) {
		m := testModel(10, 2)
		err := apperrors.NewResourceError("result store", nil)

		updated, _ := m.Update(ScanDoneMsg{Err: err, Generation: 0})
		m = updated.(Model)

		if !m.done {
			t.Error("model should be done after a failed scan")
		}
		if m.exitCode != apperrors.ExitErrorResource {
			t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitErrorResource)
		}
	})

	t.Run("stale generation is ignored", func(t *testing.T) {
		m := testModel(10, 2)
		m.generation = 1

		updated, _ := m.Update(ScanDoneMsg{Result: &engine.Result{}, Generation: 0})
		m = updated.(Model)

		if m.done {
			t.Error("stale completion should not finish the current scan")
		}
	})
}

func TestModel_Restart(t *testing.T) {
	t.Run("ignored while running", func(t *testing.T) {
		m := testModel(10, 2)

		updated, cmd := m.Update(keyMsg('r'))
		m = updated.(Model)

		if m.generation != 0 {
			t.Errorf("generation = %d, want 0 while a scan is running", m.generation)
		}
		if cmd != nil {
			t.Error("restart should be a no-op while a scan is running")
		}
	})

	t.Run("resets state once done", func(t *testing.T) {
		m := testModel(10, 2)
		m.done = true
		m.result = &engine.Result{Count: 4}
		m.exitCode = apperrors.ExitErrorGeneric
		oldTracker := m.tracker

		updated, cmd := m.Update(keyMsg('r'))
		m = updated.(Model)

		if m.generation != 1 {
			t.Errorf("generation = %d, want 1", m.generation)
		}
		if m.done || m.result != nil {
			t.Error("restart should clear completion state")
		}
		if m.exitCode != apperrors.ExitSuccess {
			t.Errorf("exitCode = %d, want reset to %d", m.exitCode, apperrors.ExitSuccess)
		}
		if m.tracker == oldTracker {
			t.Error("restart should allocate a fresh tracker")
		}
		if cmd == nil {
			t.Error("restart should schedule a new scan")
		}
	})
}

func TestModel_Quit(t *testing.T) {
	m := testModel(10, 2)

	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("quit key should produce a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("quit key produced %v, want tea.Quit", msg)
	}
}

func TestModel_Tick(t *testing.T) {
	m := testModel(10, 2)

	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should reschedule itself while running")
	}

	m.done = true
	_, cmd = m.Update(TickMsg{})
	if cmd != nil {
		t.Error("tick should stop once the scan is done")
	}
}

func TestModel_View(t *testing.T) {
	m := testModel(1000, 4)

	if got := m.View(); got != "Initializing..." {
		t.Errorf("zero-width View() = %q, want the init placeholder", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"pprimes", "workers", "1,000", "SCANNING"} {
		if !strings.Contains(view, want) {
			t.Errorf("running View() should contain %q", want)
		}
	}

	res := &engine.Result{MaxValue: 1000, Workers: 4, Count: 168}
	updated, _ = m.Update(ScanDoneMsg{Result: res, Generation: 0})
	m = updated.(Model)

	view = m.View()
	for _, want := range []string{"DONE", "168", "restart"} {
		if !strings.Contains(view, want) {
			t.Errorf("finished View() should contain %q", want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
