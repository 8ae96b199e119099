package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"

	"github.com/talmage47/pprimes/internal/format"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Tracker aggregates engine progress callbacks into a single high-water mark.
// Observe may be called concurrently from every worker; Fraction is read by
// the display goroutine.
type Tracker struct {
	upper   uint64
	claimed atomic.Uint64
}

// NewTracker creates a tracker for a scan with the given upper bound.
func NewTracker(upper uint64) *Tracker {
	return &Tracker{upper: upper}
}

// Observe records a claimed candidate, keeping the maximum seen so far.
// Claims arrive out of completion order across workers, so a plain store
// would make the bar jitter backwards.
func (t *Tracker) Observe(claimed, _ uint64) {
	for {
		cur := t.claimed.Load()
		if claimed <= cur || t.claimed.CompareAndSwap(cur, claimed) {
			return
		}
	}
}

// Claimed returns the highest candidate observed so far.
func (t *Tracker) Claimed() uint64 { return t.claimed.Load() }

// Fraction returns overall progress in [0, 1].
func (t *Tracker) Fraction() float64 {
	if t.upper < 2 {
		return 1.0
	}
	claimed := t.claimed.Load()
	if claimed < 2 {
		return 0.0
	}
	f := float64(claimed-1) / float64(t.upper-1)
	if f > 1.0 {
		f = 1.0
	}
	return f
}

// Spinner is an interface that abstracts the behavior of a terminal spinner,
// decoupling DisplayProgress from a specific spinner implementation for
// easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a constructor hook replaced in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to synchronize redraws.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner and progress bar until done is closed.
// It samples the tracker at ProgressRefreshRate and signals wg on return.
func DisplayProgress(wg *sync.WaitGroup, tracker *Tracker, done <-chan struct{}, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(progressSuffix(tracker))
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			sp.UpdateSuffix(progressSuffix(tracker))
		}
	}
}

// progressSuffix renders the spinner suffix: bar, percentage, and position.
func progressSuffix(tracker *Tracker) string {
	f := tracker.Fraction()
	return fmt.Sprintf(" %s %5.1f%% (at %s)",
		progressBar(f, ProgressBarWidth), f*100, format.FormatCount(tracker.Claimed()))
}

// progressBar generates a string representing a textual progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
