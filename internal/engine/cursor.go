package engine

import "sync"

// Cursor hands out candidate integers to workers exactly once each, in
// increasing order. It is the single point of contention in a threaded run.
//
// Invariants: next is monotonically non-decreasing, is observed and advanced
// only under the lock, and every value in [first, upper] is claimed by exactly
// one caller.
type Cursor struct {
	mu    sync.Mutex
	next  uint64
	upper uint64
}

// NewCursor creates a cursor covering the inclusive range [first, upper].
func NewCursor(first, upper uint64) *Cursor {
	return &Cursor{next: first, upper: upper}
}

// Claim atomically takes the next candidate. The second return value is false
// once the range is exhausted, which is the only way a worker loop terminates.
func (c *Cursor) Claim() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next > c.upper {
		return 0, false
	}
	n := c.next
	c.next++
	return n, true
}

// Position returns the next unclaimed candidate. Progress displays sample it;
// the value is already stale by the time the caller uses it, which is fine
// for display purposes.
func (c *Cursor) Position() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next
}

// Upper returns the inclusive upper bound of the range.
func (c *Cursor) Upper() uint64 { return c.upper }
