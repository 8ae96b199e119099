package handoff

import (
	"bytes"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestRun_ClassicSequence verifies the canonical scenario: ten exchanges of
// 7*i, observed by the consumer in exact production order.
func TestRun_ClassicSequence(t *testing.T) {
	t.Parallel()

	var consumed []uint64
	Run(DefaultExchanges,
		func(i int) uint64 { return uint64(i) * 7 },
		func(v uint64) { consumed = append(consumed, v) },
	)

	if len(consumed) != DefaultExchanges {
		t.Fatalf("consumed %d items, want %d", len(consumed), DefaultExchanges)
	}
	for i, v := range consumed {
		want := uint64(i+1) * 7
		if v != want {
			t.Errorf("consumed[%d] = %d, want %d", i, v, want)
		}
	}
}

// TestRun_FIFONoLossNoDuplication exercises a longer exchange and checks that
// every produced value arrives exactly once, in order.
func TestRun_FIFONoLossNoDuplication(t *testing.T) {
	t.Parallel()

	const count = 5000
	var consumed []uint64
	Run(count,
		func(i int) uint64 { return uint64(i) },
		func(v uint64) { consumed = append(consumed, v) },
	)

	if len(consumed) != count {
		t.Fatalf("consumed %d items, want %d", len(consumed), count)
	}
	for i, v := range consumed {
		if v != uint64(i+1) {
			t.Fatalf("consumed[%d] = %d, want %d (order violated)", i, v, i+1)
		}
	}
}

// TestRun_ZeroCount verifies that an empty exchange terminates immediately.
func TestRun_ZeroCount(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		Run(0,
			func(i int) uint64 { t.Error("produce should not be called"); return 0 },
			func(v uint64) { t.Error("consume should not be called") },
		)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run(0, ...) did not terminate")
	}
}

// TestSlot_HoldsAtMostOneValue verifies the slot invariant directly: a second
// Put blocks until a Take frees the cell.
func TestSlot_HoldsAtMostOneValue(t *testing.T) {
	t.Parallel()

	slot := NewSlot()
	slot.Put(1)

	secondPut := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		slot.Put(2)
		close(secondPut)
	}()

	select {
	case <-secondPut:
		t.Fatal("second Put should block while the slot is occupied")
	case <-time.After(50 * time.Millisecond):
	}

	if v := slot.Take(); v != 1 {
		t.Errorf("Take() = %d, want 1", v)
	}

	select {
	case <-secondPut:
	case <-time.After(2 * time.Second):
		t.Fatal("second Put should complete after Take frees the slot")
	}
	wg.Wait()

	if v := slot.Take(); v != 2 {
		t.Errorf("Take() = %d, want 2", v)
	}
}

// TestDemo verifies the teaching output shape and the consumed sequence.
func TestDemo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Demo(&buf, DefaultExchanges)

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2*DefaultExchanges {
		t.Fatalf("demo printed %d lines, want %d", len(lines), 2*DefaultExchanges)
	}

	for _, want := range []string{
		"producer produce item 7",
		"consumer consume item 7",
		"producer produce item 70",
		"consumer consume item 70",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q\ngot:\n%s", want, output)
		}
	}

	// Consumer lines, in order of appearance, must be 7, 14, ..., 70.
	consumeIdx := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "consumer consume item ") {
			consumeIdx++
			want := 7 * consumeIdx
			if !strings.HasSuffix(line, " "+strconv.Itoa(want)) {
				t.Errorf("consume line %d = %q, want suffix %d", consumeIdx, line, want)
			}
		}
	}
	if consumeIdx != DefaultExchanges {
		t.Errorf("found %d consume lines, want %d", consumeIdx, DefaultExchanges)
	}
}
