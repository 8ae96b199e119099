// Package handoff implements the classic bounded single-slot producer/consumer
// exchange: two goroutines trade a fixed number of values through one shared
// cell guarded by a mutex and two condition variables. It is kept as a small,
// self-contained demonstration of condition-variable coordination alongside
// the cursor-based prime engine.
package handoff

import (
	"fmt"
	"io"
	"sync"
)

// DefaultExchanges is the number of handoffs performed by the demo.
const DefaultExchanges = 10

// Slot is a single-capacity cell. Put blocks while the slot is occupied and
// Take blocks while it is empty; both rely on sync.Cond's atomic
// unlock-and-wait, so there is no lost-wakeup window. The mutex protects both
// the cell state and the condition checks.
type Slot struct {
	mu        sync.Mutex
	itemReady *sync.Cond
	slotFree  *sync.Cond
	value     uint64
	occupied  bool
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	s := &Slot{}
	s.itemReady = sync.NewCond(&s.mu)
	s.slotFree = sync.NewCond(&s.mu)
	return s
}

// Put stores v, blocking until the slot is free, then wakes one taker.
func (s *Slot) Put(v uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.occupied {
		s.slotFree.Wait()
	}
	s.value = v
	s.occupied = true
	s.itemReady.Signal()
}

// Take removes and returns the stored value, blocking until one is present,
// then wakes one putter.
func (s *Slot) Take() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.occupied {
		s.itemReady.Wait()
	}
	v := s.value
	s.occupied = false
	s.slotFree.Signal()
	return v
}

// Run drives one producer and one consumer goroutine through exactly count
// exchanges. produce is called with i = 1..count to generate each value;
// consume observes the values in production order. Both sides run a fixed
// iteration count, so no shutdown signal is needed: Run returns once both
// goroutines finish.
func Run(count int, produce func(i int) uint64, consume func(v uint64)) {
	slot := NewSlot()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 1; i <= count; i++ {
			slot.Put(produce(i))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 1; i <= count; i++ {
			consume(slot.Take())
		}
	}()

	wg.Wait()
}

// Demo reproduces the classic teaching output: the producer emits 7*i for
// i = 1..count and each side prints the item it handled. With count = 10 the
// consumer observes 7, 14, ..., 70 in that exact order.
func Demo(out io.Writer, count int) {
	var mu sync.Mutex
	Run(count,
		func(i int) uint64 {
			v := uint64(i) * 7
			mu.Lock()
			fmt.Fprintf(out, "producer produce item %d\n", v)
			mu.Unlock()
			return v
		},
		func(v uint64) {
			mu.Lock()
			fmt.Fprintf(out, "consumer consume item %d\n", v)
			mu.Unlock()
		},
	)
}
