package engine

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/talmage47/pprimes/internal/errors"
	"github.com/talmage47/pprimes/internal/prime"
)

// DefaultWorkers is the worker count used when the caller does not choose one.
const DefaultWorkers = 2

// Result is the outcome of a completed run, handed to reporting collaborators.
type Result struct {
	// MaxValue is the inclusive upper bound of the scanned range.
	MaxValue uint64
	// Workers is the number of workers that executed the run.
	Workers int
	// Primes lists every prime in [2, MaxValue] in increasing order.
	Primes []uint64
	// Count is len(Primes).
	Count int
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// AutoWorkers returns the worker count to use when the caller requests
// automatic selection, one worker per logical CPU.
func AutoWorkers() int {
	return runtime.NumCPU()
}

// RunSequential scans [2, maxValue] in increasing order on the calling
// goroutine, with no synchronization. Its store is bit-for-bit identical to
// any threaded run over the same range.
func RunSequential(maxValue uint64, store *prime.Store, progress ProgressFn) error {
	if store == nil || store.Max() < maxValue {
		return apperrors.NewResourceError("result store", nil)
	}
	for n := prime.FirstCandidate; n <= maxValue; n++ {
		if prime.IsPrime(n) {
			store.Mark(n)
		}
		if progress != nil {
			progress(n, maxValue)
		}
	}
	return nil
}

// RunThreaded scans [2, maxValue] with the given number of workers sharing a
// single cursor. Workers are clamped to at least one. The call blocks until
// every worker has observed cursor exhaustion; there is no cancellation and
// no partial completion.
func RunThreaded(maxValue uint64, workers int, store *prime.Store, progress ProgressFn) error {
	if store == nil || store.Max() < maxValue {
		return apperrors.NewResourceError("result store", nil)
	}
	if workers < 1 {
		workers = 1
	}

	cursor := NewCursor(prime.FirstCandidate, maxValue)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return runWorker(cursor, store, progress)
		})
	}
	return g.Wait()
}

// Run allocates the result store, executes the scan, and packages the
// outcome. A workers value of 1 selects the sequential path; 0 selects
// automatic worker detection. Store allocation failure is fatal and aborts
// the run before any work begins.
func Run(maxValue uint64, workers int, progress ProgressFn) (*Result, error) {
	if workers == 0 {
		workers = AutoWorkers()
	}
	if workers < 1 {
		workers = 1
	}

	store, err := prime.NewStore(maxValue)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if workers == 1 {
		err = RunSequential(maxValue, store, progress)
	} else {
		err = RunThreaded(maxValue, workers, store, progress)
	}
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	primes := store.Primes()
	return &Result{
		MaxValue: maxValue,
		Workers:  workers,
		Primes:   primes,
		Count:    len(primes),
		Elapsed:  elapsed,
	}, nil
}
