package engine

import "github.com/talmage47/pprimes/internal/prime"

// ProgressFn observes the engine's advance through the candidate range. It is
// invoked outside the cursor lock after each claim with the claimed candidate
// and the inclusive upper bound, possibly from several goroutines at once, so
// implementations must be concurrency-safe. A nil ProgressFn disables
// reporting.
type ProgressFn func(claimed, upper uint64)

// runWorker executes the claim → test → record loop against the shared cursor
// until it is exhausted. The primality test and the store write both happen
// outside the lock: the test touches no shared state, and the write is safe
// without locking because claims are exclusive, so no two workers ever share
// a store index.
func runWorker(cursor *Cursor, store *prime.Store, progress ProgressFn) error {
	for {
		n, ok := cursor.Claim()
		if !ok {
			return nil
		}
		if prime.IsPrime(n) {
			store.Mark(n)
		}
		if progress != nil {
			progress(n, cursor.Upper())
		}
	}
}
