package prime

import (
	"math"

	apperrors "github.com/talmage47/pprimes/internal/errors"
)

// FirstCandidate is the smallest integer whose primality is meaningful.
// Store slots below it are always false.
const FirstCandidate uint64 = 2

// Store records one primality verdict per candidate integer in [0, Max()].
//
// The store itself performs no locking: the runners guarantee that each index
// is written by at most one goroutine, because candidates are handed out
// exactly once by the work cursor. Reads are only valid after the producing
// run has completed.
type Store struct {
	flags []bool
	max   uint64
}

// NewStore allocates a zero-initialized store covering [0, maxValue].
// Allocation problems are fatal for the caller: a half-sized store would
// violate the completeness invariant of a run, so the error must abort it.
func NewStore(maxValue uint64) (*Store, error) {
	if maxValue == math.MaxUint64 {
		return nil, apperrors.NewResourceError("result store", nil)
	}
	return &Store{
		flags: make([]bool, maxValue+1),
		max:   maxValue,
	}, nil
}

// Max returns the inclusive upper bound of the covered range.
func (s *Store) Max() uint64 { return s.max }

// Mark records n as prime. Out-of-range values are ignored.
func (s *Store) Mark(n uint64) {
	if n <= s.max {
		s.flags[n] = true
	}
}

// Prime reports the recorded verdict for n.
func (s *Store) Prime(n uint64) bool {
	return n <= s.max && s.flags[n]
}

// Count returns the number of recorded primes.
func (s *Store) Count() int {
	count := 0
	for _, prime := range s.flags {
		if prime {
			count++
		}
	}
	return count
}

// Primes returns all recorded primes in increasing order.
func (s *Store) Primes() []uint64 {
	primes := make([]uint64, 0, s.Count())
	for n, prime := range s.flags {
		if prime {
			primes = append(primes, uint64(n))
		}
	}
	return primes
}

// Equal reports whether two stores cover the same range with identical
// verdicts. Used to verify that the sequential and threaded runners agree.
func (s *Store) Equal(other *Store) bool {
	if other == nil || s.max != other.max {
		return false
	}
	for i := range s.flags {
		if s.flags[i] != other.flags[i] {
			return false
		}
	}
	return true
}
