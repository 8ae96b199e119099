package prime

import (
	"math"
	"testing"

	apperrors "github.com/talmage47/pprimes/internal/errors"
)

// TestNewStore verifies sizing and the zero-initialized state.
func TestNewStore(t *testing.T) {
	t.Parallel()

	t.Run("covers the full range", func(t *testing.T) {
		s, err := NewStore(10)
		if err != nil {
			t.Fatalf("NewStore(10) error: %v", err)
		}
		if s.Max() != 10 {
			t.Errorf("Max() = %d, want 10", s.Max())
		}
		for n := uint64(0); n <= 10; n++ {
			if s.Prime(n) {
				t.Errorf("fresh store should have no verdicts, got Prime(%d) = true", n)
			}
		}
	})

	t.Run("rejects index arithmetic overflow", func(t *testing.T) {
		_, err := NewStore(math.MaxUint64)
		if err == nil {
			t.Fatal("NewStore(MaxUint64) should fail")
		}
		if !apperrors.IsResourceError(err) {
			t.Errorf("error should be a ResourceError, got %T: %v", err, err)
		}
	})
}

// TestStore_MarkAndQuery verifies writes, reads, counting, and ordering.
func TestStore_MarkAndQuery(t *testing.T) {
	t.Parallel()

	s, err := NewStore(10)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	// Mark out of order; Primes() must still come back sorted.
	for _, n := range []uint64{7, 2, 5, 3} {
		s.Mark(n)
	}

	if s.Count() != 4 {
		t.Errorf("Count() = %d, want 4", s.Count())
	}

	want := []uint64{2, 3, 5, 7}
	got := s.Primes()
	if len(got) != len(want) {
		t.Fatalf("Primes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Primes()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	t.Run("out of range mark is ignored", func(t *testing.T) {
		s.Mark(11)
		if s.Count() != 4 {
			t.Errorf("Count() after out-of-range Mark = %d, want 4", s.Count())
		}
		if s.Prime(11) {
			t.Error("Prime(11) should be false for a store with max 10")
		}
	})
}

// TestStore_Equal verifies the store comparison used by the equivalence tests.
func TestStore_Equal(t *testing.T) {
	t.Parallel()

	a, _ := NewStore(10)
	b, _ := NewStore(10)

	if !a.Equal(b) {
		t.Error("two fresh stores of equal size should be equal")
	}

	a.Mark(7)
	if a.Equal(b) {
		t.Error("stores with different verdicts should differ")
	}

	b.Mark(7)
	if !a.Equal(b) {
		t.Error("stores with identical verdicts should be equal")
	}

	t.Run("different sizes differ", func(t *testing.T) {
		c, _ := NewStore(11)
		if a.Equal(c) {
			t.Error("stores covering different ranges should differ")
		}
	})

	t.Run("nil differs", func(t *testing.T) {
		if a.Equal(nil) {
			t.Error("Equal(nil) should be false")
		}
	})
}
