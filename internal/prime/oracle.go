// Package prime implements the primality oracle and the result store shared
// by the sequential and threaded runners.
package prime

// IsPrime reports whether n is prime using trial division by odd candidates.
//
// The loop bound d <= n/d is equivalent to d*d <= n but cannot overflow for
// any uint64 input. The function is pure and safe to call concurrently from
// any number of goroutines.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
