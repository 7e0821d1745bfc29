package accumulator

import (
	"math/big"

	"github.com/dtrust-io/go-accumid/bigmath"
)

// Add returns the next accumulator value after folding in prime p:
// A^p mod N. Requires 1 <= A < N and p > 0.
func Add(a, p, n *big.Int) (*big.Int, error) {
	if a.Sign() <= 0 || a.Cmp(n) >= 0 {
		return nil, ErrOutOfRange
	}
	if p.Sign() <= 0 {
		return nil, ErrNonPositive
	}
	return bigmath.ModPow(a, p, n)
}

// Verify reports whether w is a valid witness for p against accumulator
// value a: w^p ≡ a (mod N), with both w and a canonical members of
// [1, N).
func Verify(w, p, a, n *big.Int) bool {
	if w.Sign() <= 0 || w.Cmp(n) >= 0 {
		return false
	}
	if a.Sign() <= 0 || a.Cmp(n) >= 0 {
		return false
	}
	if p.Sign() <= 0 {
		return false
	}
	got, err := bigmath.ModPow(w, p, n)
	if err != nil {
		return false
	}
	return got.Cmp(a) == 0
}

// RecomputeFromSet folds g through every prime in primes, in whatever
// order they are given: A := g; for each p, A := A^p mod N. The result
// is order-independent because multiplication in the exponent is
// commutative. An empty set returns g unchanged.
func RecomputeFromSet(primes []*big.Int, g, n *big.Int) (*big.Int, error) {
	a := new(big.Int).Set(g)
	for _, p := range primes {
		if p.Sign() <= 0 {
			return nil, ErrNonPositive
		}
		next, err := bigmath.ModPow(a, p, n)
		if err != nil {
			return nil, err
		}
		a = next
	}
	return a, nil
}
