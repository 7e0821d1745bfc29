package accumulator

import (
	"math/big"

	"github.com/dtrust-io/go-accumid/bigmath"
)

// RemoveSingle removes prime p from accumulator value a using the
// trapdoor λ. Returns A' such that Add(A', p, N) == A. Fails with
// ErrNotCoprime if gcd(p, λ) != 1 — this should never happen for a
// prime accepted by primemap (which enforces coprimality at
// enrollment), so callers treat it as an internal-bug signal rather
// than a normal validation failure.
func RemoveSingle(a, p, lambda, n *big.Int) (*big.Int, error) {
	if a.Sign() <= 0 || a.Cmp(n) >= 0 {
		return nil, ErrOutOfRange
	}
	if p.Sign() <= 0 {
		return nil, ErrNonPositive
	}
	pModLambda := new(big.Int).Mod(p, lambda)
	d, err := bigmath.ModInverse(pModLambda, lambda)
	if err != nil {
		return nil, ErrNotCoprime
	}
	return bigmath.ConstantTimeModPow(a, d, n)
}

// RemoveBatch removes every prime in primes from accumulator value a in
// a single trapdoor exponentiation: P = product(primes) mod λ,
// A' = A^(P^-1 mod λ) mod N. Fails with ErrNotCoprime if any prime
// shares a factor with λ.
func RemoveBatch(a *big.Int, primes []*big.Int, lambda, n *big.Int) (*big.Int, error) {
	if a.Sign() <= 0 || a.Cmp(n) >= 0 {
		return nil, ErrOutOfRange
	}
	if len(primes) == 0 {
		return new(big.Int).Set(a), nil
	}
	product := big.NewInt(1)
	for _, p := range primes {
		if p.Sign() <= 0 {
			return nil, ErrNonPositive
		}
		product.Mul(product, p)
		product.Mod(product, lambda)
	}
	d, err := bigmath.ModInverse(product, lambda)
	if err != nil {
		return nil, ErrNotCoprime
	}
	return bigmath.ConstantTimeModPow(a, d, n)
}
