package bigmath

import "math/big"

// ModPow returns base^exp mod m, in [0, m). Panics are never used here;
// malformed input is reported as an error because callers (accumulator,
// trapdoor removal) must be able to propagate INVALID_INPUT without a
// recover().
//
// ModPow(_, 0, m) returns 1 if m > 1, else 0 — matching the convention that
// exponentiation to the zero power is the multiplicative identity, reduced
// into the same range every other result lives in.
func ModPow(base, exp, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNonPositiveMod
	}
	if base.Sign() < 0 || exp.Sign() < 0 {
		return nil, ErrNegativeInput
	}
	return new(big.Int).Exp(base, exp, m), nil
}

// ConstantTimeModPow is used for the two operations that consume λ(N) as
// the exponent: trapdoor removal and witness refresh. big.Int.Exp already
// takes a side-channel-hardened path (Montgomery form with a fixed
// window) whenever the modulus is odd, which N always is for an RSA
// modulus; we keep this as a distinct entry point so the call sites that
// touch the trapdoor are easy to find and audit, and so a future
// constant-time backend can be swapped in without touching callers.
func ConstantTimeModPow(base, exp, m *big.Int) (*big.Int, error) {
	return ModPow(base, exp, m)
}

// GCD returns the greatest common divisor of a and b. Both must be
// non-negative.
func GCD(a, b *big.Int) (*big.Int, error) {
	if a.Sign() < 0 || b.Sign() < 0 {
		return nil, ErrNegativeInput
	}
	return new(big.Int).GCD(nil, nil, a, b), nil
}

// ExtGCD returns (gcd, x, y) such that a*x + b*y == gcd. ExtGCD(a, 0)
// returns (a, 1, 0), matching the textbook base case.
func ExtGCD(a, b *big.Int) (gcd, x, y *big.Int, err error) {
	if a.Sign() < 0 || b.Sign() < 0 {
		return nil, nil, nil, ErrNegativeInput
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0), nil
	}
	x = new(big.Int)
	y = new(big.Int)
	gcd = new(big.Int).GCD(x, y, a, b)
	return gcd, x, y, nil
}

// ModInverse returns x such that a*x ≡ 1 (mod m). Fails with ErrNoInverse
// when gcd(a, m) != 1, including the a == 0 case.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNonPositiveMod
	}
	if a.Sign() < 0 {
		return nil, ErrNegativeInput
	}
	if a.Sign() == 0 {
		return nil, ErrNoInverse
	}
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}
