package primemap

import (
	"crypto/sha256"
	"math/big"

	"github.com/dtrust-io/go-accumid/bigmath"
	"github.com/dtrust-io/go-accumid/params"
)

// MapToPrime derives a prime from key bytes k that is coprime to λ(N).
// It hashes k with SHA-256, forces the result odd and at least
// p.MinPrimeBits bits long, then scans upward in steps of two until a
// value passes deterministic Miller–Rabin and is coprime to λ(N). The
// output is a pure function of k and p: same inputs, same prime, every
// time.
func MapToPrime(k []byte, p *params.Params) (*big.Int, error) {
	if len(k) == 0 {
		return nil, ErrEmptyKey
	}

	sum := sha256.Sum256(k)
	candidate := new(big.Int).SetBytes(sum[:])
	candidate.SetBit(candidate, p.MinPrimeBits-1, 1)
	candidate.SetBit(candidate, 0, 1)

	lambda := p.Lambda.Int()
	two := big.NewInt(2)

	for attempt := 0; attempt < p.MaxPrimeAttempts; attempt++ {
		if bigmath.MillerRabin(candidate, p.MillerRabinRounds) {
			gcd, err := bigmath.GCD(candidate, lambda)
			if err != nil {
				return nil, err
			}
			if gcd.Cmp(big.NewInt(1)) == 0 {
				return candidate, nil
			}
		}
		candidate = new(big.Int).Add(candidate, two)
	}
	return nil, ErrNoSuitablePrime
}
