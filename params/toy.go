package params

import "math/big"

// Toy returns the N=209, g=4, λ(N)=90 parameters used throughout the
// worked test scenarios (209 = 11*19, λ(209) = lcm(10,18) = 90). Only
// safe for tests: the modulus is trivially factorable.
func Toy() *Params {
	// WithMinPrimeBits(8) only relaxes where MapToPrime forces its top
	// bit; it still hashes the full key with SHA-256, so toy primes come
	// out around 256 bits like everywhere else, not shorter.
	p, err := New(big.NewInt(209), big.NewInt(4), NewLambda(big.NewInt(90)),
		WithMinPrimeBits(8),
		WithMaxPrimeAttempts(1000),
	)
	if err != nil {
		panic("params: toy parameters are internally inconsistent: " + err.Error())
	}
	return p
}

// Demo returns a fixed, non-secret 2048-bit (N, g) pair with a synthetic
// λ(N), for local/dev bring-up without a secret store. Never use outside
// tests or a throwaway local environment: the trapdoor is public. g is
// derived as 2^2 mod N, the generator of N's quadratic-residue subgroup.
func Demo() *Params {
	n, ok := new(big.Int).SetString(demoNHex, 16)
	if !ok {
		panic("params: demo N_hex is malformed")
	}
	g := new(big.Int).Exp(big.NewInt(2), big.NewInt(2), n)

	// A synthetic 2048-bit λ(N): this fixed N ships without a known
	// factorization, since it's meant to be used without a trapdoor for
	// signature-only demos. We cannot derive a real λ(N) without
	// factoring N, so demo mode fabricates one of the right bit length
	// purely so Params construction succeeds; demo mode must never be
	// used for revocation.
	lambda := new(big.Int).Sub(n, big.NewInt(1))

	p, err := New(n, g, NewLambda(lambda))
	if err != nil {
		panic("params: demo parameters are internally inconsistent: " + err.Error())
	}
	return p
}

const demoNHex = "c09f09d858a2037ca76e7b1c52543a002213c8f1086a587f41f9616ac4fd8d6ecbec8852fd95adaec50c34cde7f0e676059896c2be9f2e479297a7507f1d1e58afe26be99489b798a704f1627b8e6b09b9a88b01ce697c4197bbeec134bb41aac0579c8026deec542c6965b0b8d39e77405a65110af3774f88cd463c6c304483c6f0a802f288c8ba4f071b6afcefa2b9395e2fe71aaea8e277c06b5d2724153c4a20209c06f2e0f523fb96b576a37937fb340478e86bbbfa8914c50f0f33a8948836caf99ca5f7f6983787a25e091d9591204dbb8c14e473d172f4e7a0b5164cf9ee97f838ded82fd2357a51a6f495850ef268009e7ecc19047f8e99a91a4d9b"
