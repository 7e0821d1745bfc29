package params

import "math/big"

// Lambda holds λ(N), the Carmichael trapdoor. It must never be
// serialized to logs or to the anchor. Zeroize wipes the underlying
// words in place once the value is no longer needed — primarily used
// by tests and by re-key tooling that loads, uses, and discards a
// trapdoor within a single short-lived process.
type Lambda struct {
	v *big.Int
}

// NewLambda wraps a λ(N) value. The caller gives up ownership of v: it
// must not be reused or mutated after this call.
func NewLambda(v *big.Int) *Lambda {
	return &Lambda{v: v}
}

// Int returns the wrapped value. Panics if the value was already
// zeroized — a zeroized trapdoor being read is always a bug, never a
// recoverable condition.
func (l *Lambda) Int() *big.Int {
	if l.v == nil {
		panic(ErrLambdaZeroized)
	}
	return l.v
}

// Zeroize overwrites the trapdoor's backing words with zero and drops the
// reference. Safe to call more than once.
func (l *Lambda) Zeroize() {
	if l.v == nil {
		return
	}
	words := l.v.Bits()
	for i := range words {
		words[i] = 0
	}
	l.v = nil
}

// Params are the global, immutable-for-the-life-of-the-system
// cryptographic parameters: the 2048-bit RSA modulus N, the generator g
// of the quadratic-residue subgroup of Z*_N, and the trapdoor λ(N).
//
// Params, or the N and λ(N) values it holds, is passed explicitly into
// every pure function that needs it (primemap takes the Params itself;
// accumulator and witness take the bare values) rather than held as
// package-level state, so every call site is explicit about which
// modulus and trapdoor it operates under instead of relying on a global.
type Params struct {
	N      *big.Int
	G      *big.Int
	Lambda *Lambda

	// MinPrimeBits is the configurable floor for hash-to-prime output
	// (default 256).
	MinPrimeBits int
	// MillerRabinRounds is the configurable round count for primality
	// testing (default 64).
	MillerRabinRounds int
	// MaxPrimeAttempts bounds the hash-to-prime search (default 2e5).
	MaxPrimeAttempts int
}

// Option configures a Params value with a typed functional option,
// since Params has a small, fixed set of knobs.
type Option func(*Params)

// WithMinPrimeBits overrides the default 256-bit floor for hash-to-prime
// output.
func WithMinPrimeBits(bits int) Option {
	return func(p *Params) { p.MinPrimeBits = bits }
}

// WithMillerRabinRounds overrides the default round count of 64.
func WithMillerRabinRounds(rounds int) Option {
	return func(p *Params) { p.MillerRabinRounds = rounds }
}

// WithMaxPrimeAttempts overrides the default hash-to-prime search bound
// of 200,000.
func WithMaxPrimeAttempts(attempts int) Option {
	return func(p *Params) { p.MaxPrimeAttempts = attempts }
}

// New validates and constructs Params from N, g, and λ(N), applying
// defaults and then any supplied Options.
func New(n, g *big.Int, lambda *Lambda, opts ...Option) (*Params, error) {
	if n.Sign() <= 0 || g.Cmp(n) >= 0 || g.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if new(big.Int).GCD(nil, nil, g, n).Cmp(big.NewInt(1)) != 0 {
		return nil, ErrInvalidGenerator
	}
	p := &Params{
		N:                 n,
		G:                 g,
		Lambda:            lambda,
		MinPrimeBits:      256,
		MillerRabinRounds: 64,
		MaxPrimeAttempts:  200_000,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}
