// Package primemap derives accumulator-ready primes from arbitrary key
// bytes. A device's enrollment key is hashed into a candidate integer
// and walked upward until it lands on a value that is both prime and
// coprime to λ(N), so the trapdoor removal in package accumulator can
// always invert it later.
package primemap
