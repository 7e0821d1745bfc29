/*
Package accumulator implements the RSA accumulator algebra: Add,
Verify, RecomputeFromSet, and the trapdoor-based RemoveSingle and
RemoveBatch. Every function here is pure — no I/O, no shared state, no
mutation of its arguments — so it can be exercised and reasoned about
independently of how the device table and accumulator state are
persisted.

# Accumulator membership

For a generator g and modulus N, the accumulator over a set of primes
{p_1, ..., p_k} is

	A = g^(p_1 * p_2 * ... * p_k) mod N

Membership of p_i is witnessed by w_i = g^(product of all primes except
p_i) mod N, which satisfies w_i^p_i ≡ A (mod N). Folding primes into the
accumulator one at a time via modular exponentiation (Add) avoids ever
materializing the full product as an exponent; RecomputeFromSet performs
exactly that fold from a known starting point (the generator g).

# Why removal needs the trapdoor

Removing p_i without knowledge of λ(N) requires recomputing the
accumulator from the remaining set from scratch (RecomputeFromSet minus
p_i) — O(k) exponentiations with product-of-primes-sized exponents.
Knowing λ(N) = lcm(p-1, q-1) for N = p*q lets RemoveSingle instead
compute the modular inverse of p_i mod λ(N) and perform a single
exponentiation: A^(p_i^-1 mod λ) ≡ A^(1/p_i) (mod N), by Euler/Carmichael
reduction of the exponent group order. RemoveBatch generalizes this to a
whole set of primes at once by inverting their product mod λ(N).
*/
package accumulator
