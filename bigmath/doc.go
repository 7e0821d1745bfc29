// Package bigmath provides the modular arithmetic primitives the rest of
// this module builds on: modular exponentiation, gcd/extended-gcd, modular
// inverse, and a deterministic Miller-Rabin primality test.
//
// Every other package consumes only the fixed constants (N, g, λ(N)); this
// package never reads or mutates any process-wide state.
package bigmath
