// Package challenge implements the nonce-based challenge-response
// verifier: it issues single-use, TTL-bound nonces to ACTIVE devices
// and verifies a returned (prime, witness, signature) triple against
// the current accumulator root. It owns only the nonce table; the
// accumulator state and device table belong to package identity, which
// it reads through the DeviceSource interface.
package challenge
