// Package accumtesting provides shared fixtures for tests across the
// module: toy accumulator parameters and deterministic device key
// generation, so packages that need a device identity to exercise
// enrollment, revocation, or authentication don't hand-roll key
// material in each _test.go file.
package accumtesting
