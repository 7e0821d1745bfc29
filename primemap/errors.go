package primemap

import "errors"

var (
	// ErrEmptyKey is returned when MapToPrime is given zero-length key bytes.
	ErrEmptyKey = errors.New("primemap: key must not be empty")

	// ErrNoSuitablePrime is returned when the candidate scan exhausts
	// Params.MaxPrimeAttempts without finding a value that is both prime
	// and coprime to λ(N). This indicates a parameter misconfiguration,
	// not a per-request failure a caller should retry.
	ErrNoSuitablePrime = errors.New("primemap: exhausted candidate scan without finding a suitable prime")
)
