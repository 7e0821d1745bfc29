package bigmath

import "errors"

var (
	ErrNoInverse      = errors.New("bigmath: no modular inverse exists")
	ErrNonPositiveMod = errors.New("bigmath: modulus must be positive")
	ErrNegativeInput  = errors.New("bigmath: inputs must be non-negative")
)
