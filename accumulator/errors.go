package accumulator

import "errors"

var (
	ErrOutOfRange  = errors.New("accumulator: value must be in [1, N)")
	ErrNonPositive = errors.New("accumulator: prime/exponent must be positive")
	ErrNotCoprime  = errors.New("accumulator: not coprime to λ(N); trapdoor inversion impossible")
)
