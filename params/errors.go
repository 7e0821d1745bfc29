package params

import "errors"

var (
	ErrInvalidModulus   = errors.New("params: N must be a positive integer greater than g")
	ErrInvalidGenerator = errors.New("params: g must be coprime to N and less than N")
	ErrMissingSecret    = errors.New("params: bootstrap metadata did not return a required key")
	ErrLambdaZeroized   = errors.New("params: λ(N) has already been zeroized")
)
