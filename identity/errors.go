package identity

import "errors"

var (
	ErrAlreadyEnrolled   = errors.New("identity: device_id already enrolled")
	ErrNotFound          = errors.New("identity: no such device")
	ErrNotActive         = errors.New("identity: device is not ACTIVE")
	ErrUnknownOperation  = errors.New("identity: operationId does not match any in-flight transition")
	ErrInvariantViolated = errors.New("identity: a core invariant does not hold")
)
