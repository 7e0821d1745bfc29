// Package coreerr defines the closed taxonomy of error kinds the core
// raises at its exposed boundary. Internal packages return their own
// sentinel errors (one errors.go per package); the admin and read
// operations of identity.Machine wrap the sentinels they recognize into
// a coreerr.Error so callers one level up see a single, stable Kind plus
// a human message. Packages anchor and challenge return their own
// sentinels or outcomes directly, and an error identity does not
// recognize passes through unwrapped.
package coreerr

import "fmt"

// Kind is a closed enum of the error kinds the core raises. New values
// must not be added without updating every switch over Kind in the API
// layer's error mapping (out of this core's scope, but depended upon).
type Kind string

const (
	InvalidInput       Kind = "INVALID_INPUT"
	AlreadyEnrolled    Kind = "ALREADY_ENROLLED"
	NotFound           Kind = "NOT_FOUND"
	NotActive          Kind = "NOT_ACTIVE"
	NoSuitablePrime    Kind = "NO_SUITABLE_PRIME"
	NotCoprime         Kind = "NOT_COPRIME"
	ParentHashMismatch Kind = "PARENT_HASH_MISMATCH"
	AnchorTimeout      Kind = "ANCHOR_TIMEOUT"
	AnchorRejected     Kind = "ANCHOR_REJECTED"
	StaleWitness       Kind = "STALE_WITNESS"
	AuthFailed         Kind = "AUTH_FAILED"
)

// Error is the error type surfaced at the core's exposed boundary: a
// closed Kind, a human message, and the wrapped internal cause (not
// itself shown to callers outside this module, but available via
// errors.Unwrap for logging).
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds a coreerr.Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds a coreerr.Error that wraps an internal cause, using the
// cause's own message as the human message unless overridden.
func Wrap(kind Kind, cause error, message string) *Error {
	if message == "" {
		message = cause.Error()
	}
	return &Error{Kind: kind, Message: message, Cause: cause}
}
