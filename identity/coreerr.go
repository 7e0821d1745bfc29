package identity

import (
	"errors"

	"github.com/dtrust-io/go-accumid/accumulator"
	"github.com/dtrust-io/go-accumid/anchor"
	"github.com/dtrust-io/go-accumid/coreerr"
	"github.com/dtrust-io/go-accumid/primemap"
)

// classify wraps an internal sentinel error into the closed boundary
// taxonomy callers outside this module see. errors.Is/errors.As against
// the original sentinel still work through coreerr.Error's Unwrap, so
// callers inside this module (and its own tests) can keep comparing
// against the package-local sentinel directly. An error classify
// doesn't recognize passes through unchanged: it is an infrastructure
// failure (a store write error, a context cancellation), not a Kind in
// the closed taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrAlreadyEnrolled):
		return coreerr.Wrap(coreerr.AlreadyEnrolled, err, "")
	case errors.Is(err, ErrNotFound):
		return coreerr.Wrap(coreerr.NotFound, err, "")
	case errors.Is(err, ErrNotActive):
		return coreerr.Wrap(coreerr.NotActive, err, "")
	case errors.Is(err, primemap.ErrNoSuitablePrime):
		return coreerr.Wrap(coreerr.NoSuitablePrime, err, "")
	case errors.Is(err, accumulator.ErrNotCoprime):
		return coreerr.Wrap(coreerr.NotCoprime, err, "")
	case errors.Is(err, anchor.ErrParentHashMismatch):
		return coreerr.Wrap(coreerr.ParentHashMismatch, err, "")
	case errors.Is(err, anchor.ErrRejected):
		return coreerr.Wrap(coreerr.AnchorRejected, err, "")
	case errors.Is(err, anchor.ErrTimeout):
		return coreerr.Wrap(coreerr.AnchorTimeout, err, "")
	default:
		return err
	}
}
