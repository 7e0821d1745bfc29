package anchor

import "errors"

var (
	// ErrSubmissionInProgress names the condition of another submission
	// still being outstanding. Coordinator.Submit does not return it: a
	// second caller blocks on the coordinator's mutex until the
	// outstanding submission has finished, so only one is in flight at
	// a time.
	ErrSubmissionInProgress = errors.New("anchor: a submission is already outstanding")

	// ErrPayloadConflict is returned when a caller attempts to resubmit a
	// previously-used operationId with a different payload.
	ErrPayloadConflict = errors.New("anchor: operationId already used with a different payload")

	// ErrParentHashMismatch is returned when the anchor rejects a
	// submission because its stored parentHash no longer matches —
	// concurrent state change; the caller should recompute and retry.
	ErrParentHashMismatch = errors.New("anchor: parentHash mismatch, concurrent state change")

	// ErrRejected is returned when the anchor explicitly rejects a
	// submission for a reason other than parentHash mismatch.
	ErrRejected = errors.New("anchor: submission rejected")

	// ErrTimeout is returned when a pending submission does not resolve
	// within the configured timeout.
	ErrTimeout = errors.New("anchor: submission timed out waiting for resolution")
)
