package anchor

import (
	"context"

	"github.com/google/uuid"
)

// OpType names the kind of transition being anchored.
type OpType string

const (
	OpRegister OpType = "register"
	OpRevoke   OpType = "revoke"
	OpUpdate   OpType = "update"
)

// SubmissionRequest is the payload submitted to the anchor collaborator:
// a 256-byte big-endian root, a 32-byte parent hash, and a 32-byte
// operation id, plus the device this submission concerns (nil for a
// bare update).
type SubmissionRequest struct {
	OpType      OpType
	DeviceID    []byte // 32 bytes, nil for OpUpdate
	NextRoot    []byte // 256 bytes, big-endian
	ParentHash  []byte // 32 bytes
	OperationID []byte // 32 bytes
}

// Outcome is the terminal or intermediate state of a submission.
type Outcome int

const (
	OutcomeExecuted Outcome = iota
	OutcomePending
	OutcomeRejected
	// OutcomeRejectedParentHashMismatch is OutcomeRejected's more specific
	// sibling: the anchor's own stored parentHash no longer matches the
	// one this submission was built against, meaning a concurrent state
	// change committed first. Distinct from a bare OutcomeRejected
	// because the caller should recompute against the new root and
	// retry, not treat the operation as permanently refused.
	OutcomeRejectedParentHashMismatch
)

// SubmissionHandle identifies a pending, not-yet-resolved submission
// awaiting multi-party approval.
type SubmissionHandle struct {
	ID      uuid.UUID
	Request SubmissionRequest
}

// NewSubmissionHandle allocates a handle for req.
func NewSubmissionHandle(req SubmissionRequest) *SubmissionHandle {
	return &SubmissionHandle{ID: uuid.New(), Request: req}
}

// Result is what a submission or a resolution poll returns.
type Result struct {
	Outcome Outcome
	Handle  *SubmissionHandle // set when Outcome == OutcomePending
}

// CurrentState reports the anchor's own view of the committed root.
type CurrentState struct {
	RootBytes []byte // 256 bytes, big-endian
	Hash      [32]byte
	Version   uint64
}

// Anchor is the external blockchain-anchor collaborator. The anchor may
// execute a submission immediately or return a pending handle that
// later resolves via Resolve. Authorization is performed by the
// anchor, not by this package.
type Anchor interface {
	Register(ctx context.Context, req SubmissionRequest) (Result, error)
	Revoke(ctx context.Context, req SubmissionRequest) (Result, error)
	Update(ctx context.Context, req SubmissionRequest) (Result, error)
	Resolve(ctx context.Context, handle *SubmissionHandle) (Result, error)
	GetCurrentState(ctx context.Context) (CurrentState, error)
}
