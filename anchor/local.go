package anchor

import (
	"context"
	"sync"

	"github.com/dtrust-io/go-accumid/hashutil"
)

// Local is a synchronous, in-process Anchor. Every submission resolves
// immediately, as executed or as rejected on a parentHash mismatch
// (see apply) — there is no pending/multi-party state — which makes it
// useful for single-process deployments and integration tests that want
// to exercise the full anchor interface without standing up a real
// anchor service. Coordinator's nil-Anchor local-only mode skips the
// interface entirely; Local exercises it.
type Local struct {
	mu      sync.Mutex
	root    []byte
	hash    [32]byte
	version uint64
}

// NewLocal returns a Local anchor seeded with the given initial root
// and parent hash.
func NewLocal(initialRoot []byte, initialHash [32]byte) *Local {
	return &Local{root: initialRoot, hash: initialHash}
}

// apply enforces the same replay protection spec §4.6 expects of a real
// anchor: a submission's parentHash must match keccak256 of the root
// this Local currently considers current, or it is rejected rather than
// applied. The very first submission against a freshly constructed
// Local is exempt, since its seeded initialHash is whatever the caller
// chose rather than something derivable from initialRoot.
func (l *Local) apply(req SubmissionRequest) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var submittedParentHash [32]byte
	copy(submittedParentHash[:], req.ParentHash)
	if l.version > 0 && submittedParentHash != l.hash {
		return Result{Outcome: OutcomeRejectedParentHashMismatch}, nil
	}

	l.root = req.NextRoot
	l.hash = hashutil.Keccak256(req.NextRoot)
	l.version++

	return Result{Outcome: OutcomeExecuted}, nil
}

func (l *Local) Register(_ context.Context, req SubmissionRequest) (Result, error) { return l.apply(req) }
func (l *Local) Revoke(_ context.Context, req SubmissionRequest) (Result, error)   { return l.apply(req) }
func (l *Local) Update(_ context.Context, req SubmissionRequest) (Result, error)   { return l.apply(req) }

// Resolve is never called for Local submissions since they never
// return OutcomePending, but is implemented to satisfy Anchor.
func (l *Local) Resolve(_ context.Context, _ *SubmissionHandle) (Result, error) {
	return Result{Outcome: OutcomeExecuted}, nil
}

func (l *Local) GetCurrentState(_ context.Context) (CurrentState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return CurrentState{RootBytes: l.root, Hash: l.hash, Version: l.version}, nil
}
