package anchor

import (
	"context"
	"encoding/binary"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/dtrust-io/go-accumid/hashutil"
)

// Committer is what the identity state machine exposes to a
// Coordinator: commit or abort the transition identified by
// operationID. The coordinator never inspects device or accumulator
// state directly — it only drives this interface — so this package has
// no dependency on package identity.
type Committer interface {
	Commit(operationID []byte) error
	Abort(operationID []byte) error
}

// DefaultTimeout is the synchronous submission timeout.
const DefaultTimeout = 30 * time.Second

const pollInterval = 50 * time.Millisecond

// Coordinator serializes transitions against an external Anchor. A nil
// Anchor puts the coordinator in local-only mode: every submission
// commits synchronously without leaving the process, while still
// advancing parentHash exactly as a real anchor round trip would.
type Coordinator struct {
	anchor  Anchor
	timeout time.Duration

	mu          sync.Mutex // only one outstanding submission at a time
	submitted   map[string][32]byte // string(operationId) -> payload fingerprint
	log         logger.Logger // optional; nil means no logging
}

// CoordinatorOption configures a Coordinator at construction time.
type CoordinatorOption func(*Coordinator)

// WithLogger attaches a structured logger to the Coordinator. Optional:
// a nil logger (the default) means every submission outcome is silent.
func WithLogger(log logger.Logger) CoordinatorOption {
	return func(c *Coordinator) { c.log = log }
}

// NewCoordinator constructs a Coordinator. Pass a nil Anchor for
// local-only operation.
func NewCoordinator(a Anchor, timeout time.Duration, opts ...CoordinatorOption) *Coordinator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Coordinator{
		anchor:    a,
		timeout:   timeout,
		submitted: make(map[string][32]byte),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) logInfof(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Infof(format, args...)
	}
}

func (c *Coordinator) logWarnf(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Warnf(format, args...)
	}
}

// Submit runs the full anchoring protocol: derive parentHash and
// operationId from prevRoot and nextRoot, submit to the anchor, wait
// for resolution, and call committer.Commit or committer.Abort
// accordingly. It returns the derived operationId and parentHash
// regardless of outcome, and a non-nil error on rejection or timeout
// (after having already called Abort).
func (c *Coordinator) Submit(
	ctx context.Context,
	opType OpType,
	deviceID []byte,
	prevRoot, nextRoot *big.Int,
	committer Committer,
) (operationID, parentHash []byte, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prevRootBytes, err := hashutil.BEBytes(prevRoot, 256)
	if err != nil {
		return nil, nil, err
	}
	parentHashArr := hashutil.Keccak256(prevRootBytes)
	parentHash = parentHashArr[:]

	nextRootBytes, err := hashutil.BEBytes(nextRoot, 256)
	if err != nil {
		return nil, nil, err
	}

	var tsBytes [8]byte
	binary.BigEndian.PutUint64(tsBytes[:], uint64(time.Now().Unix()))
	opIDArr := hashutil.Keccak256(tsBytes[:], nextRootBytes, parentHash)
	operationID = opIDArr[:]

	req := SubmissionRequest{
		OpType:      opType,
		DeviceID:    deviceID,
		NextRoot:    nextRootBytes,
		ParentHash:  parentHash,
		OperationID: operationID,
	}

	fingerprint := hashutil.Keccak256(nextRootBytes, parentHash, []byte(opType))
	key := string(operationID)
	if prior, ok := c.submitted[key]; ok && prior != fingerprint {
		_ = committer.Abort(operationID)
		return operationID, parentHash, ErrPayloadConflict
	}
	c.submitted[key] = fingerprint

	if c.anchor == nil {
		if cerr := committer.Commit(operationID); cerr != nil {
			return operationID, parentHash, cerr
		}
		c.logInfof("anchor: local-only commit op=%s operation_id=%x", opType, operationID)
		return operationID, parentHash, nil
	}

	result, err := c.dispatch(ctx, req)
	if err != nil {
		_ = committer.Abort(operationID)
		c.logWarnf("anchor: submit op=%s operation_id=%x failed: %v", opType, operationID, err)
		return operationID, parentHash, err
	}

	result, err = c.awaitResolution(ctx, result)
	if err != nil {
		_ = committer.Abort(operationID)
		c.logWarnf("anchor: resolve op=%s operation_id=%x failed: %v", opType, operationID, err)
		return operationID, parentHash, err
	}

	switch result.Outcome {
	case OutcomeExecuted:
		if cerr := committer.Commit(operationID); cerr != nil {
			return operationID, parentHash, cerr
		}
		c.logInfof("anchor: executed op=%s operation_id=%x", opType, operationID)
		return operationID, parentHash, nil
	case OutcomeRejected:
		_ = committer.Abort(operationID)
		c.logWarnf("anchor: rejected op=%s operation_id=%x", opType, operationID)
		return operationID, parentHash, ErrRejected
	case OutcomeRejectedParentHashMismatch:
		_ = committer.Abort(operationID)
		c.logWarnf("anchor: parentHash mismatch op=%s operation_id=%x", opType, operationID)
		return operationID, parentHash, ErrParentHashMismatch
	default:
		_ = committer.Abort(operationID)
		return operationID, parentHash, errors.New("anchor: unexpected outcome after resolution")
	}
}

func (c *Coordinator) dispatch(ctx context.Context, req SubmissionRequest) (Result, error) {
	switch req.OpType {
	case OpRegister:
		return c.anchor.Register(ctx, req)
	case OpRevoke:
		return c.anchor.Revoke(ctx, req)
	default:
		return c.anchor.Update(ctx, req)
	}
}

// awaitResolution polls Resolve until the submission leaves the Pending
// state or the coordinator's timeout elapses. Executed/Rejected results
// pass through unchanged.
func (c *Coordinator) awaitResolution(ctx context.Context, result Result) (Result, error) {
	if result.Outcome != OutcomePending {
		return result, nil
	}

	deadline := time.Now().Add(c.timeout)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if time.Now().After(deadline) {
			return Result{}, ErrTimeout
		}
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-ticker.C:
			next, err := c.anchor.Resolve(ctx, result.Handle)
			if err != nil {
				return Result{}, err
			}
			if next.Outcome != OutcomePending {
				return next, nil
			}
		}
	}
}
