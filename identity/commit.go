package identity

import (
	"context"
	"encoding/hex"
	"strconv"

	"github.com/dtrust-io/go-accumid/hashutil"
	"github.com/dtrust-io/go-accumid/store"
)

// Commit applies the in-flight transition's precomputed effects and
// advances the accumulator state. It implements anchor.Committer; the
// Coordinator calls it synchronously, still holding the lock Enroll or
// Revoke acquired, after the anchor submission resolves to Executed.
func (m *Machine) Commit(operationID []byte) error {
	p := m.inFlight
	if p == nil {
		return ErrUnknownOperation
	}

	for id, w := range p.witnessUpdates {
		if rec, ok := m.devices[id]; ok {
			rec.Witness = w
			rec.UpdatedUnix = m.now().Unix()
		}
	}

	rec := m.devices[string(p.deviceID)]
	switch {
	case p.enrolledPrime != nil:
		rec.Status = StatusActive
		rec.UpdatedUnix = m.now().Unix()
	case p.revokedPrime != nil:
		rec.Status = StatusRevoked
		rec.Witness = nil // a revoked device's witness is never authoritative again
		rec.UpdatedUnix = m.now().Unix()
	}

	nextRootBytes, err := hashutil.BEBytes(p.nextRoot, 256)
	if err != nil {
		return err
	}
	m.state.Root = p.nextRoot
	m.state.Version++
	m.state.ParentHash = hashutil.Keccak256(nextRootBytes)

	m.history = append(m.history, TransitionRecord{
		OpType:      p.opType,
		DeviceID:    p.deviceID,
		PrevRoot:    p.prevRoot,
		NextRoot:    p.nextRoot,
		OperationID: append([]byte(nil), operationID...),
		ParentHash:  append([]byte(nil), m.state.ParentHash[:]...),
		Timestamp:   m.now().Unix(),
	})

	m.inFlight = nil
	if err := m.persist(rec); err != nil {
		m.logErrorf("identity: persist after commit op=%s device_id=%x: %v", p.opType, p.deviceID, err)
		return err
	}
	m.logInfof("identity: committed op=%s device_id=%x root_version=%d", p.opType, p.deviceID, m.state.Version)
	return nil
}

// Abort discards the in-flight transition. An enrolled-but-not-yet-
// committed device moves to REVOKED rather than being deleted, so its
// device_id and id_prime remain retired: a caller who retries the same
// enrollment with the same key gets ErrAlreadyEnrolled instead of a
// silently reusable slot. A device being revoked at the time of abort
// reverts to ACTIVE; every other device's precomputed witness refresh
// is simply discarded since it was never applied.
func (m *Machine) Abort(operationID []byte) error {
	p := m.inFlight
	if p == nil {
		return ErrUnknownOperation
	}

	rec := m.devices[string(p.deviceID)]
	switch {
	case p.enrolledPrime != nil:
		rec.Status = StatusRevoked
		rec.Witness = nil // a revoked device's witness is never authoritative again
		rec.UpdatedUnix = m.now().Unix()
	case p.revokedPrime != nil:
		rec.Status = StatusActive
		rec.UpdatedUnix = m.now().Unix()
	}

	m.inFlight = nil
	m.logWarnf("identity: aborted op=%s device_id=%x", p.opType, p.deviceID)
	return nil
}

// persist writes rec and the current accumulator metadata to the
// configured stores, if any. Both writes are best-effort relative to
// the in-memory commit, which has already happened by the time persist
// runs: a persistence failure here is reported to the caller but does
// not roll back the in-memory state, since the anchor has already
// executed the transition and reverting locally would desynchronize
// this process from the anchor's own view.
func (m *Machine) persist(rec *DeviceRecord) error {
	ctx := context.Background()

	if m.deviceStore != nil {
		witnessBytes := []byte(nil)
		if rec.Witness != nil {
			wb, err := hashutil.BEBytes(rec.Witness, 256)
			if err != nil {
				return err
			}
			witnessBytes = wb
		}
		sr := store.DeviceRecord{
			DeviceID:    rec.DeviceID,
			PublicKey:   rec.PublicKey,
			KeyType:     string(rec.KeyType),
			IDPrime:     rec.IDPrime.String(),
			Witness:     witnessBytes,
			Status:      int32(rec.Status),
			CreatedUnix: rec.CreatedUnix,
			UpdatedUnix: rec.UpdatedUnix,
		}
		if err := m.deviceStore.Put(ctx, sr, rec.persisted); err != nil {
			return err
		}
		rec.persisted = true
	}

	if m.metaStore != nil {
		rootBytes, err := hashutil.BEBytes(m.state.Root, 256)
		if err != nil {
			return err
		}
		if err := m.metaStore.Set(ctx, store.MetaKeyRoot, hex.EncodeToString(rootBytes)); err != nil {
			return err
		}
		if err := m.metaStore.Set(ctx, store.MetaKeyVersion, strconv.FormatUint(m.state.Version, 10)); err != nil {
			return err
		}
	}
	return nil
}
