package identity

import (
	"context"
	"math/big"

	"github.com/dtrust-io/go-accumid/accumulator"
	"github.com/dtrust-io/go-accumid/anchor"
	"github.com/dtrust-io/go-accumid/witness"
)

// Revoke removes an ACTIVE device from the accumulator. It precomputes
// the new root and the refreshed witness every remaining ACTIVE device
// needs, then drives an anchor submission exactly like Enroll. The
// target device only moves to REVOKED, and its id_prime is only
// permanently retired, once that submission resolves to Executed.
//
// Revoking a device that is already PENDING_REVOKE or REVOKED, or that
// was never enrolled, fails without touching any state.
func (m *Machine) Revoke(ctx context.Context, deviceID []byte) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.devices[string(deviceID)]
	if !ok {
		return nil, classify(ErrNotFound)
	}
	if rec.Status != StatusActive {
		return nil, classify(ErrNotActive)
	}

	prevRoot := m.state.Root
	nextRoot, err := accumulator.RemoveSingle(prevRoot, rec.IDPrime, m.params.Lambda.Int(), m.params.N)
	if err != nil {
		return nil, classify(err)
	}

	active := m.activeEntries()
	entries := make([]witness.Entry, 0, len(active))
	for _, e := range active {
		if e.DeviceID == string(deviceID) {
			continue
		}
		entries = append(entries, e)
	}
	witnessUpdates, err := witness.RefreshAllAfterRemoval(nextRoot, entries, m.params.Lambda.Int(), m.params.N)
	if err != nil {
		return nil, classify(err)
	}

	rec.Status = StatusPendingRevoke

	m.inFlight = &pendingTransition{
		opType:         anchor.OpRevoke,
		deviceID:       deviceID,
		prevRoot:       prevRoot,
		nextRoot:       nextRoot,
		revokedPrime:   rec.IDPrime,
		witnessUpdates: witnessUpdates,
	}

	_, _, err = m.coordinator.Submit(ctx, anchor.OpRevoke, deviceID, prevRoot, nextRoot, m)
	if err != nil {
		m.logWarnf("identity: revoke device_id=%x rejected by anchor: %v", deviceID, err)
		return nil, classify(err)
	}
	m.logInfof("identity: revoked device_id=%x version=%d", deviceID, m.state.Version)
	return nextRoot, nil
}

// activeEntries returns a witness.Entry for every currently ACTIVE
// device, suitable for a batch witness refresh.
func (m *Machine) activeEntries() []witness.Entry {
	entries := make([]witness.Entry, 0, len(m.devices))
	for id, rec := range m.devices {
		if rec.Status == StatusActive {
			entries = append(entries, witness.Entry{DeviceID: id, Prime: rec.IDPrime})
		}
	}
	return entries
}
