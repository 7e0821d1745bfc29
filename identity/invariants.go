package identity

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/dtrust-io/go-accumid/accumulator"
)

// VerifyInvariants recomputes the accumulator root from the ACTIVE
// device set and every ACTIVE device's witness, and checks them against
// the committed state. It is an expensive O(devices) operation meant
// for periodic self-checks or test assertions, never the hot path.
func (m *Machine) VerifyInvariants() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.verifyInvariantsLocked(); err != nil {
		m.logErrorf("identity: invariant check failed: %v", err)
		return err
	}
	return nil
}

func (m *Machine) verifyInvariantsLocked() error {
	if m.inFlight != nil {
		return fmt.Errorf("%w: a transition is still in flight", ErrInvariantViolated)
	}

	primes := make([]*big.Int, 0, len(m.devices))
	for _, rec := range m.devices {
		if rec.Status == StatusActive {
			primes = append(primes, rec.IDPrime)
		}
	}

	recomputed, err := accumulator.RecomputeFromSet(primes, m.params.G, m.params.N)
	if err != nil {
		return err
	}
	if recomputed.Cmp(m.state.Root) != 0 {
		return fmt.Errorf("%w: committed root does not match the product of ACTIVE id_primes", ErrInvariantViolated)
	}

	for id, rec := range m.devices {
		idHex := hex.EncodeToString([]byte(id))
		if rec.Status != StatusActive {
			if rec.Witness != nil && rec.Status == StatusRevoked {
				return fmt.Errorf("%w: revoked device %s still carries a witness", ErrInvariantViolated, idHex)
			}
			continue
		}
		if rec.Witness == nil {
			return fmt.Errorf("%w: active device %s has no witness", ErrInvariantViolated, idHex)
		}
		if !accumulator.Verify(rec.Witness, rec.IDPrime, m.state.Root, m.params.N) {
			return fmt.Errorf("%w: witness for active device %s does not verify against the committed root", ErrInvariantViolated, idHex)
		}
	}
	return nil
}
