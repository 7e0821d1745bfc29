package identity

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"math/big"

	"github.com/dtrust-io/go-accumid/accumulator"
	"github.com/dtrust-io/go-accumid/anchor"
	"github.com/dtrust-io/go-accumid/hashutil"
	"github.com/dtrust-io/go-accumid/primemap"
	"github.com/dtrust-io/go-accumid/signer"
	"github.com/dtrust-io/go-accumid/witness"
)

// deriveDeviceID returns the device_id for a PEM-encoded public key: the
// Keccak-256 digest of the DER-encoded SubjectPublicKeyInfo the PEM
// block wraps. Also returns the raw DER bytes, which double as the key
// material primemap.MapToPrime hashes into id_prime.
func deriveDeviceID(pubKeyPEM []byte) (deviceID []byte, der []byte, err error) {
	block, _ := pem.Decode(pubKeyPEM)
	if block == nil {
		return nil, nil, signer.ErrInvalidPEM
	}
	if _, err := x509.ParsePKIXPublicKey(block.Bytes); err != nil {
		return nil, nil, err
	}
	digest := hashutil.Keccak256(block.Bytes)
	return digest[:], block.Bytes, nil
}

// EnrollResult reports the outcome of a successful enrollment.
type EnrollResult struct {
	DeviceID []byte
	IDPrime  *big.Int
	Witness  *big.Int
	NextRoot *big.Int
}

// Enroll admits a new device. It derives device_id from pubKeyPEM, maps
// the same key bytes to an accumulator prime, folds the prime into the
// accumulator, and precomputes the witness refresh every other ACTIVE
// device will need. The device and every other ACTIVE device's witness
// only become authoritative once the anchor submission this call drives
// resolves to Executed; on Rejected or timeout the whole attempt is
// discarded and the device is left REVOKED so its device_id is never
// reused.
func (m *Machine) Enroll(ctx context.Context, pubKeyPEM []byte, keyType signer.KeyType) (EnrollResult, error) {
	deviceID, der, err := deriveDeviceID(pubKeyPEM)
	if err != nil {
		return EnrollResult{}, classify(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.devices[string(deviceID)]; exists {
		return EnrollResult{}, classify(ErrAlreadyEnrolled)
	}

	prime, err := primemap.MapToPrime(der, m.params)
	if err != nil {
		return EnrollResult{}, classify(err)
	}

	prevRoot := m.state.Root
	nextRoot, err := accumulator.Add(prevRoot, prime, m.params.N)
	if err != nil {
		return EnrollResult{}, classify(err)
	}
	enrolledWitness := witness.AtEnrollment(prevRoot)

	active := m.activeEntries()
	witnessUpdates := make(map[string]*big.Int, len(active))
	for _, e := range active {
		w := m.devices[e.DeviceID].Witness
		refreshed, err := witness.RefreshOnAdd(w, prime, m.params.N)
		if err != nil {
			return EnrollResult{}, classify(err)
		}
		witnessUpdates[e.DeviceID] = refreshed
	}

	rec := &DeviceRecord{
		DeviceID:    deviceID,
		PublicKey:   string(pubKeyPEM),
		KeyType:     keyType,
		IDPrime:     prime,
		Witness:     enrolledWitness,
		Status:      StatusPending,
		CreatedUnix: m.now().Unix(),
		UpdatedUnix: m.now().Unix(),
	}
	m.devices[string(deviceID)] = rec

	m.inFlight = &pendingTransition{
		opType:          anchor.OpRegister,
		deviceID:        deviceID,
		prevRoot:        prevRoot,
		nextRoot:        nextRoot,
		enrolledPrime:   prime,
		enrolledWitness: enrolledWitness,
		witnessUpdates:  witnessUpdates,
	}

	_, _, err = m.coordinator.Submit(ctx, anchor.OpRegister, deviceID, prevRoot, nextRoot, m)
	if err != nil {
		m.logWarnf("identity: enroll device_id=%x rejected by anchor: %v", deviceID, err)
		return EnrollResult{}, classify(err)
	}
	m.logInfof("identity: enrolled device_id=%x version=%d", deviceID, m.state.Version)

	return EnrollResult{
		DeviceID: deviceID,
		IDPrime:  prime,
		Witness:  enrolledWitness,
		NextRoot: nextRoot,
	}, nil
}
