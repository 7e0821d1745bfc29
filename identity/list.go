package identity

import (
	"encoding/hex"
	"math/big"

	"github.com/dtrust-io/go-accumid/signer"
)

// DeviceSummary is the read-only view of a device record returned by
// ListDevices and GetDevice: a copy, never the live record, so callers
// cannot mutate the machine's state through it.
type DeviceSummary struct {
	DeviceID  string // hex-encoded
	PublicKey string // PEM
	KeyType   signer.KeyType
	Status    Status
	IDPrime   *big.Int
	Witness   *big.Int // nil once REVOKED

	CreatedUnix int64
	UpdatedUnix int64
}

func summarize(id string, rec *DeviceRecord) DeviceSummary {
	s := DeviceSummary{
		DeviceID:    id,
		PublicKey:   rec.PublicKey,
		KeyType:     rec.KeyType,
		Status:      rec.Status,
		CreatedUnix: rec.CreatedUnix,
		UpdatedUnix: rec.UpdatedUnix,
	}
	if rec.IDPrime != nil {
		s.IDPrime = new(big.Int).Set(rec.IDPrime)
	}
	if rec.Witness != nil {
		s.Witness = new(big.Int).Set(rec.Witness)
	}
	return s
}

// ListDevices returns a summary of every device whose status matches
// one of the given filter statuses, or every device if filter is empty.
func (m *Machine) ListDevices(filter ...Status) []DeviceSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := make(map[Status]bool, len(filter))
	for _, s := range filter {
		want[s] = true
	}

	out := make([]DeviceSummary, 0, len(m.devices))
	for idBytes, rec := range m.devices {
		if len(want) > 0 && !want[rec.Status] {
			continue
		}
		out = append(out, summarize(hexID(idBytes), rec))
	}
	return out
}

// GetDevice returns a summary of the named device.
func (m *Machine) GetDevice(deviceID []byte) (DeviceSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.devices[string(deviceID)]
	if !ok {
		return DeviceSummary{}, classify(ErrNotFound)
	}
	return summarize(hexID(string(deviceID)), rec), nil
}

// CurrentRoot returns the committed accumulator root and version.
func (m *Machine) CurrentRoot() (root *big.Int, version uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).Set(m.state.Root), m.state.Version
}

// RecentTransitions returns up to the last n committed transitions,
// most recent last.
func (m *Machine) RecentTransitions(n int) []TransitionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n <= 0 || n > len(m.history) {
		n = len(m.history)
	}
	out := make([]TransitionRecord, n)
	copy(out, m.history[len(m.history)-n:])
	return out
}

func hexID(raw string) string {
	return hex.EncodeToString([]byte(raw))
}
