package identity

import (
	"math/big"
	"sync"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/dtrust-io/go-accumid/anchor"
	"github.com/dtrust-io/go-accumid/hashutil"
	"github.com/dtrust-io/go-accumid/params"
	"github.com/dtrust-io/go-accumid/signer"
	"github.com/dtrust-io/go-accumid/store"
)

// Status is a device's position in its lifecycle.
type Status int32

const (
	StatusPending Status = iota
	StatusActive
	StatusPendingRevoke
	StatusRevoked
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusActive:
		return "ACTIVE"
	case StatusPendingRevoke:
		return "PENDING_REVOKE"
	case StatusRevoked:
		return "REVOKED"
	default:
		return "UNKNOWN"
	}
}

// DeviceRecord is the in-memory model of one enrolled device: its
// identity (device_id, public key), its accumulator membership
// (id_prime, witness), and its lifecycle status.
type DeviceRecord struct {
	DeviceID  []byte
	PublicKey string
	KeyType   signer.KeyType
	IDPrime   *big.Int
	Witness   *big.Int
	Status    Status

	CreatedUnix int64
	UpdatedUnix int64

	persisted bool // true once this record has been Put to the device store at least once
}

// State is the accumulator's committed value, version, and the
// parentHash derived from it for the next anchor submission.
type State struct {
	Root       *big.Int
	Version    uint64
	ParentHash [32]byte
}

// TransitionRecord is the audit trail entry produced by every committed
// transition.
type TransitionRecord struct {
	OpType      anchor.OpType
	DeviceID    []byte
	PrevRoot    *big.Int
	NextRoot    *big.Int
	OperationID []byte
	ParentHash  []byte
	Timestamp   int64
}

// pendingTransition holds the precomputed effects of an in-flight
// enroll or revoke, ready to apply on Commit or discard on Abort. Only
// one is ever outstanding at a time: Enroll and Revoke hold m.mu for
// the full duration of the anchor round trip, including the Commit or
// Abort callback the coordinator invokes synchronously before Submit
// returns.
type pendingTransition struct {
	opType   anchor.OpType
	deviceID []byte
	prevRoot *big.Int
	nextRoot *big.Int

	// enroll-only
	enrolledPrime   *big.Int
	enrolledWitness *big.Int

	// revoke-only
	revokedPrime *big.Int

	// every other ACTIVE device's refreshed witness, keyed by
	// string(deviceID)
	witnessUpdates map[string]*big.Int
}

// Machine is the identity state machine: the device table, the
// accumulator state, and the coordinator that anchors every transition.
// All exported methods that mutate state serialize on mu.
type Machine struct {
	mu sync.Mutex

	params      *params.Params
	coordinator *anchor.Coordinator

	devices map[string]*DeviceRecord // keyed by string(deviceID)
	state   State

	inFlight *pendingTransition
	history  []TransitionRecord

	deviceStore store.DeviceStore // optional
	metaStore   store.MetadataStore // optional
	log         logger.Logger // optional; nil means no logging

	now func() time.Time
}

func (m *Machine) logInfof(format string, args ...interface{}) {
	if m.log != nil {
		m.log.Infof(format, args...)
	}
}

func (m *Machine) logWarnf(format string, args ...interface{}) {
	if m.log != nil {
		m.log.Warnf(format, args...)
	}
}

func (m *Machine) logErrorf(format string, args ...interface{}) {
	if m.log != nil {
		m.log.Errorf(format, args...)
	}
}

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithDeviceStore persists device records through Commit. Optional: a
// nil store (the default) keeps the table in memory only.
func WithDeviceStore(s store.DeviceStore) Option {
	return func(m *Machine) { m.deviceStore = s }
}

// WithMetadataStore persists the accumulator root/version through
// Commit. Optional: a nil store (the default) keeps state in memory
// only.
func WithMetadataStore(s store.MetadataStore) Option {
	return func(m *Machine) { m.metaStore = s }
}

// WithLogger attaches a structured logger to the Machine. Optional: a
// nil logger (the default) means every transition is silent.
func WithLogger(log logger.Logger) Option {
	return func(m *Machine) { m.log = log }
}

// withClock overrides the wall clock; used by tests.
func withClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// NewMachine constructs a Machine seeded at the generator (no devices
// enrolled yet), anchoring every transition through coordinator.
func NewMachine(p *params.Params, coordinator *anchor.Coordinator, opts ...Option) *Machine {
	root := new(big.Int).Set(p.G)
	rootBytes, err := hashutil.BEBytes(root, 256)
	if err != nil {
		// params.New only checks that g < N; a generator that doesn't
		// fit 256 bytes means N itself is wider than the 2048-bit width
		// this module encodes roots in, which New does not reject.
		panic("identity: generator does not fit the 256-byte accumulator width: " + err.Error())
	}

	m := &Machine{
		params:      p,
		coordinator: coordinator,
		devices:     make(map[string]*DeviceRecord),
		state: State{
			Root:       root,
			Version:    0,
			ParentHash: hashutil.Keccak256(rootBytes),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
