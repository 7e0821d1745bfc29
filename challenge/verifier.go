package challenge

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"sync"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/dtrust-io/go-accumid/accumulator"
	"github.com/dtrust-io/go-accumid/identity"
	"github.com/dtrust-io/go-accumid/params"
	"github.com/dtrust-io/go-accumid/signer"
)

// DefaultTTL is the nonce lifetime applied unless WithTTL overrides it.
const DefaultTTL = 300 * time.Second

// DeviceSource is the read-only view of the identity state machine this
// package needs: look up one device, and read the committed root. A
// *identity.Machine satisfies this directly; tests can supply a fake.
type DeviceSource interface {
	GetDevice(deviceID []byte) (identity.DeviceSummary, error)
	CurrentRoot() (root *big.Int, version uint64)
}

// Outcome is the result of a Verify call.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeStaleWitness
	OutcomeBadProof
	OutcomeAuthFailed
)

// Result is what Verify returns: the outcome, and for OutcomeStaleWitness
// the refreshed witness the client should retry with.
type Result struct {
	Outcome    Outcome
	NewWitness *big.Int
}

type nonceEntry struct {
	nonce     []byte
	expiresAt time.Time
	consumed  bool
}

// Verifier issues and checks challenge nonces against a DeviceSource.
// Its nonce table is process-wide state scoped to one instance, owned
// exclusively by this package: the identity state machine never touches
// it.
type Verifier struct {
	mu      sync.Mutex
	devices DeviceSource
	params  *params.Params
	nonces  map[string]*nonceEntry // keyed by string(deviceID)
	ttl     time.Duration
	now     func() time.Time
	log     logger.Logger // optional; nil means no logging
}

// Option configures a Verifier at construction time.
type Option func(*Verifier)

// WithTTL overrides the default 300-second nonce lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(v *Verifier) { v.ttl = ttl }
}

// WithLogger attaches a structured logger to the Verifier. Optional: a
// nil logger (the default) means every auth outcome is silent.
func WithLogger(log logger.Logger) Option {
	return func(v *Verifier) { v.log = log }
}

func withClock(now func() time.Time) Option {
	return func(v *Verifier) { v.now = now }
}

func (v *Verifier) logWarnf(format string, args ...interface{}) {
	if v.log != nil {
		v.log.Warnf(format, args...)
	}
}

// NewVerifier constructs a Verifier reading device and root state
// through devices.
func NewVerifier(devices DeviceSource, p *params.Params, opts ...Option) *Verifier {
	v := &Verifier{
		devices: devices,
		params:  p,
		nonces:  make(map[string]*nonceEntry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Start issues a fresh nonce for deviceID. The device must exist and be
// ACTIVE. Any previously issued, unconsumed nonce for this device is
// discarded.
func (v *Verifier) Start(deviceID []byte) (nonce []byte, expiresAt time.Time, err error) {
	rec, err := v.devices.GetDevice(deviceID)
	if err != nil || rec.Status != identity.StatusActive {
		return nil, time.Time{}, ErrDeviceNotActive
	}

	buf := make([]byte, 16) // 128 random bits
	if _, err := rand.Read(buf); err != nil {
		return nil, time.Time{}, err
	}
	expiresAt = v.now().Add(v.ttl)

	v.mu.Lock()
	v.nonces[string(deviceID)] = &nonceEntry{nonce: buf, expiresAt: expiresAt}
	v.mu.Unlock()

	return buf, expiresAt, nil
}

// Verify checks a (prime, witness, signature, nonceEcho) proof for
// deviceID, applying these checks in order: device active, nonce valid
// and single-use, prime match, signature, then membership with a
// stale-witness fallback.
func (v *Verifier) Verify(deviceID []byte, prime, witness *big.Int, signature, nonceEcho []byte) (Result, error) {
	rec, err := v.devices.GetDevice(deviceID)
	if err != nil || rec.Status != identity.StatusActive {
		return Result{Outcome: OutcomeAuthFailed}, nil
	}

	v.mu.Lock()
	entry, ok := v.nonces[string(deviceID)]
	var alreadyConsumed bool
	if ok {
		alreadyConsumed = entry.consumed
		entry.consumed = true // consumed even on subsequent failure
	}
	v.mu.Unlock()

	if !ok || alreadyConsumed || !nonceValid(entry, v.now()) || !bytes.Equal(entry.nonce, nonceEcho) {
		return Result{Outcome: OutcomeAuthFailed}, nil
	}

	if rec.IDPrime == nil || rec.IDPrime.Cmp(prime) != 0 {
		return Result{Outcome: OutcomeAuthFailed}, nil
	}

	ok, err = signer.VerifySignature(nonceEcho, signature, []byte(rec.PublicKey), rec.KeyType)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Outcome: OutcomeAuthFailed}, nil
	}

	root, _ := v.devices.CurrentRoot()
	if accumulator.Verify(witness, prime, root, v.params.N) {
		return Result{Outcome: OutcomeOK}, nil
	}
	if rec.Witness != nil && accumulator.Verify(rec.Witness, prime, root, v.params.N) {
		v.logWarnf("challenge: stale witness for device_id=%x, refreshed witness issued", deviceID)
		return Result{Outcome: OutcomeStaleWitness, NewWitness: new(big.Int).Set(rec.Witness)}, nil
	}
	v.logWarnf("challenge: bad proof for device_id=%x", deviceID)
	return Result{Outcome: OutcomeBadProof}, nil
}

// nonceValid reports whether entry exists and has not yet expired.
// Consumption is checked separately by the caller against the
// pre-consume snapshot.
func nonceValid(entry *nonceEntry, now time.Time) bool {
	if entry == nil {
		return false
	}
	return now.Before(entry.expiresAt)
}
