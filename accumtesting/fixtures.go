package accumtesting

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/dtrust-io/go-accumid/hashutil"
	"github.com/dtrust-io/go-accumid/params"
)

// ToyParams returns the fixed toy accumulator parameters (N=209, g=4,
// λ(N)=90) used throughout the test suites for hand-checkable arithmetic.
func ToyParams() *params.Params {
	return params.Toy()
}

// DeviceKey is a generated Ed25519 device identity for tests.
type DeviceKey struct {
	Public     ed25519.PublicKey
	Private    ed25519.PrivateKey
	PublicPEM  []byte
	DeviceID   []byte
}

// NewDeviceKey generates a fresh Ed25519 key pair and derives the
// device_id the same way the identity package does: keccak-256 of the
// DER-encoded SubjectPublicKeyInfo.
func NewDeviceKey(t *testing.T) DeviceKey {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("accumtesting: generating device key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		t.Fatalf("accumtesting: marshaling public key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	id := hashutil.Keccak256(der)

	return DeviceKey{
		Public:    pub,
		Private:   priv,
		PublicPEM: pemBytes,
		DeviceID:  id[:],
	}
}

// NKeys generates n distinct device keys.
func NKeys(t *testing.T, n int) []DeviceKey {
	t.Helper()
	keys := make([]DeviceKey, n)
	for i := range keys {
		keys[i] = NewDeviceKey(t)
	}
	return keys
}
