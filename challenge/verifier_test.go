package challenge

import (
	"context"
	"crypto/ed25519"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtrust-io/go-accumid/accumtesting"
	"github.com/dtrust-io/go-accumid/anchor"
	"github.com/dtrust-io/go-accumid/identity"
	"github.com/dtrust-io/go-accumid/signer"
)

func newTestSetup(t *testing.T) (*identity.Machine, *Verifier) {
	t.Helper()
	p := accumtesting.ToyParams()
	m := identity.NewMachine(p, anchor.NewCoordinator(nil, 0))
	v := NewVerifier(m, p)
	return m, v
}

func sign(t *testing.T, priv ed25519.PrivateKey, msg []byte) []byte {
	t.Helper()
	return ed25519.Sign(priv, msg)
}

func TestChallenge_HappyPathThenNonceReuseFails(t *testing.T) {
	m, v := newTestSetup(t)
	key := accumtesting.NewDeviceKey(t)

	res, err := m.Enroll(context.Background(), key.PublicPEM, signer.KeyTypeEd25519)
	require.NoError(t, err)

	nonce, _, err := v.Start(key.DeviceID)
	require.NoError(t, err)
	sig := sign(t, key.Private, nonce)

	result, err := v.Verify(key.DeviceID, res.IDPrime, res.Witness, sig, nonce)
	require.NoError(t, err)
	assert.Equal(t, OutcomeOK, result.Outcome)

	replay, err := v.Verify(key.DeviceID, res.IDPrime, res.Witness, sig, nonce)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAuthFailed, replay.Outcome, "a replayed nonce must not verify twice")
}

func TestChallenge_StaleWitnessIsRefreshedThenSucceeds(t *testing.T) {
	m, v := newTestSetup(t)
	keys := accumtesting.NKeys(t, 2)

	resA, err := m.Enroll(context.Background(), keys[0].PublicPEM, signer.KeyTypeEd25519)
	require.NoError(t, err)
	// B's enrollment advances the root and makes A's original witness stale.
	_, err = m.Enroll(context.Background(), keys[1].PublicPEM, signer.KeyTypeEd25519)
	require.NoError(t, err)

	nonce, _, err := v.Start(keys[0].DeviceID)
	require.NoError(t, err)
	sig := sign(t, keys[0].Private, nonce)

	stale, err := v.Verify(keys[0].DeviceID, resA.IDPrime, resA.Witness, sig, nonce)
	require.NoError(t, err)
	require.Equal(t, OutcomeStaleWitness, stale.Outcome)
	require.NotNil(t, stale.NewWitness, "expected a refreshed witness alongside STALE_WITNESS")

	nonce2, _, err := v.Start(keys[0].DeviceID)
	require.NoError(t, err)
	sig2 := sign(t, keys[0].Private, nonce2)

	ok, err := v.Verify(keys[0].DeviceID, resA.IDPrime, stale.NewWitness, sig2, nonce2)
	require.NoError(t, err)
	assert.Equal(t, OutcomeOK, ok.Outcome, "retry with the refreshed witness must succeed")
}

func TestChallenge_WrongDeviceNonceFails(t *testing.T) {
	m, v := newTestSetup(t)
	keys := accumtesting.NKeys(t, 2)

	resA, err := m.Enroll(context.Background(), keys[0].PublicPEM, signer.KeyTypeEd25519)
	require.NoError(t, err)
	_, err = m.Enroll(context.Background(), keys[1].PublicPEM, signer.KeyTypeEd25519)
	require.NoError(t, err)

	nonceB, _, err := v.Start(keys[1].DeviceID)
	require.NoError(t, err)
	sig := sign(t, keys[0].Private, nonceB)

	// A tries to authenticate using B's nonce.
	result, err := v.Verify(keys[0].DeviceID, resA.IDPrime, resA.Witness, sig, nonceB)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAuthFailed, result.Outcome)
}

func TestChallenge_ExpiredNonceFails(t *testing.T) {
	p := accumtesting.ToyParams()
	m := identity.NewMachine(p, anchor.NewCoordinator(nil, 0))

	current := time.Now()
	v := NewVerifier(m, p, WithTTL(time.Second), withClock(func() time.Time { return current }))

	key := accumtesting.NewDeviceKey(t)
	res, err := m.Enroll(context.Background(), key.PublicPEM, signer.KeyTypeEd25519)
	require.NoError(t, err)

	nonce, _, err := v.Start(key.DeviceID)
	require.NoError(t, err)
	sig := sign(t, key.Private, nonce)

	current = current.Add(2 * time.Second)

	result, err := v.Verify(key.DeviceID, res.IDPrime, res.Witness, sig, nonce)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAuthFailed, result.Outcome, "expired nonce must not verify")
}

func TestChallenge_BadSignatureFails(t *testing.T) {
	m, v := newTestSetup(t)
	key := accumtesting.NewDeviceKey(t)

	res, err := m.Enroll(context.Background(), key.PublicPEM, signer.KeyTypeEd25519)
	require.NoError(t, err)

	nonce, _, err := v.Start(key.DeviceID)
	require.NoError(t, err)

	result, err := v.Verify(key.DeviceID, res.IDPrime, res.Witness, []byte("not-a-signature"), nonce)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAuthFailed, result.Outcome)
}

func TestChallenge_WrongPrimeFails(t *testing.T) {
	m, v := newTestSetup(t)
	key := accumtesting.NewDeviceKey(t)

	res, err := m.Enroll(context.Background(), key.PublicPEM, signer.KeyTypeEd25519)
	require.NoError(t, err)

	nonce, _, err := v.Start(key.DeviceID)
	require.NoError(t, err)
	sig := sign(t, key.Private, nonce)

	wrongPrime := new(big.Int).Add(res.IDPrime, big.NewInt(2))
	result, err := v.Verify(key.DeviceID, wrongPrime, res.Witness, sig, nonce)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAuthFailed, result.Outcome)
}

func TestChallenge_StartRejectsNonActiveDevice(t *testing.T) {
	_, v := newTestSetup(t)
	_, _, err := v.Start([]byte("nonexistent"))
	assert.ErrorIs(t, err, ErrDeviceNotActive)
}
