package signer

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
)

// KeyType names the device key algorithms the state machine records
// against a device_id.
type KeyType string

const (
	KeyTypeEd25519 KeyType = "ed25519"
	KeyTypeRSA     KeyType = "rsa"
)

// VerifySignature reports whether signature is a valid signature over
// message under the PEM-encoded public key pubKeyPEM, interpreted
// according to keyType. It never returns an error to distinguish "bad
// signature" from "bad key" on the success path — only malformed input
// is reported as an error, so a caller can't use the error channel to
// learn why a signature failed.
func VerifySignature(message, signature, pubKeyPEM []byte, keyType KeyType) (bool, error) {
	block, _ := pem.Decode(pubKeyPEM)
	if block == nil {
		return false, ErrInvalidPEM
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return false, err
	}

	switch keyType {
	case KeyTypeEd25519:
		key, ok := pub.(ed25519.PublicKey)
		if !ok {
			return false, ErrKeyTypeMismatch
		}
		return ed25519.Verify(key, message, signature), nil
	case KeyTypeRSA:
		key, ok := pub.(*rsa.PublicKey)
		if !ok {
			return false, ErrKeyTypeMismatch
		}
		digest := sha256.Sum256(message)
		err := rsa.VerifyPSS(key, crypto.SHA256, digest[:], signature, nil)
		return err == nil, nil
	default:
		return false, ErrUnknownKeyType
	}
}
