// Package hashutil provides the Keccak-256 hashing and big-endian byte
// padding shared by identity, anchor, and accumtesting for deriving
// parentHash, operationId, and device_id.
package hashutil

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// ErrTooLarge is returned by BEBytes when the value does not fit in the
// requested width.
var ErrTooLarge = errors.New("hashutil: value does not fit in the requested byte width")

// Keccak256 returns the Ethereum-style (pre-NIST-padding) Keccak-256
// digest of the concatenation of data. We use golang.org/x/crypto/sha3's
// NewLegacyKeccak256, not the NIST SHA3-256 variant, because
// "keccak-256" here follows the Ethereum convention, and the two differ
// in padding.
func Keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// BEBytes encodes v as exactly width big-endian bytes, zero-padded on the
// left. Returns ErrTooLarge if v needs more than width bytes.
func BEBytes(v *big.Int, width int) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, errors.New("hashutil: value must be non-negative")
	}
	raw := v.Bytes()
	if len(raw) > width {
		return nil, ErrTooLarge
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out, nil
}
