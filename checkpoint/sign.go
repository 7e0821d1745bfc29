package checkpoint

import (
	"crypto/ecdsa"
	"io"

	"github.com/veraison/go-cose"
)

// Sign signs the checkpoint in place using the ES256 algorithm. rand
// supplies entropy for the ECDSA nonce; external may carry additional
// authenticated data and is nil when there is none.
func Sign(rand io.Reader, external []byte, key *ecdsa.PrivateKey, c *Checkpoint) error {
	signer, err := cose.NewSigner(cose.AlgorithmES256, key)
	if err != nil {
		return err
	}
	if c.msg.Headers.Protected == nil {
		c.msg.Headers.Protected = cose.ProtectedHeader{}
	}
	c.msg.Headers.Protected[cose.HeaderLabelAlgorithm] = cose.AlgorithmES256
	return c.msg.Sign(rand, external, signer)
}

// Verify checks the checkpoint's signature against the given public key.
func Verify(c *Checkpoint, external []byte, pub *ecdsa.PublicKey) error {
	if len(c.msg.Signature) == 0 {
		return ErrNoSignature
	}
	verifier, err := cose.NewVerifier(cose.AlgorithmES256, pub)
	if err != nil {
		return err
	}
	return c.msg.Verify(external, verifier)
}
