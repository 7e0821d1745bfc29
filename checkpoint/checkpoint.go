package checkpoint

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

// Payload is the CBOR-encoded body of a checkpoint, carried as the
// COSE Sign1 message's payload. It mirrors the transition record every
// committed identity-machine operation produces: the new root and
// version, the recomputed parentHash, and which operation produced it.
type Payload struct {
	Version    uint64 `cbor:"1,keyasint"`
	Root       []byte `cbor:"2,keyasint"`
	ParentHash []byte `cbor:"3,keyasint"`
	OpType     string `cbor:"4,keyasint"`
	DeviceID   []byte `cbor:"5,keyasint"`
	Timestamp  int64  `cbor:"6,keyasint"`
}

// Checkpoint wraps a COSE Sign1 message whose payload is a CBOR-encoded
// Payload. It is unsigned until passed to a Signer.
type Checkpoint struct {
	msg *cose.Sign1Message
}

// New builds an unsigned checkpoint from payload fields.
func New(p Payload) (*Checkpoint, error) {
	encoded, err := cbor.Marshal(p)
	if err != nil {
		return nil, err
	}
	return &Checkpoint{
		msg: &cose.Sign1Message{
			Headers: cose.Headers{Protected: cose.ProtectedHeader{}},
			Payload: encoded,
		},
	}, nil
}

// Payload decodes the checkpoint's CBOR payload.
func (c *Checkpoint) Payload() (Payload, error) {
	var p Payload
	if err := cbor.Unmarshal(c.msg.Payload, &p); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// MarshalCBOR encodes the full signed COSE Sign1 message.
func (c *Checkpoint) MarshalCBOR() ([]byte, error) {
	if len(c.msg.Signature) == 0 {
		return nil, ErrNoSignature
	}
	return c.msg.MarshalCBOR()
}

// FromCBOR decodes a previously signed checkpoint from its COSE Sign1
// wire form.
func FromCBOR(data []byte) (*Checkpoint, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(data); err != nil {
		return nil, err
	}
	return &Checkpoint{msg: &msg}, nil
}
