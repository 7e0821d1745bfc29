package checkpoint

import "errors"

var (
	ErrNoSignature   = errors.New("checkpoint: message carries no signature")
	ErrInvalidPubKey = errors.New("checkpoint: public key type not supported for verification")
)
