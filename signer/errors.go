package signer

import "errors"

var (
	ErrUnknownKeyType  = errors.New("signer: unknown key type")
	ErrInvalidPEM      = errors.New("signer: could not decode PEM block")
	ErrKeyTypeMismatch = errors.New("signer: public key does not match declared key type")
)
