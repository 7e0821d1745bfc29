// Package signer implements signature verification as a black-box
// collaborator: given a message, a signature, a PEM public key, and a
// key type, say whether the signature is valid. Ed25519 and RSA-PSS are
// supported, matching the device key types the identity state machine
// records.
package signer
