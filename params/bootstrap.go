package params

import (
	"context"
	"encoding/hex"
	"math/big"
)

// MetadataSource is the read side of the persistence collaborator's
// metadata map, used here only for the keys written once at bootstrap:
// N_hex and g_hex. It is declared locally (rather than imported from
// package store) so params never depends on a storage backend — any
// key-value reader satisfies it.
type MetadataSource interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// SecretStore is the read side of a secret store holding λ(N). Kept
// separate from MetadataSource because λ(N) must be held in a
// separately-protected store, never alongside N_hex/g_hex.
type SecretStore interface {
	GetSecret(ctx context.Context, key string) ([]byte, error)
}

const (
	MetaKeyN      = "N_hex"
	MetaKeyG      = "g_hex"
	MetaKeyLambda = "lambda_n_hex" // the key LoadFromSecretStore reads λ(N) under from the SecretStore
)

// LoadFromSecretStore bootstraps Params by reading N_hex/g_hex from the
// persistence collaborator's metadata map and λ(N) from the secret
// store. This is the only production path that may construct a
// non-toy/demo Params value.
func LoadFromSecretStore(ctx context.Context, meta MetadataSource, secrets SecretStore, opts ...Option) (*Params, error) {
	nHex, ok, err := meta.Get(ctx, MetaKeyN)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingSecret
	}
	gHex, ok, err := meta.Get(ctx, MetaKeyG)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingSecret
	}
	lambdaBytes, err := secrets.GetSecret(ctx, MetaKeyLambda)
	if err != nil {
		return nil, err
	}

	n, err := parseHex(nHex)
	if err != nil {
		return nil, err
	}
	g, err := parseHex(gHex)
	if err != nil {
		return nil, err
	}
	lambda := NewLambda(new(big.Int).SetBytes(lambdaBytes))

	return New(n, g, lambda, opts...)
}

func parseHex(s string) (*big.Int, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
