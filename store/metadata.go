package store

import "context"

// Reserved metadata keys. N_hex, g_hex, and lambda_n_hex are written
// once at bootstrap; lambda_n_hex SHOULD live in a separately
// protected secret store rather than this map (see
// params.LoadFromSecretStore, which reads it from a SecretStore, not
// a MetadataStore).
const (
	MetaKeyRoot    = "root_hex"
	MetaKeyVersion = "version"
	MetaKeyN       = "N_hex"
	MetaKeyG       = "g_hex"
	MetaKeyLambda  = "lambda_n_hex"
)

// MetadataStore is the persistence collaborator for the small set of
// process-wide key-value pairs describing accumulator state and
// bootstrap parameters.
type MetadataStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
