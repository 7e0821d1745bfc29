// Package store defines the persistence-collaborator interfaces: a
// device table keyed by device_id, and a metadata map for the
// bootstrap parameters and the current root/version. Concrete backends
// (storemem, storeazblob) implement these against different
// substrates; the identity state machine depends only on the
// interfaces here.
package store
