package store

import "context"

// DeviceRecord is the wire/storage shape of a device record: fields
// stored as strings or byte slices so any key-value backend can hold
// them without knowing about big.Int or the identity package's richer
// in-memory Status type.
type DeviceRecord struct {
	DeviceID    []byte // 32 raw bytes
	PublicKey   string // PEM
	KeyType     string
	IDPrime     string // decimal string
	Witness     []byte // 256 bytes, big-endian
	Status      int32
	CreatedUnix int64
	UpdatedUnix int64
}

// DeviceStore is the persistence collaborator for device records.
type DeviceStore interface {
	// Put writes a device record. If expectExists is false, the write
	// must fail with ErrAlreadyExists if a record for DeviceID is
	// already present (enrollment precondition); if true, it must fail
	// with ErrNotFound if no prior record exists (update precondition).
	Put(ctx context.Context, rec DeviceRecord, expectExists bool) error
	Get(ctx context.Context, deviceID []byte) (DeviceRecord, error)
	List(ctx context.Context) ([]DeviceRecord, error)
}
