// Package storeazblob implements store.DeviceStore and
// store.MetadataStore against Azure Blob Storage. Creating a device
// record is a conditional write (If-None-Match: *), so a duplicate
// enrollment fails with store.ErrAlreadyExists instead of overwriting
// the existing blob. Device updates and metadata writes are
// unconditional: no ETag is tracked or checked, two writers racing on
// the same device or metadata key are not detected (the last upload
// wins), and store.ErrPreconditionFailed is never returned.
package storeazblob
