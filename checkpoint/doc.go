// Package checkpoint produces a signed, append-only audit trail of
// identity-state transitions. Each checkpoint is a COSE Sign1 message
// (RFC 8152) whose CBOR payload records one committed transition: the
// resulting root and version, the parent hash recomputed from that
// root, the operation type and device, and a timestamp.
package checkpoint
