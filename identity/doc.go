// Package identity owns the authoritative in-memory model: the device
// table, the accumulator state, and the version counter. It drives the
// device lifecycle (enroll, revoke, commit, abort), serializing all
// admin operations against a single mutex, and enforces the core
// invariants (root always reflects the committed device set, revoked
// id_primes are never reused, parentHash is recomputed from the root on
// every commit, and so on) after every committed transition. It is the
// one package in this module allowed to mutate the accumulator state or
// a device record — packages accumulator, primemap, and witness are
// pure functions it calls; package anchor is the external collaborator
// it drives through the Committer interface.
package identity
