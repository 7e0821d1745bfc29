// Package anchor implements the submission protocol that turns one
// identity-machine transition into an external anchor submission: it
// derives parentHash and operationId, waits (cooperatively) for the
// anchor's outcome, and reports back executed/rejected/timeout so the
// caller can commit or abort. It is a serialized, precondition-guarded
// write path, the same shape as a conditional blob commit generalized
// from "write a blob with an ETag guard" to "submit a root transition
// with a parentHash guard".
package anchor
