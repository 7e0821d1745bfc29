// Package witness implements the per-device witness maintenance
// algorithms: the witness a device receives at enrollment, the cheap
// incremental refresh every other active device's witness needs when a
// new prime is folded in, and the trapdoor-based refresh every
// remaining device needs after a revocation. All functions are pure,
// like package accumulator, which they are built on.
package witness
