// Package bigint provides Int, an arbitrary-precision signed integer
// backed by internal/limb's two's-complement limb arithmetic and stored in
// an internal/sbo.Container (inline for small values, heap-allocated
// beyond that).
//
// Int's zero value is the integer 0 and is ready to use without an
// explicit constructor. Every method that computes a new value returns it
// rather than mutating the receiver; the package has no in-place
// (mutating) variants of its operations.
//
// Division by zero and scratch-arena exhaustion are fatal: both panic with
// a typed value from internal/errors rather than returning an error,
// matching the reference library's abort-on-overflow policy. cmd/mplcalc
// recovers these panics at its top level.
package bigint
