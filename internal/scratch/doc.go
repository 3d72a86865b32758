// Package scratch implements the stack-backed bump allocator used to
// supply temporaries to the recursive multiply and divide kernels in
// internal/limb without routing through the general heap.
//
// The arena is a fixed-capacity region of 64-bit words. Allocation is a
// bump of an offset; free is expected in LIFO order, matching how the
// algorithms that consume it use their temporaries (a temporary acquired
// deeper in a recursive call is always released before the caller's own
// temporary). An out-of-order free is accepted: its space is reclaimed once
// every block above it has been freed as well.
// Overflow of the arena is fatal, mirroring the reference implementation's
// "scratch allocator overflow is fatal" policy (see internal/errors).
package scratch
