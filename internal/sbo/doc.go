// Package sbo implements the small-buffer limb container: a growable
// sequence of 64-bit limbs that stores short values inline, in the
// container's own struct storage, and promotes to a heap allocation once
// the value outgrows the inline buffer. It never demotes back to inline.
//
// The discriminator between the two states is an explicit bool field, not
// a pointer-identity trick or a sentinel smuggled into a payload field:
// Go's slice header already carries a nil/non-nil distinction that would
// be fragile to overload, so the state is named outright.
package sbo
