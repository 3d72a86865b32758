package limb

// View is a non-owning reference to a contiguous run of limbs. It is a
// value type: copying a View copies the slice header, not the limbs.
//
// A mutable View (the destination of an algorithm) and a read-only View
// (an operand) are both represented by View; algorithms document per
// operation whether the destination may alias an operand.
type View []Word

// Size returns the number of limbs in the view.
func (v View) Size() int { return len(v) }

// At returns the limb at index i.
func (v View) At(i int) Word { return v[i] }

// Subview returns the count limbs starting at offset. It panics if the
// range is out of bounds, matching Go slice semantics.
func (v View) Subview(offset, count int) View {
	return v[offset : offset+count]
}

// IsNegative reports whether the view represents a negative two's
// complement value: the top bit of the highest-index limb.
func (v View) IsNegative() bool {
	if len(v) == 0 {
		return false
	}
	return v[len(v)-1]>>63 != 0
}

// IsZero reports whether every limb in the view is zero.
func (v View) IsZero() bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

// signExtension returns the limb value used to extend v conceptually
// beyond its stored length: 0 for non-negative values, all-ones for
// negative values.
func (v View) signExtension() Word {
	if v.IsNegative() {
		return ^Word(0)
	}
	return 0
}

// TrimLeadingSignBits returns the shortest prefix of v whose value, under
// two's-complement sign extension, equals v's value. It never returns an
// empty view: a single limb is always kept.
func (v View) TrimLeadingSignBits() View {
	n := len(v)
	if n <= 1 {
		return v
	}
	ext := v.signExtension()
	for n > 1 {
		top := v[n-1]
		next := v[n-2]
		// Dropping the top limb is safe only if it is a pure sign-extension
		// copy AND the new top limb's sign bit still matches ext.
		if top != ext || (next>>63 != 0) != (ext != 0) {
			break
		}
		n--
	}
	return v[:n]
}

// UnsafeTrimLeadingZeros returns the prefix of v with trailing (high-index)
// zero limbs dropped. It is only valid to call when v is known to be
// non-negative; it never trims below length 1.
func (v View) UnsafeTrimLeadingZeros() View {
	n := len(v)
	for n > 1 && v[n-1] == 0 {
		n--
	}
	return v[:n]
}

// Reverse calls f for each limb of v from most significant to least
// significant.
func (v View) Reverse(f func(Word)) {
	for i := len(v) - 1; i >= 0; i-- {
		f(v[i])
	}
}

// LimbAt returns the limb at index i if i < len(v), or the sign-extension
// limb otherwise. This lets algorithms iterate the shorter of two operands
// past its own length without a branch at every call site.
func (v View) LimbAt(i int) Word {
	if i < len(v) {
		return v[i]
	}
	return v.signExtension()
}
