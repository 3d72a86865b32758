package limb

// Compare returns -1, 0, or +1 as lhs is less than, equal to, or greater
// than rhs, under two's-complement semantics. Operands may differ in
// length; the shorter is conceptually sign-extended. Comparison tolerates
// non-canonical (non-minimal) forms on either side.
func Compare(lhs, rhs View) int {
	lNeg := lhs.IsNegative()
	rNeg := rhs.IsNegative()
	if lNeg != rNeg {
		if lNeg {
			return -1
		}
		return 1
	}

	n := lhs.Size()
	if rhs.Size() > n {
		n = rhs.Size()
	}

	for i := n - 1; i >= 0; i-- {
		a := lhs.LimbAt(i)
		b := rhs.LimbAt(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether lhs and rhs represent the same two's-complement
// value, tolerating non-canonical forms and differing lengths.
func Equal(lhs, rhs View) bool {
	return Compare(lhs, rhs) == 0
}

// CompareMagnitude returns -1, 0, or +1 as lhs is less than, equal to, or
// greater than rhs, treating both as unsigned magnitudes: a set top bit
// means a large value, never a sign. Shorter operands are zero-extended,
// not sign-extended. Used by the division kernel on normalized limbs,
// where the divisor's top bit is deliberately set by Algorithm D's
// normalization step and so cannot be compared with the signed Compare.
func CompareMagnitude(lhs, rhs View) int {
	n := len(lhs)
	if len(rhs) > n {
		n = len(rhs)
	}
	for i := n - 1; i >= 0; i-- {
		var a, b Word
		if i < len(lhs) {
			a = lhs[i]
		}
		if i < len(rhs) {
			b = rhs[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}
