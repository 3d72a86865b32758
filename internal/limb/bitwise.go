package limb

// And computes dst = lhs & rhs with sign extension of the shorter operand.
// No overflow is possible; dst may alias lhs and/or rhs.
func And(dst, lhs, rhs View) {
	for i := 0; i < dst.Size(); i++ {
		dst[i] = lhs.LimbAt(i) & rhs.LimbAt(i)
	}
}

// Or computes dst = lhs | rhs with sign extension of the shorter operand.
func Or(dst, lhs, rhs View) {
	for i := 0; i < dst.Size(); i++ {
		dst[i] = lhs.LimbAt(i) | rhs.LimbAt(i)
	}
}

// Xor computes dst = lhs ^ rhs with sign extension of the shorter operand.
func Xor(dst, lhs, rhs View) {
	for i := 0; i < dst.Size(); i++ {
		dst[i] = lhs.LimbAt(i) ^ rhs.LimbAt(i)
	}
}

// Not computes dst = ^src with sign extension of src when dst is longer.
func Not(dst, src View) {
	for i := 0; i < dst.Size(); i++ {
		dst[i] = ^src.LimbAt(i)
	}
}
