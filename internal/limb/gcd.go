package limb

import "math/bits"

// GCD computes dst = gcd(|x|, |y|) using the binary GCD algorithm (Stein's
// algorithm), which replaces the division steps of the Euclidean algorithm
// with shifts and subtraction. dst must be sized to at least
// max(len(x), len(y)): when one operand is zero the result is the other's
// full magnitude; otherwise it never exceeds min(|x|, |y|). gcd(0, 0) = 0.
func GCD(dst, x, y View, alloc Allocator) {
	u := alloc.Alloc(len(x))
	defer alloc.Free(u)
	absInto(u, x)

	v := alloc.Alloc(len(y))
	defer alloc.Free(v)
	absInto(v, y)

	if View(u).IsZero() {
		copyMagnitude(dst, View(v))
		return
	}
	if View(v).IsZero() {
		copyMagnitude(dst, View(u))
		return
	}

	i := trailingZeroBits(u)
	shiftRightInPlace(u, i)
	j := trailingZeroBits(v)
	shiftRightInPlace(v, j)
	k := i
	if j < k {
		k = j
	}

	for {
		if CompareMagnitude(u, v) > 0 {
			u, v = v, u
		}
		// u <= v here, both odd; v -= u leaves an even difference.
		subUnsignedInPlace(v, u)
		if View(v).IsZero() {
			shiftLeftInto(dst, u, k)
			return
		}
		shiftRightInPlace(v, trailingZeroBits(v))
	}
}

// LCM computes dst = |x*y| / gcd(x, y), with lcm(x, 0) = lcm(0, y) = 0.
// dst must be sized to at least len(x)+len(y).
func LCM(dst, x, y View, alloc Allocator) {
	if x.IsZero() || y.IsZero() {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	gLen := len(x)
	if len(y) < gLen {
		gLen = len(y)
	}
	g := alloc.Alloc(gLen)
	defer alloc.Free(g)
	GCD(g, x, y, alloc)
	gTrim := View(g).UnsafeTrimLeadingZeros()

	xMag := alloc.Alloc(len(x))
	defer alloc.Free(xMag)
	absInto(xMag, x)
	yMag := alloc.Alloc(len(y))
	defer alloc.Free(yMag)
	absInto(yMag, y)

	prod := alloc.Alloc(len(x) + len(y))
	defer alloc.Free(prod)
	UnsignedMul(prod, View(xMag), View(yMag), alloc)

	q := alloc.Alloc(len(prod))
	defer alloc.Free(q)
	UnsignedDivide(q, View(prod), gTrim, alloc)

	copyMagnitude(dst, View(q).UnsafeTrimLeadingZeros())
}

// absInto writes the non-negative magnitude of src (a two's-complement
// signed value) into dst, which must be the same length as src.
func absInto(dst, src View) {
	if src.IsNegative() {
		negateMagnitude(dst, src)
		return
	}
	copy(dst, src)
}

// copyMagnitude copies src into dst, zero-extending if dst is longer.
func copyMagnitude(dst, src View) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// trailingZeroBits counts the trailing zero bits of a non-negative
// magnitude, scanning from the lowest limb. A fully-zero view reports
// len(v)*64, which callers must guard against with an IsZero check first
// when the result is used as a shift-right amount on that same value.
func trailingZeroBits(v View) int {
	for i, w := range v {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(uint64(w))
		}
	}
	return len(v) * 64
}

// shiftRightInPlace shifts the magnitude in v right by the given number of
// bits, in place, zero-filling from the top. n may exceed 64 and may
// exceed len(v)*64 (the result is then all zero).
func shiftRightInPlace(v []Word, n int) {
	if n == 0 {
		return
	}
	limbShift := n / 64
	bitShift := uint(n % 64)
	length := len(v)
	for i := 0; i < length; i++ {
		srcIdx := i + limbShift
		var lo, hi Word
		if srcIdx < length {
			lo = v[srcIdx]
		}
		if bitShift != 0 && srcIdx+1 < length {
			hi = v[srcIdx+1]
		}
		if bitShift == 0 {
			v[i] = lo
		} else {
			v[i] = (lo >> bitShift) | (hi << (64 - bitShift))
		}
	}
}

// shiftLeftInto writes src<<n into dst (a separate, zeroed destination),
// zero-filling from the bottom. Bits shifted out past len(dst) are
// dropped; callers must ensure dst is wide enough for the true result.
func shiftLeftInto(dst, src View, n int) {
	for i := range dst {
		dst[i] = 0
	}
	limbShift := n / 64
	bitShift := uint(n % 64)
	for i := len(dst) - 1; i >= 0; i-- {
		srcIdx := i - limbShift
		if srcIdx < 0 || srcIdx >= len(src) {
			continue
		}
		lo := src[srcIdx]
		var hi Word
		if bitShift != 0 && srcIdx-1 >= 0 && srcIdx-1 < len(src) {
			hi = src[srcIdx-1]
		}
		if bitShift == 0 {
			dst[i] = lo
		} else {
			dst[i] = (lo << bitShift) | (hi >> (64 - bitShift))
		}
	}
}
