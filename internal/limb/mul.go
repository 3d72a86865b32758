package limb

// Allocator is the scratch-allocation contract the multiply/divide kernels
// use for recursive temporaries. internal/scratch.Arena implements it.
type Allocator interface {
	Alloc(n int) []Word
	Free(buf []Word)
}

// karatsubaThreshold is the operand length (in limbs) above which
// UnsignedMul recurses via Karatsuba instead of running schoolbook
// multiplication to completion.
const karatsubaThreshold = 32

// UnsignedMul computes dst = x*y for non-negative x, y, given
// len(dst) >= len(x)+len(y) pre-zeroed by the caller. It dispatches to a
// specialized kernel for single-limb operands, schoolbook multiplication
// for small operands, and Karatsuba recursion (using alloc for temporaries)
// above karatsubaThreshold limbs.
func UnsignedMul(dst, x, y View, alloc Allocator) {
	x = x.UnsafeTrimLeadingZeros()
	y = y.UnsafeTrimLeadingZeros()
	if x.IsZero() || y.IsZero() {
		return
	}

	// Keep the longer operand first; Karatsuba and the single-limb kernel
	// both assume len(x) >= len(y).
	if len(y) > len(x) {
		x, y = y, x
	}

	if len(y) == 1 {
		mulAddScalar(dst, x, y[0], 0)
		return
	}

	if len(x) <= karatsubaThreshold || alloc == nil {
		schoolbookMul(dst, x, y)
		return
	}

	karatsubaMul(dst, x, y, alloc)
}

// mulAddScalar computes dst[:len(x)+1] += x*y + addend, where addend seeds
// the initial carry into the low limb. Used both as the single-limb-operand
// multiply kernel and as the inner loop of schoolbook multiplication.
func mulAddScalar(dst, x View, y Word, addend Word) {
	var carry = addend
	for i := 0; i < len(x); i++ {
		hi, lo := Mul64x64(x[i], y)
		lo, c0 := AddWithCarry(lo, dst[i], 0)
		lo, c1 := AddWithCarry(lo, carry, 0)
		dst[i] = lo
		carry = hi + c0 + c1
	}
	i := len(x)
	for carry != 0 {
		sum, c := AddWithCarry(dst[i], carry, 0)
		dst[i] = sum
		carry = c
		i++
	}
}

// schoolbookMul computes dst = x*y via the classic O(len(x)*len(y))
// algorithm: for each limb of y, multiply-accumulate the shifted product of
// x into dst. dst must be zeroed and sized to at least len(x)+len(y).
func schoolbookMul(dst, x, y View) {
	for j := 0; j < len(y); j++ {
		if y[j] == 0 {
			continue
		}
		mulAddScalar(dst[j:], x, y[j], 0)
	}
}

// karatsubaMul computes dst = x*y (len(x) >= len(y) >= 1) by splitting x
// into high/low halves at half the length of x, recursing on three
// sub-products sized by y's half, and combining them. Scratch temporaries
// come from alloc and are released before returning (LIFO).
func karatsubaMul(dst, x, y View, alloc Allocator) {
	n := len(x)
	half := n / 2
	if half == 0 || half >= len(y) {
		schoolbookMul(dst, x, y)
		return
	}

	xLo, xHi := x[:half], x[half:]

	// Split y at the same boundary; if y is shorter than half, its high
	// part is simply empty (zero).
	var yLo, yHi View
	if half < len(y) {
		yLo, yHi = y[:half], y[half:]
	} else {
		yLo, yHi = y, nil
	}

	for i := range dst {
		dst[i] = 0
	}

	// z0 = xLo*yLo, placed directly at offset 0.
	UnsignedMul(dst[:len(xLo)+len(yLo)], xLo, yLo, alloc)

	if len(yHi) == 0 {
		// y fits entirely in the low half: the only other term is
		// xHi*yLo, placed at offset half.
		hiTerm := alloc.Alloc(len(xHi) + len(yLo))
		defer alloc.Free(hiTerm)
		UnsignedMul(hiTerm, xHi, yLo, alloc)
		addInto(dst[half:], hiTerm)
		return
	}

	// z2 = xHi*yHi, placed at offset 2*half.
	z2 := alloc.Alloc(len(xHi) + len(yHi))
	defer alloc.Free(z2)
	UnsignedMul(z2, xHi, yHi, alloc)
	addInto(dst[2*half:], z2)

	// z1 = (xLo+xHi)*(yLo+yHi) - z0 - z2, placed at offset half.
	// xLo/xHi/yLo/yHi are unsigned magnitude chunks, not independent signed
	// numbers, so their sums are built with plain zero-extending addition
	// (addInto), never the sign-extending limb.Add.
	sumXLen := len(xHi) // xHi is always the longer-or-equal half of x
	sumX := alloc.Alloc(sumXLen + 1)
	defer alloc.Free(sumX)
	clear(sumX)
	copy(sumX, xHi)
	addInto(sumX, xLo)

	sumYLen := len(yHi)
	if len(yLo) > sumYLen {
		sumYLen = len(yLo)
	}
	sumY := alloc.Alloc(sumYLen + 1)
	defer alloc.Free(sumY)
	clear(sumY)
	copy(sumY, yHi)
	addInto(sumY, yLo)

	sumXView := View(sumX).UnsafeTrimLeadingZeros()
	sumYView := View(sumY).UnsafeTrimLeadingZeros()

	z1 := alloc.Alloc(len(sumXView) + len(sumYView))
	defer alloc.Free(z1)
	UnsignedMul(z1, sumXView, sumYView, alloc)

	z0Len := len(xLo) + len(yLo)
	subInto(z1, dst[:z0Len])
	subInto(z1, z2)

	addInto(dst[half:], z1)
}

// addInto adds src into dst in place, propagating carry upward past
// len(src) as far as dst extends. Both are treated as unsigned magnitudes.
func addInto(dst View, src View) {
	var carry Word
	for i := 0; i < len(src) && i < len(dst); i++ {
		sum, c := AddWithCarry(dst[i], src[i], carry)
		dst[i] = sum
		carry = c
	}
	i := len(src)
	for carry != 0 && i < len(dst) {
		sum, c := AddWithCarry(dst[i], carry, 0)
		dst[i] = sum
		carry = c
		i++
	}
}

// subInto subtracts src from dst in place (dst -= src), propagating borrow
// upward. Used only where the caller has already established dst >= src as
// unsigned magnitudes (Karatsuba's z1 combination step).
func subInto(dst View, src View) {
	var borrow Word
	for i := 0; i < len(src) && i < len(dst); i++ {
		diff, b := SubWithBorrow(dst[i], src[i], borrow)
		dst[i] = diff
		borrow = b
	}
	i := len(src)
	for borrow != 0 && i < len(dst) {
		diff, b := SubWithBorrow(dst[i], 0, borrow)
		dst[i] = diff
		borrow = b
		i++
	}
}

// SignedMul computes dst = x*y for arbitrary-sign x, y: it negates negative
// operands into scratch-backed positive magnitudes, calls UnsignedMul, and
// negates the destination if the operand signs differed. dst must be sized
// as UnsignedMul requires for the operands' magnitudes plus one sign limb.
func SignedMul(dst, x, y View, alloc Allocator) {
	xNeg := x.IsNegative()
	yNeg := y.IsNegative()

	xMag := x
	if xNeg {
		buf := alloc.Alloc(len(x))
		defer alloc.Free(buf)
		negateMagnitude(buf, x)
		xMag = View(buf)
	}
	yMag := y
	if yNeg {
		buf := alloc.Alloc(len(y))
		defer alloc.Free(buf)
		negateMagnitude(buf, y)
		yMag = View(buf)
	}

	for i := range dst {
		dst[i] = 0
	}
	UnsignedMul(dst, xMag, yMag, alloc)

	if xNeg != yNeg {
		negateInPlace(dst)
	}
}

// negateMagnitude computes dst = -src (two's complement negate) treating
// src as a signed value; used to turn a negative operand into its positive
// magnitude before an unsigned kernel runs.
func negateMagnitude(dst, src View) {
	Not(dst, src)
	incrementInPlace(dst)
}

func negateInPlace(v View) {
	for i := range v {
		v[i] = ^v[i]
	}
	incrementInPlace(v)
}

func incrementInPlace(v View) {
	var carry Word = 1
	for i := 0; i < len(v) && carry != 0; i++ {
		sum, c := AddWithCarry(v[i], 0, carry)
		v[i] = sum
		carry = c
	}
}
