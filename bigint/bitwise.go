package bigint

import "github.com/agbru/mpl/internal/limb"

// Not returns ^x (two's complement bitwise complement, equal to -x-1).
func (x Int) Not() Int {
	xv := x.view()
	out := make([]limb.Word, len(xv))
	limb.Not(out, xv)
	return fromView(limb.View(out))
}

// And returns x&y.
func (x Int) And(y Int) Int { return x.bitwiseBinary(y, limb.And) }

// Or returns x|y.
func (x Int) Or(y Int) Int { return x.bitwiseBinary(y, limb.Or) }

// Xor returns x^y.
func (x Int) Xor(y Int) Int { return x.bitwiseBinary(y, limb.Xor) }

func (x Int) bitwiseBinary(y Int, op func(dst, lhs, rhs limb.View)) Int {
	xv, yv := x.view(), y.view()
	n := maxInt(len(xv), len(yv))
	out := make([]limb.Word, n)
	op(limb.View(out), xv, yv)
	return fromView(limb.View(out))
}

// Lsh returns x<<n (n >= 0), an exact arithmetic left shift: the result is
// the true mathematical value x*2^n, never a fixed-width wraparound.
func (x Int) Lsh(n int) Int {
	if n < 0 {
		panic("bigint: negative shift count")
	}
	if n == 0 {
		return x
	}
	xv := x.view()
	outLen := len(xv) + n/64 + 1
	out := make([]limb.Word, outLen)
	limb.ShiftLeft(out, xv, n)
	return fromView(limb.View(out))
}

// Rsh returns x>>n (n >= 0), an arithmetic right shift rounding toward -∞
// (so for negative x the result is floor(x / 2^n), matching two's
// complement's natural sign-extending shift).
func (x Int) Rsh(n int) Int {
	if n < 0 {
		panic("bigint: negative shift count")
	}
	if n == 0 {
		return x
	}
	xv := x.view()
	outLen := len(xv) - n/64
	if outLen < 1 {
		outLen = 1
	}
	out := make([]limb.Word, outLen)
	limb.ShiftRightArith(out, xv, n)
	return fromView(limb.View(out))
}

// BitIsSet reports whether bit i (0 = least significant) of x's
// two's-complement representation is set.
func (x Int) BitIsSet(i int) bool {
	xv := x.view()
	limbIdx := i / 64
	bitIdx := uint(i % 64)
	return (xv.LimbAt(limbIdx)>>bitIdx)&1 != 0
}

// SetBit returns a copy of x with bit i set to v (0 or 1).
func (x Int) SetBit(i int, v uint) Int {
	xv := x.view()
	limbIdx := i / 64
	bitIdx := uint(i % 64)
	n := limbIdx + 1
	if n < len(xv) {
		n = len(xv)
	}
	out := make([]limb.Word, n+1)
	for j := range out {
		out[j] = xv.LimbAt(j)
	}
	if v != 0 {
		out[limbIdx] |= 1 << bitIdx
	} else {
		out[limbIdx] &^= 1 << bitIdx
	}
	return fromView(limb.View(out))
}

// GetBitRange extracts the count-bit field starting at bit low (0 =
// least significant) as a non-negative Int, treating x's two's-complement
// representation (with its infinite sign extension) as the source of bits.
// The parameter order (count, low) matches get_bit_range in the reference
// this is ported from.
func (x Int) GetBitRange(count, low int) Int {
	if count <= 0 {
		return Int{}
	}
	xv := x.view()
	outWords := (count + 63) / 64
	shifted := make([]limb.Word, outWords+1)
	limb.ShiftRightArith(shifted, xv, low)

	out := make([]limb.Word, outWords+1)
	copy(out, shifted[:outWords])

	lastBits := uint(count % 64)
	if lastBits != 0 {
		out[outWords-1] &= (limb.Word(1) << lastBits) - 1
	}
	return fromView(limb.View(out))
}

// ModPow2 returns x mod 2^k as a non-negative value (the low k bits of x's
// two's-complement representation).
func (x Int) ModPow2(k int) Int {
	return x.GetBitRange(k, 0)
}

// OneExtend returns x with amount consecutive one bits OR'd in starting at
// bit size (i.e. over [size, size+amount)); every bit outside that range
// keeps its value from x. Amount <= 0 returns x unchanged.
func (x Int) OneExtend(size, amount int) Int {
	if amount <= 0 {
		return x
	}
	xv := x.view()
	highBit := size + amount // first bit above the extended range
	n := highBit/64 + 2
	if n < len(xv)+1 {
		n = len(xv) + 1
	}
	out := make([]limb.Word, n)
	for j := range out {
		out[j] = xv.LimbAt(j)
	}
	for bit := size; bit < highBit; bit++ {
		out[bit/64] |= limb.Word(1) << uint(bit%64)
	}
	return fromView(limb.View(out))
}
