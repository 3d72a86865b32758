package bigint

import (
	"math"

	mplerrors "github.com/agbru/mpl/internal/errors"
	"github.com/agbru/mpl/internal/limb"
	"github.com/agbru/mpl/internal/sbo"
	"github.com/agbru/mpl/internal/scratch"
)

// Int is an arbitrary-precision signed integer. The zero value is 0.
type Int struct {
	limbs sbo.Container
}

var zeroWord = limb.View{0}

// view returns a read-only view of x's limbs, treating an unconstructed
// (zero-size) Container as the single-limb value 0.
func (x Int) view() limb.View {
	if x.limbs.Size() == 0 {
		return zeroWord
	}
	return x.limbs.View()
}

// ensure gives a zero-value receiver real backing storage (size 1, limb 0)
// before an in-place method writes through it.
func (x *Int) ensure() {
	if x.limbs.Size() == 0 {
		x.limbs.Resize(1, 0)
	}
}

// fromView builds an Int owning a trimmed copy of v.
func fromView(v limb.View) Int {
	var x Int
	x.limbs.FromView(v.TrimLeadingSignBits())
	return x
}

// FromInt64 returns the Int equal to v.
func FromInt64(v int64) Int {
	return fromView(limb.View{limb.Word(v)})
}

// FromUint64 returns the Int equal to v.
func FromUint64(v uint64) Int {
	if v>>63 != 0 {
		return fromView(limb.View{limb.Word(v), 0})
	}
	return fromView(limb.View{limb.Word(v)})
}

// Int64 returns x as an int64 and whether x fits without truncation.
func (x Int) Int64() (int64, bool) {
	v := x.view().TrimLeadingSignBits()
	if len(v) > 1 {
		return 0, false
	}
	return int64(v[0]), true
}

// Uint64 returns x as a uint64 and whether x is non-negative and fits
// without truncation.
func (x Int) Uint64() (uint64, bool) {
	if x.IsNegative() {
		return 0, false
	}
	v := x.view().UnsafeTrimLeadingZeros()
	if len(v) >= 2 {
		return 0, false
	}
	return uint64(v[0]), true
}

// ToFloat64 returns a best-effort float64 approximation of x, accumulated
// limb by limb from the most significant end; every step rounds, so the
// result can differ from the correctly rounded value in the last place.
// It returns Inf with the matching sign when x overflows float64's range.
func (x Int) ToFloat64() float64 {
	v := x.view()
	neg := v.IsNegative()
	mag := v
	var buf []limb.Word
	if neg {
		buf = make([]limb.Word, len(v))
		negateInto(buf, v)
		mag = limb.View(buf).UnsafeTrimLeadingZeros()
	} else {
		mag = v.UnsafeTrimLeadingZeros()
	}
	f := 0.0
	for i := len(mag) - 1; i >= 0; i-- {
		f = f*0x1p64 + float64(mag[i])
	}
	if neg {
		f = -f
	}
	if math.IsInf(f, 0) {
		return f
	}
	return f
}

func negateInto(dst, src limb.View) {
	limb.Not(dst, src)
	one := make([]limb.Word, len(dst))
	one[0] = 1
	limb.Add(dst, dst, limb.View(one))
}

// IsZero reports whether x == 0.
func (x Int) IsZero() bool { return x.view().IsZero() }

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool { return x.view().IsNegative() }

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.IsNegative() {
		return -1
	}
	return 1
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x Int) Cmp(y Int) int {
	return limb.Compare(x.view(), y.view())
}

// Equal reports whether x and y represent the same value.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// BitLen returns the number of bits required to represent |x|, i.e. the
// position of the highest set bit plus one; BitLen(0) == 1, the original's
// documented zero case for length.
func (x Int) BitLen() int {
	v := x.view()
	var mag limb.View
	if v.IsNegative() {
		buf := make([]limb.Word, len(v))
		negateInto(buf, v)
		mag = limb.View(buf)
	} else {
		mag = v
	}
	mag = mag.UnsafeTrimLeadingZeros()
	if mag.IsZero() {
		return 1
	}
	top := mag[len(mag)-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (len(mag)-1)*64 + bits
}

// Neg returns -x.
func (x Int) Neg() Int {
	v := x.view()
	out := make([]limb.Word, len(v)+1)
	negateInto(out, v)
	return fromView(limb.View(out))
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.IsNegative() {
		return x.Neg()
	}
	return x
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	xv, yv := x.view(), y.view()
	n := maxInt(len(xv), len(yv))
	out := make([]limb.Word, n)
	carry := limb.Add(out, xv, yv)
	if carry != nil {
		out = append(out, *carry)
	}
	return fromView(limb.View(out))
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	xv, yv := x.view(), y.view()
	n := maxInt(len(xv), len(yv))
	out := make([]limb.Word, n)
	carry := limb.Sub(out, xv, yv)
	if carry != nil {
		out = append(out, *carry)
	}
	return fromView(limb.View(out))
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	xv, yv := x.view(), y.view()
	out := make([]limb.Word, len(xv)+len(yv)+1)
	alloc := arenaFor(len(xv) + len(yv))
	limb.SignedMul(limb.View(out), xv, yv, alloc)
	return fromView(limb.View(out))
}

// QuoRem returns the quotient and remainder of x/y, truncated toward zero
// (sign(remainder) == sign(x) when the remainder is non-zero). Panics with
// mplerrors.DivisionByZeroError if y == 0.
func (x Int) QuoRem(y Int) (q, r Int) {
	if y.IsZero() {
		panic(mplerrors.DivisionByZeroError{})
	}
	xv, yv := x.view(), y.view()
	quotient := make([]limb.Word, len(xv)+1)
	remainder := make([]limb.Word, len(yv)+1)
	alloc := arenaFor(len(xv) + len(yv))
	limb.SignedDivide(limb.View(quotient), limb.View(remainder), xv, yv, alloc)
	return fromView(limb.View(quotient)), fromView(limb.View(remainder))
}

// Quo returns the truncated quotient x/y.
func (x Int) Quo(y Int) Int { q, _ := x.QuoRem(y); return q }

// Rem returns the truncated remainder x%y (sign matches x).
func (x Int) Rem(y Int) Int { _, r := x.QuoRem(y); return r }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// arenaFor sizes a scratch arena generously for recursive multiply/divide
// temporaries over operands totalling n limbs: Karatsuba's temporaries sum
// to a small constant multiple of n across the whole recursion tree.
func arenaFor(n int) *scratch.Arena {
	words := 8*n + 256
	return scratch.NewArena(words)
}
