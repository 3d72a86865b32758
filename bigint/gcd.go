package bigint

import "github.com/agbru/mpl/internal/limb"

// GCD returns the non-negative greatest common divisor of x and y.
// GCD(0, 0) is 0.
func (x Int) GCD(y Int) Int {
	xv, yv := x.view(), y.view()
	// Sized to the larger operand, not the smaller: when one operand is
	// zero the result is the other operand's full magnitude, which can
	// exceed the min(|x|,|y|) bound that holds once both are non-zero.
	n := len(xv)
	if len(yv) > n {
		n = len(yv)
	}
	out := make([]limb.Word, n+1)
	alloc := arenaFor(len(xv) + len(yv))
	limb.GCD(out[:n], xv, yv, alloc)
	return fromView(limb.View(out))
}

// LCM returns the non-negative least common multiple of x and y.
// LCM(0, y) and LCM(x, 0) are 0.
func (x Int) LCM(y Int) Int {
	xv, yv := x.view(), y.view()
	out := make([]limb.Word, len(xv)+len(yv)+1)
	alloc := arenaFor(len(xv) + len(yv))
	limb.LCM(out[:len(xv)+len(yv)], xv, yv, alloc)
	return fromView(limb.View(out))
}

// ExtGCD returns (g, a, b) such that g = GCD(x, y) and a*x + b*y == g
// (Bezout's identity), via the iterative extended Euclidean algorithm
// (Knuth, TAOCP Vol. 2 §4.5.2). Unlike GCD and LCM, this recurses through
// plain Int arithmetic rather than internal/limb's fixed-capacity scratch
// kernels: the Bezout coefficients can grow across iterations in a way
// that does not fit a single bounded arena sized from the inputs alone,
// while Int's own Add/Sub/Mul/Quo allocate exactly as needed at each step.
func (x Int) ExtGCD(y Int) (g, a, b Int) {
	oldR, r := x.Abs(), y.Abs()
	oldS, s := FromInt64(1), FromInt64(0)
	oldT, t := FromInt64(0), FromInt64(1)

	for !r.IsZero() {
		q := oldR.Quo(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}

	g, a, b = oldR, oldS, oldT
	if x.IsNegative() {
		a = a.Neg()
	}
	if y.IsNegative() {
		b = b.Neg()
	}
	return g, a, b
}
