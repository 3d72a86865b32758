package rational

import (
	"strings"

	mplerrors "github.com/agbru/mpl/internal/errors"

	"github.com/agbru/mpl/bigint"
)

// Rat is an exact rational number num/den in canonical form: den > 0 and
// gcd(|num|, den) == 1. The zero value is 0/1.
type Rat struct {
	num bigint.Int
	den bigint.Int
}

func one() bigint.Int { return bigint.FromInt64(1) }

// New returns num/den in canonical form. Panics with
// mplerrors.DivisionByZeroError if den == 0.
func New(num, den bigint.Int) Rat {
	if den.IsZero() {
		panic(mplerrors.DivisionByZeroError{})
	}
	return canonical(num, den)
}

// FromInt returns the Rat equal to the integer v.
func FromInt(v bigint.Int) Rat {
	return Rat{num: v, den: one()}
}

// canonical reduces num/den to lowest terms with a positive denominator.
func canonical(num, den bigint.Int) Rat {
	if num.IsZero() {
		return Rat{num: bigint.FromInt64(0), den: one()}
	}
	if den.IsNegative() {
		num, den = num.Neg(), den.Neg()
	}
	g := num.Abs().GCD(den)
	if !g.Equal(one()) {
		num = num.Quo(g)
		den = den.Quo(g)
	}
	return Rat{num: num, den: den}
}

// Num returns the canonical numerator.
func (r Rat) Num() bigint.Int { return r.num }

// Den returns the canonical (always positive) denominator.
func (r Rat) Den() bigint.Int {
	if r.den.IsZero() {
		return one()
	}
	return r.den
}

func (r Rat) denom() bigint.Int {
	if r.den.IsZero() {
		return one()
	}
	return r.den
}

// IsZero reports whether r == 0.
func (r Rat) IsZero() bool { return r.num.IsZero() }

// Sign returns -1, 0, or +1 as r is negative, zero, or positive.
func (r Rat) Sign() int { return r.num.Sign() }

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{num: r.num.Neg(), den: r.denom()} }

// Abs returns |r|.
func (r Rat) Abs() Rat {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

// Add returns r+s, reducing via gcd(den_r, den_s) before cross-multiplying
// rather than always multiplying the two raw denominators together.
func (r Rat) Add(s Rat) Rat {
	rd, sd := r.denom(), s.denom()
	g := rd.GCD(sd)
	rdOverG := rd.Quo(g)
	sdOverG := sd.Quo(g)
	num := r.num.Mul(sdOverG).Add(s.num.Mul(rdOverG))
	den := rdOverG.Mul(sd)
	return canonical(num, den)
}

// Sub returns r-s.
func (r Rat) Sub(s Rat) Rat { return r.Add(s.Neg()) }

// Mul returns r*s, cross-cancelling gcd(num_r, den_s) and
// gcd(num_s, den_r) before multiplying, so the product is built from
// already-reduced factors instead of being reduced after the fact.
func (r Rat) Mul(s Rat) Rat {
	rn, rd := r.num, r.denom()
	sn, sd := s.num, s.denom()

	g1 := rn.Abs().GCD(sd)
	rn, sd = rn.Quo(g1), sd.Quo(g1)

	g2 := sn.Abs().GCD(rd)
	sn, rd = sn.Quo(g2), rd.Quo(g2)

	return canonical(rn.Mul(sn), rd.Mul(sd))
}

// Quo returns r/s. Panics with mplerrors.DivisionByZeroError if s == 0.
func (r Rat) Quo(s Rat) Rat {
	if s.IsZero() {
		panic(mplerrors.DivisionByZeroError{})
	}
	return r.Mul(Rat{num: s.denom(), den: s.num})
}

// Cmp returns -1, 0, or +1 as r is less than, equal to, or greater than s,
// via cross-multiplication (both denominators are already positive, so
// the cross products carry r and s's true signs without adjustment).
func (r Rat) Cmp(s Rat) int {
	lhs := r.num.Mul(s.denom())
	rhs := s.num.Mul(r.denom())
	return lhs.Cmp(rhs)
}

// Equal reports whether r and s represent the same rational value.
func (r Rat) Equal(s Rat) bool { return r.Cmp(s) == 0 }

// Floor returns the greatest integer <= r.
func (r Rat) Floor() bigint.Int {
	q, rem := r.num.QuoRem(r.denom())
	if !rem.IsZero() && r.Sign() < 0 {
		q = q.Sub(bigint.FromInt64(1))
	}
	return q
}

// Ceiling returns the least integer >= r.
func (r Rat) Ceiling() bigint.Int {
	q, rem := r.num.QuoRem(r.denom())
	if !rem.IsZero() && r.Sign() > 0 {
		q = q.Add(bigint.FromInt64(1))
	}
	return q
}

// ToFloat64 returns the float64 quotient of r's numerator and denominator,
// each first converted with Int.ToFloat64. The result is an approximation
// and is not always the float64 nearest to r.
func (r Rat) ToFloat64() float64 {
	return r.num.ToFloat64() / r.denom().ToFloat64()
}

// Hash returns a value suitable for use as a map key's hash component,
// combining the numerator's and denominator's own bit patterns the same
// way a pair's hash is usually combined: XOR of the two parts' hashes.
func (r Rat) Hash() uint64 {
	return intHash(r.num) ^ intHash(r.denom())
}

func intHash(v bigint.Int) uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	s := v.Text(16)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

// String renders r as "num/den", or just "num" when den == 1.
func (r Rat) String() string {
	if r.denom().Equal(one()) {
		return r.num.String()
	}
	return r.num.String() + "/" + r.denom().String()
}

// SetString parses s in one of three forms: "num/den", a plain integer
// "num" (den defaults to 1), or a decimal literal "d.ddd" (the fractional
// digits become a denominator of 10^(digits after the point)). It reports
// success via the second return, matching bigint.SetString's convention.
func SetString(s string) (Rat, bool) {
	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		numStr, denStr := s[:slash], s[slash+1:]
		num, ok := bigint.SetString(numStr, 10)
		if !ok {
			return Rat{}, false
		}
		den, ok := bigint.SetString(denStr, 10)
		if !ok || den.IsZero() {
			return Rat{}, false
		}
		return canonical(num, den), true
	}

	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		neg := strings.HasPrefix(s, "-")
		whole, frac := s[:dot], s[dot+1:]
		digits := strings.TrimPrefix(strings.TrimPrefix(whole, "-"), "+") + frac
		if digits == "" || frac == "" {
			return Rat{}, false
		}
		num, ok := bigint.SetString(digits, 10)
		if !ok {
			return Rat{}, false
		}
		if neg {
			num = num.Neg()
		}
		den := bigint.FromInt64(10).Pow(uint64(len(frac)))
		return canonical(num, den), true
	}

	num, ok := bigint.SetString(s, 10)
	if !ok {
		return Rat{}, false
	}
	return Rat{num: num, den: one()}, true
}

// ParseString is SetString with an error return instead of a boolean.
func ParseString(s string) (Rat, error) {
	r, ok := SetString(s)
	if !ok {
		return Rat{}, mplerrors.ParseError{Input: s, Cause: errInvalidRat}
	}
	return r, nil
}

var errInvalidRat = parseErr("rational: invalid literal")

type parseErr string

func (e parseErr) Error() string { return string(e) }
