package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/agbru/mpl/bigint"
	"github.com/agbru/mpl/internal/cli"
	mplerrors "github.com/agbru/mpl/internal/errors"
	"github.com/agbru/mpl/rational"
)

type parseErr string

func (e parseErr) Error() string { return string(e) }

const errInvalidDigitForBase = parseErr("invalid digit for the requested base")

// isRationalOp reports whether op operates on rational.Rat rather than
// bigint.Int.
func isRationalOp(op string) bool {
	return strings.HasPrefix(op, "rat-")
}

// parseOperands parses a.Config.A/B according to op's family. When strict
// is false, a parse failure falls back to the zero value instead of
// erroring — a CLI-only convenience; bigint and rational themselves have
// no lenient mode.
func parseOperands(op, aStr, bStr string, base int, strict bool) (a, b bigint.Int, ra, rb rational.Rat, err error) {
	if isRationalOp(op) {
		if ra, err = parseRat(aStr, strict); err != nil {
			return
		}
		rb, err = parseRat(bStr, strict)
		return
	}
	if a, err = parseInt(aStr, base, strict); err != nil {
		return
	}
	b, err = parseInt(bStr, base, strict)
	return
}

func parseRat(s string, strict bool) (rational.Rat, error) {
	r, err := rational.ParseString(s)
	if err != nil {
		if strict {
			return rational.Rat{}, err
		}
		return rational.Rat{}, nil
	}
	return r, nil
}

func parseInt(s string, base int, strict bool) (bigint.Int, error) {
	var x bigint.Int
	var err error
	if base == 0 {
		x, err = bigint.ParseString(s)
	} else {
		ok := false
		x, ok = bigint.SetString(s, base)
		if !ok {
			err = mplerrors.ParseError{Input: s, Cause: errInvalidDigitForBase}
		}
	}
	if err != nil {
		if strict {
			return bigint.Int{}, err
		}
		return bigint.FromInt64(0), nil
	}
	return x, nil
}

// runOperation dispatches op over the parsed operands and returns a
// presentation-layer Result. Fatal library conditions (division by zero,
// scratch exhaustion) surface as a panic, which Run recovers.
func runOperation(_ context.Context, op string, a, b bigint.Int, ra, rb rational.Rat) cli.Result {
	if isRationalOp(op) {
		return runRationalOperation(op, ra, rb)
	}
	return runIntOperation(op, a, b)
}

func runIntOperation(op string, a, b bigint.Int) cli.Result {
	result := cli.Result{Op: op, A: a.String(), B: b.String()}
	switch op {
	case "add":
		set(&result, a.Add(b))
	case "sub":
		set(&result, a.Sub(b))
	case "mul":
		set(&result, a.MulParallel(b))
	case "div":
		set(&result, a.Quo(b))
	case "mod":
		set(&result, a.Rem(b))
	case "gcd":
		set(&result, a.GCD(b))
	case "lcm":
		set(&result, a.LCM(b))
	case "extgcd":
		g, x, y := a.ExtGCD(b)
		result.Value = fmt.Sprintf("gcd=%s x=%s y=%s", g.String(), x.String(), y.String())
		result.Bits = g.BitLen()
	case "pow":
		exp, ok := b.Uint64()
		if !ok {
			panic(mplerrors.NewConfigError("pow: exponent %s does not fit in a uint64 or is negative", b.String()))
		}
		set(&result, a.Pow(exp))
	case "shift":
		n, ok := b.Int64()
		if !ok {
			panic(mplerrors.NewConfigError("shift: amount %s does not fit in an int64", b.String()))
		}
		if n >= 0 {
			set(&result, a.Lsh(int(n)))
		} else {
			set(&result, a.Rsh(int(-n)))
		}
	case "and":
		set(&result, a.And(b))
	case "or":
		set(&result, a.Or(b))
	case "xor":
		set(&result, a.Xor(b))
	case "bitrange":
		start, _ := b.Int64()
		set(&result, a.GetBitRange(64, int(start)))
	case "modpow2":
		k, _ := b.Int64()
		set(&result, a.ModPow2(int(k)))
	default:
		panic(mplerrors.NewConfigError("unknown operation %q", op))
	}
	return result
}

func runRationalOperation(op string, a, b rational.Rat) cli.Result {
	result := cli.Result{Op: op, A: a.String(), B: b.String()}
	switch op {
	case "rat-add":
		setRat(&result, a.Add(b))
	case "rat-sub":
		setRat(&result, a.Sub(b))
	case "rat-mul":
		setRat(&result, a.Mul(b))
	case "rat-div":
		setRat(&result, a.Quo(b))
	case "rat-floor":
		set(&result, a.Floor())
	case "rat-ceil":
		set(&result, a.Ceiling())
	default:
		panic(mplerrors.NewConfigError("unknown operation %q", op))
	}
	return result
}

func set(r *cli.Result, v bigint.Int) {
	r.Value = v.String()
	r.Bits = v.BitLen()
}

func setRat(r *cli.Result, v rational.Rat) {
	r.Value = v.String()
	r.Bits = v.Num().BitLen() + v.Den().BitLen()
}
