package bigint

import (
	mplerrors "github.com/agbru/mpl/internal/errors"
	"github.com/agbru/mpl/internal/limb"
)

// String renders x in base 10.
func (x Int) String() string {
	s, _ := limb.FormatSigned(x.view(), 10)
	return s
}

// Text renders x in the given base (2-36).
func (x Int) Text(base int) string {
	s, err := limb.FormatSigned(x.view(), base)
	if err != nil {
		panic(err)
	}
	return s
}

// SetString parses s as a signed integer literal and returns the result
// and true on success. base == 0 auto-detects a "0x"/"0b"/"0o" prefix or a
// bare leading "0" (base 8), defaulting to base 10 otherwise; any other
// value in [2, 36] disables prefix detection and parses s verbatim in that
// base.
func SetString(s string, base int) (Int, bool) {
	v, err := limb.ParseSignedBase(s, base)
	if err != nil {
		return Int{}, false
	}
	return fromView(v), true
}

// ParseString is SetString with the base-10/prefix-detecting defaults,
// returning a mplerrors.ParseError on failure so callers get a %w-chained
// cause instead of a bare boolean.
func ParseString(s string) (Int, error) {
	v, err := limb.ParseSignedBase(s, 0)
	if err != nil {
		return Int{}, mplerrors.ParseError{Input: s, Cause: err}
	}
	return fromView(v), nil
}
