// Package rational provides Rat, an exact rational number built on
// bigint.Int. A Rat is always kept in canonical form: the denominator is
// positive and coprime with the numerator, and zero is represented as
// 0/1. Every constructor and arithmetic method returns a canonical value;
// there is no way to observe a non-canonical Rat through the public API.
package rational
