package bigint

import (
	"math/rand"
	"strings"
	"testing"
)

func TestAddSub(t *testing.T) {
	t.Parallel()
	a := FromInt64(12345)
	b := FromInt64(-6789)
	if got := a.Add(b).String(); got != "5556" {
		t.Errorf("Add: got %s, want 5556", got)
	}
	if got := a.Sub(b).String(); got != "19134" {
		t.Errorf("Sub: got %s, want 19134", got)
	}
}

func TestMulLargeSquare(t *testing.T) {
	t.Parallel()
	// 18446744073709551615^2 = 340282366920938463426481119284349108225
	x, ok := SetString("18446744073709551615", 10)
	if !ok {
		t.Fatal("failed to parse operand")
	}
	got := x.Mul(x).String()
	want := "340282366920938463426481119284349108225"
	if got != want {
		t.Errorf("Mul: got %s, want %s", got, want)
	}
}

func TestQuoRemTruncatesTowardZero(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b     int64
		wantQuo  int64
		wantRem  int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -2, -1},
		{7, -3, -2, 1},
		{-7, -3, 2, -1},
	}
	for _, tt := range tests {
		q, r := FromInt64(tt.a).QuoRem(FromInt64(tt.b))
		qi, _ := q.Int64()
		ri, _ := r.Int64()
		if qi != tt.wantQuo || ri != tt.wantRem {
			t.Errorf("QuoRem(%d,%d) = (%d,%d), want (%d,%d)", tt.a, tt.b, qi, ri, tt.wantQuo, tt.wantRem)
		}
	}
}

func TestDivisionByZeroPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic dividing by zero")
		}
	}()
	FromInt64(1).QuoRem(FromInt64(0))
}

func TestGCDLCM(t *testing.T) {
	t.Parallel()
	if got := FromInt64(462).GCD(FromInt64(1071)).String(); got != "21" {
		t.Errorf("GCD: got %s, want 21", got)
	}
	if got := FromInt64(12).LCM(FromInt64(18)).String(); got != "36" {
		t.Errorf("LCM: got %s, want 36", got)
	}
}

func TestGCDWithZeroOperand(t *testing.T) {
	t.Parallel()
	big, ok := SetString("123456789012345678901234567890", 10)
	if !ok {
		t.Fatal("failed to parse operand")
	}
	if got := big.GCD(FromInt64(0)); !got.Equal(big) {
		t.Errorf("GCD(x,0) = %s, want %s", got.String(), big.String())
	}
	if got := FromInt64(0).GCD(big); !got.Equal(big) {
		t.Errorf("GCD(0,x) = %s, want %s", got.String(), big.String())
	}
}

func TestExtGCDSatisfiesBezout(t *testing.T) {
	t.Parallel()
	x, y := FromInt64(462), FromInt64(1071)
	g, a, b := x.ExtGCD(y)
	if got := g.String(); got != "21" {
		t.Errorf("ExtGCD gcd: got %s, want 21", got)
	}
	combo := a.Mul(x).Add(b.Mul(y))
	if !combo.Equal(g) {
		t.Errorf("Bezout identity failed: a*x+b*y = %s, want %s", combo.String(), g.String())
	}
}

func TestPowAndIsPow2(t *testing.T) {
	t.Parallel()
	if got := FromInt64(0).Pow(0).String(); got != "1" {
		t.Errorf("0^0: got %s, want 1", got)
	}
	shifted := FromInt64(1).Lsh(100)
	k, ok := shifted.IsPow2()
	if !ok || k != 101 {
		t.Errorf("IsPow2(1<<100): got (%d,%v), want (101,true)", k, ok)
	}
	if _, ok := FromInt64(6).IsPow2(); ok {
		t.Error("IsPow2(6) should be false")
	}
}

func TestBitRangeExtraction(t *testing.T) {
	t.Parallel()
	x := FromInt64(0b1011010)
	got := x.GetBitRange(4, 1).String()
	// the 4-bit field starting at bit 1 of 1011010 is 1101 = 13
	if got != "13" {
		t.Errorf("GetBitRange: got %s, want 13", got)
	}
}

func TestShifts(t *testing.T) {
	t.Parallel()
	if got := FromInt64(1).Lsh(65).String(); got != "36893488147419103232" {
		t.Errorf("Lsh: got %s", got)
	}
	if got := FromInt64(-8).Rsh(2).String(); got != "-2" {
		t.Errorf("Rsh: got %s, want -2", got)
	}
}

func TestLshSignExtendsNegativeOperands(t *testing.T) {
	t.Parallel()
	if got := FromInt64(-1).Lsh(1).String(); got != "-2" {
		t.Errorf("(-1)<<1: got %s, want -2", got)
	}
	if got := FromInt64(-1).Lsh(65).String(); got != "-36893488147419103232" {
		t.Errorf("(-1)<<65: got %s, want -36893488147419103232", got)
	}
	// A negative value whose magnitude already spans multiple limbs must
	// stay negative once widened further: the bug this guards against
	// zero-filled past the operand's own limb count instead of
	// sign-extending, flipping results like this one positive.
	wide := FromInt64(1).Lsh(100).Neg()
	if got := wide.Lsh(50); !got.IsNegative() {
		t.Errorf("(-2^100)<<50 should stay negative, got %s", got.String())
	}
}

func TestLshThenRshRoundTripsForNegativeValues(t *testing.T) {
	t.Parallel()
	for _, v := range []int64{-1, -2, -8, -12345, -9223372036854775808} {
		x := FromInt64(v)
		for _, k := range []int{0, 1, 5, 63, 64, 65, 130} {
			if got := x.Lsh(k).Rsh(k); !got.Equal(x) {
				t.Errorf("(%d<<%d)>>%d = %s, want %d", v, k, k, got.String(), v)
			}
		}
	}
}

func TestBitwise(t *testing.T) {
	t.Parallel()
	a := FromInt64(0b1100)
	b := FromInt64(0b1010)
	if got := a.And(b).String(); got != "8" {
		t.Errorf("And: got %s, want 8", got)
	}
	if got := a.Or(b).String(); got != "14" {
		t.Errorf("Or: got %s, want 14", got)
	}
	if got := a.Xor(b).String(); got != "6" {
		t.Errorf("Xor: got %s, want 6", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"0", "-1", "123456789012345678901234567890", "-987654321098765432109876543210"} {
		x, ok := SetString(s, 10)
		if !ok {
			t.Fatalf("SetString(%q) failed", s)
		}
		if got := x.String(); got != s {
			t.Errorf("round trip: got %s, want %s", got, s)
		}
	}
}

func TestMulParallelMatchesMul(t *testing.T) {
	// MulParallel only takes its split path above parallelMulThreshold
	// bits; lower it so operands this test can afford actually exercise
	// the hi/lo split instead of silently falling through to Mul.
	old := parallelMulThreshold
	SetParallelMulThreshold(1024)
	defer func() { parallelMulThreshold = old }()

	x := FromInt64(1).Lsh(20000).Add(FromInt64(12345))
	y := FromInt64(1).Lsh(15000).Add(FromInt64(98765))
	if got, want := x.MulParallel(y), x.Mul(y); !got.Equal(want) {
		t.Errorf("MulParallel disagrees with Mul:\n got  %s\n want %s", got.String(), want.String())
	}
	// neg is negative, so hi = neg.Rsh(half) is negative and hiProduct =
	// hi.Mul(y) is negative: hiProduct.Lsh(half) is exactly the call the
	// Lsh sign-extension bug corrupted.
	neg := x.Neg()
	if got, want := neg.MulParallel(y), neg.Mul(y); !got.Equal(want) {
		t.Errorf("MulParallel disagrees with Mul for negative x:\n got  %s\n want %s", got.String(), want.String())
	}
	negY := y.Neg()
	if got, want := x.MulParallel(negY), x.Mul(negY); !got.Equal(want) {
		t.Errorf("MulParallel disagrees with Mul for negative y:\n got  %s\n want %s", got.String(), want.String())
	}
}

func TestHexAndBinaryPrefixes(t *testing.T) {
	t.Parallel()
	x, ok := SetString("0xFF", 0)
	if !ok || x.String() != "255" {
		t.Errorf("0xFF: got %v,%s", ok, x.String())
	}
	y, ok := SetString("-0b101", 0)
	if !ok || y.String() != "-5" {
		t.Errorf("-0b101: got %v,%s", ok, y.String())
	}
}

func TestLeadingZeroIsOctal(t *testing.T) {
	t.Parallel()
	x, ok := SetString("0755", 0)
	if !ok || x.String() != "493" {
		t.Errorf("0755: got %v,%s, want true,493", ok, x.String())
	}
	neg, ok := SetString("-010", 0)
	if !ok || neg.String() != "-8" {
		t.Errorf("-010: got %v,%s, want true,-8", ok, neg.String())
	}
	// A single "0" is just zero, not an empty octal literal.
	zero, ok := SetString("0", 0)
	if !ok || !zero.IsZero() {
		t.Errorf("0: got %v,%s, want true,0", ok, zero.String())
	}
}

func TestUint64RejectsAnyTwoLimbMagnitude(t *testing.T) {
	t.Parallel()
	// 2^64 + 2^63: two limbs [1<<63, 1], low limb's top bit set. Must not
	// be reported as fitting in a uint64.
	x := FromInt64(1).Lsh(64).Add(FromInt64(1).Lsh(63))
	if _, ok := x.Uint64(); ok {
		t.Error("Uint64() should reject a value >= 2^64")
	}

	maxU64, ok := SetString("18446744073709551615", 10)
	if !ok {
		t.Fatal("failed to parse operand")
	}
	got, ok := maxU64.Uint64()
	if !ok || got != 18446744073709551615 {
		t.Errorf("Uint64(2^64-1): got (%d,%v), want (18446744073709551615,true)", got, ok)
	}
}

func TestOneExtendSetsConsecutiveRangeOnly(t *testing.T) {
	t.Parallel()
	x := FromInt64(0b1)
	got := x.OneExtend(4, 3).String()
	// bits [4,7) set on top of bit 0: 0b1110001 = 113; bits above 7 stay 0.
	if got != "113" {
		t.Errorf("OneExtend(4,3): got %s, want 113", got)
	}
	if got := x.OneExtend(0, 0).String(); got != "1" {
		t.Errorf("OneExtend(0,0) should be a no-op, got %s", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Benchmarks
// ─────────────────────────────────────────────────────────────────────────────

func randomIntOfBits(bits int, seed int64) Int {
	return RandomOfLengthAtLeast(bits, rand.New(rand.NewSource(seed)))
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	sizes := []int{64, 512, 4096, 32768}
	for _, bits := range sizes {
		x := randomIntOfBits(bits, 42)
		y := randomIntOfBits(bits, 43)
		b.Run(itoa(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Mul(y)
			}
		})
	}
}

func BenchmarkMulParallel(b *testing.B) {
	b.ReportAllocs()
	sizes := []int{1 << 16, 1 << 18, 1 << 20}
	for _, bits := range sizes {
		x := randomIntOfBits(bits, 42)
		y := randomIntOfBits(bits, 43)
		b.Run(itoa(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.MulParallel(y)
			}
		})
	}
}

func BenchmarkDivKnuth(b *testing.B) {
	b.ReportAllocs()
	sizes := []int{64, 512, 4096, 32768}
	for _, bits := range sizes {
		x := randomIntOfBits(bits*2, 42)
		y := randomIntOfBits(bits, 43)
		b.Run(itoa(bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Quo(y)
			}
		})
	}
}

func BenchmarkFromString(b *testing.B) {
	b.ReportAllocs()
	digits := []int{10, 100, 1000, 10000}
	for _, n := range digits {
		s := "1" + strings.Repeat("23456789", n/8+1)
		s = s[:n]
		b.Run(itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = ParseString(s)
			}
		})
	}
}

func itoa(n int) string {
	digits := [...]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%10]
		n /= 10
	}
	return string(buf[i:])
}
