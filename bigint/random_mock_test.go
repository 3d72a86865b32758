package bigint

import (
	"testing"

	"github.com/golang/mock/gomock"
)

// TestRandomOfLengthAtLeastDrivesRNGDeterministically replaces the real
// PRNG with a mock that returns a fixed byte sequence, so the limb layout
// RandomOfLengthAtLeast builds (including the forced top bit) can be
// checked exactly rather than only statistically.
func TestRandomOfLengthAtLeastDrivesRNGDeterministically(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rng := NewMockRNG(ctrl)
	gomock.InOrder(
		rng.EXPECT().Uint64().Return(uint64(0xFFFFFFFFFFFFFFFF)),
		rng.EXPECT().Uint64().Return(uint64(0)),
	)

	got := RandomOfLengthAtLeast(70, rng)

	want, ok := SetString("20FFFFFFFFFFFFFFFF", 16)
	if !ok {
		t.Fatal("failed to parse expected value")
	}
	if !got.Equal(want) {
		t.Errorf("RandomOfLengthAtLeast(70): got %s, want %s", got.String(), want.String())
	}
	if bl := got.BitLen(); bl != 70 {
		t.Errorf("BitLen: got %d, want 70", bl)
	}
}

func TestRandomOfLengthAtLeastNonPositiveBitsIsZeroWithoutCallingRNG(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT() set up: the mock fails the test if Uint64 is called.
	rng := NewMockRNG(ctrl)

	if got := RandomOfLengthAtLeast(0, rng); !got.IsZero() {
		t.Errorf("RandomOfLengthAtLeast(0): got %s, want 0", got.String())
	}
}
