package bigint

import "github.com/agbru/mpl/internal/limb"

// RNG is the random source bigint draws from. *rand.Rand and any test
// double satisfying this single method work directly; it exists so tests
// can supply a mock without pulling math/rand into the call signature.
type RNG interface {
	Uint64() uint64
}

// RandomOfLengthAtLeast returns a uniformly-chosen non-negative Int whose
// bit length is at least bits (bits > 0): the top bit of the requested
// window is forced to 1 so the result never falls short, while the
// remaining bits are drawn from rng.
func RandomOfLengthAtLeast(bits int, rng RNG) Int {
	if bits <= 0 {
		return FromInt64(0)
	}
	words := (bits + 63) / 64
	out := make([]limb.Word, words+1)
	for i := 0; i < words; i++ {
		out[i] = limb.Word(rng.Uint64())
	}
	topBit := uint((bits - 1) % 64)
	out[words-1] |= limb.Word(1) << topBit
	return fromView(limb.View(out))
}
