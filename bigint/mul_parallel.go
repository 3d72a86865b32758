package bigint

import "golang.org/x/sync/errgroup"

// parallelMulThreshold is the bit length above which MulParallel splits the
// larger operand in two and multiplies each half against y concurrently,
// rather than running a single sequential Mul. It defaults to a
// conservative value and can be retuned at startup via
// SetParallelMulThreshold (e.g. from a hardware-aware estimate).
var parallelMulThreshold = 1 << 16

// SetParallelMulThreshold overrides the bit-length threshold MulParallel
// uses to decide whether an operand is wide enough to justify the extra
// goroutine and scratch arena. Intended to be called once at process
// startup, not concurrently with in-flight multiplications.
func SetParallelMulThreshold(bits int) {
	if bits > 0 {
		parallelMulThreshold = bits
	}
}

// MulParallel returns x*y like Mul, but for operands wide enough to make the
// extra goroutine and scratch arena worthwhile, splits x into a high and low
// half (x == hi*2^half + lo, via an arithmetic shift and a bitmask — exact
// for any sign since both are two's-complement identities) and computes
// hi*y and lo*y concurrently.
func (x Int) MulParallel(y Int) Int {
	bits := x.BitLen()
	if bits < parallelMulThreshold {
		return x.Mul(y)
	}
	half := bits / 2
	lo := x.ModPow2(half)
	hi := x.Rsh(half)

	var hiProduct, loProduct Int
	var g errgroup.Group
	g.Go(func() error {
		hiProduct = hi.Mul(y)
		return nil
	})
	g.Go(func() error {
		loProduct = lo.Mul(y)
		return nil
	})
	g.Wait()

	return hiProduct.Lsh(half).Add(loProduct)
}
