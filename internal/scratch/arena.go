package scratch

import (
	"unsafe"

	mplerrors "github.com/agbru/mpl/internal/errors"
)

// block records one live or freed allocation within the arena, in the
// order it was acquired.
type block struct {
	start, length int
	freed         bool
}

// Arena is a fixed-capacity bump allocator over a contiguous []uint64
// region. Allocate with Alloc; release with Free. Blocks are expected to
// be freed in roughly LIFO order (a temporary acquired inside a recursive
// call is freed before the caller's own temporary); Free tolerates
// out-of-order release by marking the block freed and only reclaiming
// space once the freed block reaches the top of the stack, splicing
// through any run of already-freed blocks above it.
type Arena struct {
	buf    []uint64
	offset int
	stack  []block
}

// NewArena creates an Arena with the given capacity in 64-bit words.
func NewArena(capacityWords int) *Arena {
	return &Arena{buf: make([]uint64, capacityWords)}
}

// Alloc returns n words of zeroed scratch space. It panics with a
// diagnostic if the arena's remaining capacity is insufficient: scratch
// exhaustion is a fatal condition (see internal/errors), not a recoverable
// one, matching the reference implementation's abort-on-overflow policy.
func (a *Arena) Alloc(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	if a.offset+n > len(a.buf) {
		panic(mplerrors.ScratchExhaustedError{
			Requested: n,
			Available: len(a.buf) - a.offset,
			Capacity:  len(a.buf),
		})
	}
	start := a.offset
	a.offset += n
	a.stack = append(a.stack, block{start: start, length: n})
	buf := a.buf[start : start+n]
	clear(buf)
	return buf
}

// Free releases a block previously returned by Alloc. Calling Free with a
// slice not returned by this Arena's Alloc is a programming error.
func (a *Arena) Free(buf []uint64) {
	if len(buf) == 0 {
		return
	}
	start := a.blockStart(buf)
	for i := len(a.stack) - 1; i >= 0; i-- {
		if a.stack[i].start == start {
			a.stack[i].freed = true
			break
		}
	}
	for len(a.stack) > 0 && a.stack[len(a.stack)-1].freed {
		top := a.stack[len(a.stack)-1]
		a.offset = top.start
		a.stack = a.stack[:len(a.stack)-1]
	}
}

// blockStart computes the word offset of buf within the arena's backing
// array by pointer arithmetic.
func (a *Arena) blockStart(buf []uint64) int {
	base := unsafe.Pointer(&a.buf[:cap(a.buf)][0])
	ptr := unsafe.Pointer(&buf[:1][0])
	return int(uintptr(ptr)-uintptr(base)) / int(unsafe.Sizeof(uint64(0)))
}

// Reset releases every outstanding block at once, leaving the arena ready
// for reuse. All slices previously returned by Alloc become invalid.
func (a *Arena) Reset() {
	a.offset = 0
	a.stack = a.stack[:0]
}

// UsedWords returns the number of words currently allocated.
func (a *Arena) UsedWords() int { return a.offset }

// CapacityWords returns the arena's total capacity in words.
func (a *Arena) CapacityWords() int { return len(a.buf) }
