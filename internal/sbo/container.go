package sbo

import "github.com/agbru/mpl/internal/limb"

// inlineCapacity is the number of limbs a Container stores without
// touching the heap. Chosen as the midpoint of the reference
// implementation's 3-6 limb range: wide enough to hold any value up to
// 256 bits inline, narrow enough to keep a zero-valued Container small.
const inlineCapacity = 4

// Container is an owning, resizable sequence of limbs with small-buffer
// optimization. The zero value is a valid empty container (size 0); users
// that need the integer-zero invariant (size >= 1) call Resize(1, 0)
// themselves; bigint.Int instead reads a size-0 container as the value 0.
//
// A Container is a value type. Assignment copies the struct; when the
// value is in the heap state this shares the backing array with the
// original until one of them grows or is explicitly cloned via Clone.
// Every bigint.Int method that returns a new value builds it into freshly
// allocated storage rather than mutating a borrowed Container, so this
// sharing is never observed through the public API; only Clone is needed
// for callers that must guarantee independence up front.
type Container struct {
	inline [inlineCapacity]limb.Word
	heap   []limb.Word
	size   int
	onHeap bool
}

// Size returns the logical number of limbs currently held.
func (c *Container) Size() int { return c.size }

// Capacity returns the number of limbs storable without reallocating.
func (c *Container) Capacity() int {
	if c.onHeap {
		return cap(c.heap)
	}
	return inlineCapacity
}

// storage returns the full backing slice (length == Capacity, not Size)
// for the active representation.
func (c *Container) storage() []limb.Word {
	if c.onHeap {
		return c.heap
	}
	return c.inline[:]
}

// At returns the limb at index i (0 <= i < Size).
func (c *Container) At(i int) limb.Word { return c.storage()[i] }

// Set writes the limb at index i (0 <= i < Size).
func (c *Container) Set(i int, v limb.Word) { c.storage()[i] = v }

// View returns a non-owning view over the logical limbs, valid until the
// next mutating call on c.
func (c *Container) View() limb.View { return limb.View(c.storage()[:c.size]) }

// Reserve ensures Capacity() >= n, promoting to the heap if necessary.
// Growth on the heap is geometric (1.5x) to amortize repeated pushes.
func (c *Container) Reserve(n int) {
	if n <= c.Capacity() {
		return
	}
	newCap := c.Capacity()
	for newCap < n {
		newCap = newCap + newCap/2 + 1
	}
	next := make([]limb.Word, newCap)
	copy(next, c.storage()[:c.size])
	c.heap = next
	c.onHeap = true
}

// Resize logically extends or truncates the container to n limbs.
// Newly-added limbs (when growing) take the value fill, which lets
// callers sign-extend (fill = 0 or fill = all-ones) rather than always
// zero-filling.
func (c *Container) Resize(n int, fill limb.Word) {
	if n < 0 {
		n = 0
	}
	if n > c.Capacity() {
		c.Reserve(n)
	}
	s := c.storage()
	for i := c.size; i < n; i++ {
		s[i] = fill
	}
	c.size = n
}

// PushBack appends one limb, growing by amortized O(1) and promoting
// inline to heap storage on overflow. Existing limbs retain their values.
func (c *Container) PushBack(v limb.Word) {
	c.Reserve(c.size + 1)
	c.storage()[c.size] = v
	c.size++
}

// Clone returns an independent copy: mutating the clone never affects c
// and vice versa, even when c is in the heap state.
func (c *Container) Clone() Container {
	out := Container{size: c.size}
	if c.onHeap {
		out.onHeap = true
		out.heap = append([]limb.Word(nil), c.heap[:c.size]...)
		return out
	}
	out.inline = c.inline
	return out
}

// FromView overwrites c's contents with a copy of v, promoting to the
// heap if v does not fit inline.
func (c *Container) FromView(v limb.View) {
	c.Resize(len(v), 0)
	copy(c.storage(), v)
}
