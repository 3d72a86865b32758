// Package limb implements the arithmetic kernel of the MPL big-integer
// library: fixed-width primitives on a 64-bit limb, a non-owning limb view
// over any limb storage, and the limb-array algorithms (add/sub, bitwise,
// shifts, compare, multiply, Knuth-D division, binary GCD, base-N text I/O)
// that operate on those views.
//
// Every algorithm in this package is a pure function over limb views: it is
// oblivious to whether the backing storage is the inline buffer or the heap
// allocation of an [github.com/agbru/mpl/internal/sbo.Container]. Callers
// size the destination view before calling; no function in this package
// allocates or grows a destination.
//
// Limbs are little-endian: index 0 is the least significant word. Values
// are represented in two's complement with the sign carried in the top bit
// of the highest-index limb, conceptually sign-extended to infinity.
package limb
