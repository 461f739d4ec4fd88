// Package bitmap implements a fixed-range set of boolean flags packed into a
// single 64-bit word.
//
// A Bitmap tracks up to MaxBits flags numbered from zero. Bits outside the
// tracked range are ignored by mutations, so the flag word never carries
// stray bits and IsFull stays meaningful.
package bitmap

import (
	"math/bits"

	"github.com/eliangidoni/wirecc/internal/debug"
)

// MaxBits is the widest flag range a Bitmap can track.
const MaxBits = 64

// Bitmap tracks a fixed range of boolean flags in one 64-bit word.
//
// The zero value tracks no flags; use New to pick the range.
type Bitmap struct {
	flags uint64
	mask  uint64
}

// New creates a bitmap tracking maxBits flags, numbered 0 through maxBits-1.
// Ranges wider than MaxBits are clamped to MaxBits.
func New(maxBits uint8) Bitmap {
	if maxBits >= MaxBits {
		return Bitmap{mask: ^uint64(0)}
	}

	return Bitmap{mask: 1<<maxBits - 1}
}

// Set turns the flag at bit on. Bits outside the tracked range are ignored;
// with debug assertions enabled, bit must be below MaxBits.
func (b *Bitmap) Set(bit uint) {
	debug.Assertf(bit < MaxBits, "bitmap: bit %d out of range", bit)
	b.flags = (b.flags | 1<<bit) & b.mask
}

// Unset turns the flag at bit off. Bits outside the tracked range are
// ignored; with debug assertions enabled, bit must be below MaxBits.
func (b *Bitmap) Unset(bit uint) {
	debug.Assertf(bit < MaxBits, "bitmap: bit %d out of range", bit)
	b.flags &= b.mask &^ (1 << bit)
}

// IsSet reports whether the flag at bit is on.
func (b Bitmap) IsSet(bit uint) bool {
	return b.flags&(1<<bit) != 0
}

// IsEmpty reports whether no flag is on.
func (b Bitmap) IsEmpty() bool {
	return b.flags == 0
}

// IsFull reports whether every tracked flag is on.
func (b Bitmap) IsFull() bool {
	return b.flags == b.mask
}

// Flags returns the raw flag word. Bit i of the word corresponds to flag i.
func (b Bitmap) Flags() uint64 {
	return b.flags
}

// MaxBits returns the number of flags the bitmap tracks.
func (b Bitmap) MaxBits() int {
	return bits.OnesCount64(b.mask)
}

// Clear turns every flag off.
func (b *Bitmap) Clear() {
	b.flags = 0
}
