package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eliangidoni/wirecc/internal/debug"
)

func TestNew(t *testing.T) {
	b := New(8)

	assert.Equal(t, 8, b.MaxBits())
	assert.Equal(t, uint64(0), b.Flags())
	assert.True(t, b.IsEmpty())
	assert.False(t, b.IsFull())
}

func TestNew_ClampsWideRanges(t *testing.T) {
	assert.Equal(t, 64, New(64).MaxBits())
	assert.Equal(t, 64, New(200).MaxBits())
}

// TestNew_ZeroRange verifies the degenerate zero-flag bitmap: with nothing
// to track it is both empty and full.
func TestNew_ZeroRange(t *testing.T) {
	b := New(0)

	assert.Equal(t, 0, b.MaxBits())
	assert.True(t, b.IsEmpty())
	assert.True(t, b.IsFull())
}

// TestBitmap_SetUnset verifies the flag word after a known sequence of
// mutations.
func TestBitmap_SetUnset(t *testing.T) {
	b := New(8)

	b.Set(0)
	b.Set(3)
	b.Set(7)

	assert.Equal(t, uint64(0b10001001), b.Flags())
	assert.True(t, b.IsSet(0))
	assert.True(t, b.IsSet(3))
	assert.True(t, b.IsSet(7))
	assert.False(t, b.IsSet(1))
	assert.False(t, b.IsEmpty())

	b.Unset(3)

	assert.Equal(t, uint64(0b10000001), b.Flags())
	assert.False(t, b.IsSet(3))
}

func TestBitmap_SetIsIdempotent(t *testing.T) {
	b := New(8)

	b.Set(2)
	b.Set(2)

	assert.Equal(t, uint64(0b100), b.Flags())
}

func TestBitmap_UnsetAbsentBit(t *testing.T) {
	b := New(8)
	b.Set(1)

	b.Unset(5)

	assert.Equal(t, uint64(0b10), b.Flags())
}

// TestBitmap_IsFull verifies IsFull flips exactly when the last tracked flag
// turns on.
func TestBitmap_IsFull(t *testing.T) {
	b := New(2)

	b.Set(0)
	assert.False(t, b.IsFull())

	b.Set(1)
	assert.True(t, b.IsFull())

	b.Unset(0)
	assert.False(t, b.IsFull())
}

func TestBitmap_SingleBit(t *testing.T) {
	b := New(1)

	assert.True(t, b.IsEmpty())

	b.Set(0)

	assert.True(t, b.IsFull())
	assert.Equal(t, uint64(1), b.Flags())
}

func TestBitmap_FullWidth(t *testing.T) {
	b := New(64)

	for bit := uint(0); bit < 64; bit++ {
		b.Set(bit)
	}

	assert.True(t, b.IsFull())
	assert.Equal(t, ^uint64(0), b.Flags())
	assert.True(t, b.IsSet(63))

	b.Unset(17)

	assert.False(t, b.IsFull())
	assert.False(t, b.IsSet(17))
}

// TestBitmap_OutOfRangeIgnored verifies mutations outside the tracked range
// leave the flag word untouched when debug assertions are off.
func TestBitmap_OutOfRangeIgnored(t *testing.T) {
	b := New(8)

	b.Set(20)
	assert.Equal(t, uint64(0), b.Flags())
	assert.False(t, b.IsSet(20))

	b.Set(70)
	assert.Equal(t, uint64(0), b.Flags())

	b.Unset(70)
	assert.Equal(t, uint64(0), b.Flags())
}

// TestBitmap_DebugAssert verifies out-of-range bits panic when debug
// assertions are enabled.
func TestBitmap_DebugAssert(t *testing.T) {
	debug.SetEnabled(true)
	defer debug.SetEnabled(false)

	b := New(8)

	assert.PanicsWithValue(t, "assertion failed: bitmap: bit 70 out of range", func() {
		b.Set(70)
	})
	assert.PanicsWithValue(t, "assertion failed: bitmap: bit 64 out of range", func() {
		b.Unset(64)
	})

	assert.NotPanics(t, func() { b.Set(63) }, "in-range bits should never trip the assertion")
}

func TestBitmap_Clear(t *testing.T) {
	b := New(16)
	b.Set(1)
	b.Set(9)

	b.Clear()

	assert.True(t, b.IsEmpty())
	assert.Equal(t, uint64(0), b.Flags())
	assert.Equal(t, 16, b.MaxBits(), "Clear should keep the tracked range")

	b.Set(9)
	assert.True(t, b.IsSet(9))
}
