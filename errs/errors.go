// Package errs defines the sentinel errors shared across wirecc packages.
//
// Call sites wrap these values with additional context using
// fmt.Errorf("%w: ...", ...), so callers should match them with errors.Is
// rather than comparing wrapped errors directly.
package errs

import "errors"

var (
	// ErrShortBuffer indicates a read that would pass the end of a buffer's
	// content, either because the stream is truncated or because the cursor
	// was repositioned out of range.
	ErrShortBuffer = errors.New("short buffer")

	// ErrLengthOverflow indicates a length-prefixed value whose size does
	// not fit in the 4-byte unsigned count used on the wire.
	ErrLengthOverflow = errors.New("length overflows 32-bit count")

	// ErrExhausted indicates a generator pass has produced its final
	// element. Combination generators stay exhausted; samplers accept a
	// Reset to begin a new pass.
	ErrExhausted = errors.New("generator exhausted")

	// ErrEmptyPool indicates a draw from a pool that has no keys.
	ErrEmptyPool = errors.New("empty pool")

	// ErrNilSource indicates a nil random source passed to a sampler.
	ErrNilSource = errors.New("nil random source")

	// ErrInvalidCapacity indicates a negative buffer capacity hint.
	ErrInvalidCapacity = errors.New("invalid capacity")
)
