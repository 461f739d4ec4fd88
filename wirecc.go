// Package wirecc provides binary serialization primitives: a cursor-based
// byte buffer with typed big-endian operations, a packed flag bitmap, and
// pool generators for combination enumeration and random sampling.
//
// # Core Features
//
//   - Growable byte buffer with typed read/write of integers, booleans,
//     strings, identifier sets and nested buffers
//   - Big-endian wire format with 4-byte count prefixes for variable-size
//     values
//   - Pooled buffer storage for allocation-free reuse across messages
//   - 64-bit xxHash digests for cheap content comparison
//   - Flag bitmap tracking up to 64 bits with range masking
//   - Lexicographic k-of-n combination generation
//   - Uniform random sampling of map keys without replacement
//
// # Basic Usage
//
// Serializing and deserializing a message:
//
//	buf, _ := wirecc.NewBuffer()
//	defer buf.Release()
//
//	buf.WriteUint32(42)
//	buf.WriteString("payload")
//	buf.WriteSet(resource.NewSet(1, 2, 3))
//
//	// ship buf.Bytes(), then on the receiving side:
//
//	in, _ := wirecc.NewBufferFrom(received)
//	defer in.Release()
//
//	n, _ := in.ReadUint32()
//	s, _ := in.ReadString()
//	ids := resource.NewSet()
//	_ = in.ReadSet(ids)
//
// Enumerating combinations and sampling:
//
//	gen := wirecc.NewCombinations([]int{1, 2, 3, 4}, 2)
//	for combo := range gen.All() {
//	    fmt.Println(combo) // [3 4], [2 4], [2 3], [1 4], [1 3], [1 2]
//	}
//
//	sampler, _ := wirecc.NewSampler(workers)
//	for id := range sampler.All() {
//	    dispatch(workers[id])
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the buffer,
// bitmap and generator packages, simplifying the most common use cases. For
// advanced usage and fine-grained control, use those packages directly.
package wirecc

import (
	"cmp"

	"github.com/eliangidoni/wirecc/bitmap"
	"github.com/eliangidoni/wirecc/buffer"
	"github.com/eliangidoni/wirecc/generator"
	"github.com/eliangidoni/wirecc/internal/debug"
	"github.com/eliangidoni/wirecc/internal/hash"
)

// NewBuffer creates an empty serialization buffer with pooled backing
// storage.
//
// Parameters:
//   - opts: Optional configuration functions (see buffer.Option)
//
// Returns:
//   - *buffer.Buffer: The created buffer.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - buffer.WithCapacity(n)
//
// Example:
//
//	buf, err := wirecc.NewBuffer(buffer.WithCapacity(4096))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Release()
//
//	buf.WriteUint64(123)
//	buf.WriteString("hello")
func NewBuffer(opts ...buffer.Option) (*buffer.Buffer, error) {
	return buffer.New(opts...)
}

// NewBufferFrom creates a buffer loaded with a copy of data, with the cursor
// at position zero ready for reading.
//
// Parameters:
//   - data: The raw bytes to load (from Buffer.Bytes() or the network)
//   - opts: Optional configuration functions (see buffer.Option)
//
// Returns:
//   - *buffer.Buffer: The created buffer.
//   - error: An error if the configuration is invalid.
//
// Example:
//
//	in, err := wirecc.NewBufferFrom(received)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer in.Release()
//
//	header, err := in.ReadUint32()
func NewBufferFrom(data []byte, opts ...buffer.Option) (*buffer.Buffer, error) {
	return buffer.From(data, opts...)
}

// NewBitmap creates a flag bitmap tracking maxBits flags, numbered 0 through
// maxBits-1. Ranges wider than bitmap.MaxBits (64) are clamped.
//
// Example:
//
//	ready := wirecc.NewBitmap(8)
//	ready.Set(3)
//	if ready.IsFull() {
//	    // all eight flags are on
//	}
func NewBitmap(maxBits uint8) bitmap.Bitmap {
	return bitmap.New(maxBits)
}

// NewCombinations creates a generator over the k-element combinations of
// pool, yielded in a fixed lexicographic order.
//
// Parameters:
//   - pool: The elements to choose from
//   - k: The combination size
//
// Returns:
//   - *generator.Combinations[T]: The generator, positioned before the
//     first combination.
//
// Example:
//
//	gen := wirecc.NewCombinations([]string{"a", "b", "c"}, 2)
//	for gen.HasNext() {
//	    combo, _ := gen.Next()
//	    fmt.Println(combo)
//	}
func NewCombinations[T any](pool []T, k int) *generator.Combinations[T] {
	return generator.NewCombinations(pool, k)
}

// NewSampler creates a sampler that draws the keys of pool uniformly at
// random without replacement. After a full pass Next fails with
// errs.ErrExhausted until Reset starts a new pass.
//
// Parameters:
//   - pool: The map whose keys are sampled; held by reference
//   - opts: Optional configuration functions (see generator.SamplerOption)
//
// Returns:
//   - *generator.Sampler[K, V]: The created sampler.
//   - error: An error if the configuration is invalid.
//
// Example:
//
//	sampler, err := wirecc.NewSampler(sessions)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for id := range sampler.All() {
//	    audit(sessions[id])
//	}
func NewSampler[K cmp.Ordered, V any](pool map[K]V, opts ...generator.SamplerOption) (*generator.Sampler[K, V], error) {
	return generator.NewSampler(pool, opts...)
}

// Sum64 returns the 64-bit xxHash digest of data.
//
// The digest is deterministic and collision-resistant, suitable for content
// comparison and deduplication of serialized messages. It matches
// Buffer.Sum64 over the same bytes.
//
// Example:
//
//	if wirecc.Sum64(a.Bytes()) == wirecc.Sum64(b.Bytes()) {
//	    // contents almost certainly identical
//	}
func Sum64(data []byte) uint64 {
	return hash.Sum64(data)
}

// SetDebug toggles runtime assertions across the library.
//
// With assertions enabled, misuse that is silently ignored in normal
// operation panics instead: setting a bitmap flag at or beyond
// bitmap.MaxBits, or creating a combination generator with a negative size.
// Enable during development and testing, leave off in production.
//
// The setting is global and safe to change from any goroutine.
func SetDebug(enabled bool) {
	debug.SetEnabled(enabled)
}
