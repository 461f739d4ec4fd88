package buffer

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/eliangidoni/wirecc/endian"
	"github.com/eliangidoni/wirecc/errs"
	"github.com/eliangidoni/wirecc/internal/hash"
	"github.com/eliangidoni/wirecc/internal/options"
	"github.com/eliangidoni/wirecc/internal/pool"
	"github.com/eliangidoni/wirecc/resource"
)

// wireEngine encodes and decodes all fixed-width values. The wire format is
// big-endian only.
var wireEngine = endian.GetBigEndianEngine()

// Buffer is a growable byte buffer with a cursor and typed read/write
// operations. See the package documentation for the wire format and cursor
// model.
//
// The zero value is an empty buffer ready for use. Buffers created with New
// or From draw pooled backing storage, which Release returns for reuse.
type Buffer struct {
	store *pool.ByteBuffer
	pos   int
}

// New creates an empty buffer with pooled backing storage.
//
// Parameters:
//   - opts: optional configuration (e.g. WithCapacity)
//
// Returns:
//   - *Buffer: the new buffer
//   - error: nil on success, or the first option error
//
// Example:
//
//	buf, err := buffer.New(buffer.WithCapacity(4096))
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
func New(opts ...Option) (*Buffer, error) {
	b := &Buffer{store: pool.GetWireBuffer()}
	if err := options.Apply(b, opts...); err != nil {
		pool.PutWireBuffer(b.store)

		return nil, err
	}

	return b, nil
}

// From creates a buffer whose content is a copy of data, with the cursor at
// position zero ready for reading.
//
// Parameters:
//   - data: the bytes to load; the buffer does not alias data
//   - opts: optional configuration (e.g. WithCapacity)
//
// Returns:
//   - *Buffer: the new buffer
//   - error: nil on success, or the first option error
func From(data []byte, opts ...Option) (*Buffer, error) {
	b, err := New(opts...)
	if err != nil {
		return nil, err
	}
	b.Load(data)

	return b, nil
}

// ensure lazily acquires backing storage so the zero value works.
func (b *Buffer) ensure() {
	if b.store == nil {
		b.store = pool.GetWireBuffer()
	}
}

// window extends the content by n bytes and returns the newly added region.
// The region may contain stale bytes and must be fully overwritten.
func (b *Buffer) window(n int) []byte {
	start := b.store.Len()
	b.store.ExtendOrGrow(n)

	return b.store.Slice(start, start+n)
}

// readable reports whether n bytes can be consumed at the cursor.
func (b *Buffer) readable(n int) error {
	if b.pos >= 0 && n <= b.Len()-b.pos {
		return nil
	}

	return fmt.Errorf("%w: need %d bytes at position %d of %d", errs.ErrShortBuffer, n, b.pos, b.Len())
}

// Load replaces the buffer content with a copy of data and rewinds the
// cursor to position zero. Existing content is discarded.
func (b *Buffer) Load(data []byte) {
	b.ensure()
	b.store.Reset()
	b.store.MustWrite(data)
	b.pos = 0
}

// Concat appends a copy of data to the end of the content and advances the
// cursor by len(data). Unlike Load, existing content is preserved.
func (b *Buffer) Concat(data []byte) {
	b.ensure()
	b.store.MustWrite(data)
	b.pos += len(data)
}

// Reset discards the content and rewinds the cursor. The backing storage is
// retained for reuse.
func (b *Buffer) Reset() {
	if b.store != nil {
		b.store.Reset()
	}
	b.pos = 0
}

// Release returns the backing storage to the pool and rewinds the cursor.
// The buffer remains usable and acquires fresh storage on the next write.
//
// Do not retain slices obtained from Bytes across a Release.
func (b *Buffer) Release() {
	if b.store == nil {
		return
	}
	pool.PutWireBuffer(b.store)
	b.store = nil
	b.pos = 0
}

// Bytes returns the buffer content. The slice aliases the buffer's internal
// storage and is valid until the next write, Reset or Release.
func (b *Buffer) Bytes() []byte {
	if b.store == nil {
		return nil
	}

	return b.store.Bytes()
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	if b.store == nil {
		return 0
	}

	return b.store.Len()
}

// Cap returns the capacity of the backing storage.
func (b *Buffer) Cap() int {
	if b.store == nil {
		return 0
	}

	return b.store.Cap()
}

// Pos returns the cursor position.
func (b *Buffer) Pos() int {
	return b.pos
}

// SetPos moves the cursor to pos. The position is not validated here; a
// subsequent read past the content fails with errs.ErrShortBuffer.
func (b *Buffer) SetPos(pos int) {
	b.pos = pos
}

// Sum64 returns the 64-bit xxHash digest of the content. The digest depends
// only on the content, not on the cursor position.
func (b *Buffer) Sum64() uint64 {
	return hash.Sum64(b.Bytes())
}

// WriteUint64 appends v as 8 big-endian bytes.
func (b *Buffer) WriteUint64(v uint64) {
	b.ensure()
	wireEngine.PutUint64(b.window(8), v)
	b.pos += 8
}

// WriteUint32 appends v as 4 big-endian bytes.
func (b *Buffer) WriteUint32(v uint32) {
	b.ensure()
	wireEngine.PutUint32(b.window(4), v)
	b.pos += 4
}

// WriteUint16 appends v as 2 big-endian bytes.
func (b *Buffer) WriteUint16(v uint16) {
	b.ensure()
	wireEngine.PutUint16(b.window(2), v)
	b.pos += 2
}

// WriteInt32 appends v as 4 big-endian bytes in two's complement.
func (b *Buffer) WriteInt32(v int32) {
	b.WriteUint32(uint32(v))
}

// WriteBool appends v as a single byte, 0x01 for true and 0x00 for false.
func (b *Buffer) WriteBool(v bool) {
	b.ensure()
	dst := b.window(1)
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
	b.pos++
}

// WriteString appends s as a 4-byte big-endian byte count followed by the
// raw bytes of s. The empty string encodes as a zero count and no payload.
//
// Returns errs.ErrLengthOverflow if s exceeds 2^32-1 bytes; nothing is
// written in that case.
func (b *Buffer) WriteString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return fmt.Errorf("%w: string length %d", errs.ErrLengthOverflow, len(s))
	}
	b.ensure()
	b.WriteUint32(uint32(len(s)))
	copy(b.window(len(s)), s)
	b.pos += len(s)

	return nil
}

// WriteCString appends v as a length-prefixed string, stopping at the first
// NUL byte if one is present. The NUL itself is not written. Use this for
// fixed-size fields that carry C-style terminated strings.
func (b *Buffer) WriteCString(v []byte) error {
	if i := bytes.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}

	return b.writeBytes(v)
}

// WriteSet appends s as a 4-byte big-endian element count followed by each
// identifier as a 4-byte big-endian signed integer, in ascending order. A
// nil or empty set encodes as a zero count.
//
// Returns errs.ErrLengthOverflow if the set exceeds 2^32-1 elements.
func (b *Buffer) WriteSet(s *resource.Set) error {
	ids := s.Values()
	if uint64(len(ids)) > math.MaxUint32 {
		return fmt.Errorf("%w: set size %d", errs.ErrLengthOverflow, len(ids))
	}
	b.ensure()
	b.WriteUint32(uint32(len(ids)))
	for _, id := range ids {
		b.WriteInt32(int32(id))
	}

	return nil
}

// WriteBuffer appends other's full content as a 4-byte big-endian byte count
// followed by the content itself. The cursor position of other does not
// matter; the entire content is written.
//
// Returns errs.ErrLengthOverflow if other exceeds 2^32-1 bytes.
func (b *Buffer) WriteBuffer(other *Buffer) error {
	return b.writeBytes(other.Bytes())
}

// writeBytes appends p as a 4-byte count prefix plus payload.
func (b *Buffer) writeBytes(p []byte) error {
	if uint64(len(p)) > math.MaxUint32 {
		return fmt.Errorf("%w: payload length %d", errs.ErrLengthOverflow, len(p))
	}
	b.ensure()
	b.WriteUint32(uint32(len(p)))
	copy(b.window(len(p)), p)
	b.pos += len(p)

	return nil
}

// ReadUint64 consumes 8 bytes at the cursor and returns them as a big-endian
// uint64.
//
// Returns errs.ErrShortBuffer without moving the cursor if fewer than 8
// bytes remain.
func (b *Buffer) ReadUint64() (uint64, error) {
	if err := b.readable(8); err != nil {
		return 0, err
	}
	v := wireEngine.Uint64(b.store.Slice(b.pos, b.pos+8))
	b.pos += 8

	return v, nil
}

// ReadUint32 consumes 4 bytes at the cursor and returns them as a big-endian
// uint32.
//
// Returns errs.ErrShortBuffer without moving the cursor if fewer than 4
// bytes remain.
func (b *Buffer) ReadUint32() (uint32, error) {
	if err := b.readable(4); err != nil {
		return 0, err
	}
	v := wireEngine.Uint32(b.store.Slice(b.pos, b.pos+4))
	b.pos += 4

	return v, nil
}

// ReadUint16 consumes 2 bytes at the cursor and returns them as a big-endian
// uint16.
//
// Returns errs.ErrShortBuffer without moving the cursor if fewer than 2
// bytes remain.
func (b *Buffer) ReadUint16() (uint16, error) {
	if err := b.readable(2); err != nil {
		return 0, err
	}
	v := wireEngine.Uint16(b.store.Slice(b.pos, b.pos+2))
	b.pos += 2

	return v, nil
}

// ReadInt32 consumes 4 bytes at the cursor and returns them as a big-endian
// signed 32-bit integer.
//
// Returns errs.ErrShortBuffer without moving the cursor if fewer than 4
// bytes remain.
func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()

	return int32(v), err
}

// ReadBool consumes 1 byte at the cursor. Zero decodes as false, any other
// value as true.
//
// Returns errs.ErrShortBuffer without moving the cursor if no bytes remain.
func (b *Buffer) ReadBool() (bool, error) {
	if err := b.readable(1); err != nil {
		return false, err
	}
	v := b.store.B[b.pos]
	b.pos++

	return v != 0, nil
}

// ReadString consumes a 4-byte count prefix and that many payload bytes at
// the cursor, returning the payload as a string.
//
// Returns errs.ErrShortBuffer if the prefix or the payload is truncated. On
// failure the cursor stays at the position before the count prefix.
func (b *Buffer) ReadString() (string, error) {
	start := b.pos
	count, err := b.ReadUint32()
	if err != nil {
		return "", err
	}
	if int64(count) > int64(b.Len()-b.pos) {
		b.pos = start

		return "", fmt.Errorf("%w: need %d bytes for string at position %d of %d",
			errs.ErrShortBuffer, count, start, b.Len())
	}
	s := string(b.store.Slice(b.pos, b.pos+int(count)))
	b.pos += int(count)

	return s, nil
}

// ReadSet consumes a 4-byte element count and that many 4-byte identifiers
// at the cursor, adding each to dst. Identifiers already in dst are kept, so
// consecutive ReadSet calls accumulate.
//
// Parameters:
//   - dst: the set to add decoded identifiers to; must not be nil
//
// Returns:
//   - error: nil on success, or errs.ErrShortBuffer if the prefix or any
//     element is truncated. On failure dst is untouched and the cursor stays
//     at the position before the count prefix.
func (b *Buffer) ReadSet(dst *resource.Set) error {
	start := b.pos
	count, err := b.ReadUint32()
	if err != nil {
		return err
	}
	need := int64(count) * 4
	if need > int64(b.Len()-b.pos) {
		b.pos = start

		return fmt.Errorf("%w: need %d bytes for %d set entries at position %d of %d",
			errs.ErrShortBuffer, need, count, start, b.Len())
	}
	for range count {
		v, _ := b.ReadUint32()
		dst.Add(resource.ID(int32(v)))
	}

	return nil
}

// ReadBuffer consumes a 4-byte byte count and that many payload bytes at the
// cursor, loading the payload into dst. Existing content of dst is replaced
// and dst's cursor rewinds to position zero.
//
// Parameters:
//   - dst: the buffer to load the payload into; must not be nil
//
// Returns:
//   - error: nil on success, or errs.ErrShortBuffer if the prefix or the
//     payload is truncated. On failure dst is untouched and the cursor stays
//     at the position before the count prefix.
func (b *Buffer) ReadBuffer(dst *Buffer) error {
	start := b.pos
	count, err := b.ReadUint32()
	if err != nil {
		return err
	}
	if int64(count) > int64(b.Len()-b.pos) {
		b.pos = start

		return fmt.Errorf("%w: need %d bytes for nested buffer at position %d of %d",
			errs.ErrShortBuffer, count, start, b.Len())
	}
	dst.Load(b.store.Slice(b.pos, b.pos+int(count)))
	b.pos += int(count)

	return nil
}

// Write appends a copy of p and advances the cursor, implementing io.Writer.
// It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Concat(p)

	return len(p), nil
}

// WriteTo writes the full content to w, implementing io.WriterTo. The cursor
// does not move.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.store == nil {
		return 0, nil
	}

	return b.store.WriteTo(w)
}
