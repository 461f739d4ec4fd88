// Package buffer implements a growable byte buffer with a read cursor and
// typed big-endian read/write operations.
//
// A Buffer is the unit of serialization in wirecc: callers write primitives,
// strings, identifier sets and nested buffers into it, ship the resulting
// bytes, and read them back field by field on the other side.
//
// # Wire Format
//
// All multi-byte values are encoded big-endian (network byte order):
//
//	Value          | Encoding
//	---------------|----------------------------------------------------------
//	uint16         | 2 bytes, big-endian
//	uint32         | 4 bytes, big-endian
//	uint64         | 8 bytes, big-endian
//	int32          | 4 bytes, big-endian, two's complement
//	bool           | 1 byte, 0x00 = false, anything else = true
//	string         | uint32 byte count, then the raw bytes (no terminator)
//	identifier set | uint32 element count, then each ID as int32, ascending
//	nested buffer  | uint32 byte count, then the nested buffer's full content
//
// Variable-length values carry a 4-byte count prefix, so a single string,
// set or nested buffer is limited to 2^32-1 bytes or elements. Writes that
// would exceed the limit fail with errs.ErrLengthOverflow.
//
// # Cursor Model
//
// A Buffer has a single cursor shared by reads and writes. Writes always
// append at the end of the content and advance the cursor by the number of
// bytes written. Reads consume bytes at the cursor and advance it past them.
// SetPos repositions the cursor, which is how callers rewind to read back
// what they wrote:
//
//	buf, _ := buffer.New()
//	buf.WriteUint32(42)
//	buf.WriteString("hello")
//
//	buf.SetPos(0)
//	n, _ := buf.ReadUint32()   // 42
//	s, _ := buf.ReadString()   // "hello"
//
// # Error Handling
//
// Reads that run past the end of the content fail with errs.ErrShortBuffer
// and leave the cursor where it was, so a failed read can be retried after
// more data arrives:
//
//	v, err := buf.ReadUint64()
//	if errors.Is(err, errs.ErrShortBuffer) {
//	    // cursor unchanged, load more data and retry
//	}
//
// Composite reads (ReadString, ReadSet, ReadBuffer) are atomic in the same
// sense: if the count prefix decodes but the payload is truncated, the
// cursor is restored to the position before the count prefix.
//
// Fixed-width writes cannot fail and return nothing. Length-prefixed writes
// return an error only for the 2^32-1 overflow case.
//
// # Memory Management
//
// Buffers draw their backing storage from an internal pool. Call Release
// when done with a Buffer to return the storage for reuse; the Buffer
// remains usable afterwards and will acquire fresh storage on the next
// write. The zero value of Buffer is also ready to use.
//
// # Thread Safety
//
// A Buffer is not safe for concurrent use. Use one Buffer per goroutine, or
// serialize access externally.
package buffer
