package cbor

import "sync"

// ByteBuffer is a growable byte buffer under our control, pooled to keep
// the fountain encoder's per-part CBOR framing allocation-light. This
// mirrors the teacher runtime's ByteBuffer, trimmed to the Append
// variants this subset supports.
type ByteBuffer struct {
	b []byte
}

var bbPool = sync.Pool{New: func() any { return &ByteBuffer{b: make([]byte, 0, 256)} }}

// GetByteBuffer obtains a pooled, zero-length ByteBuffer.
func GetByteBuffer() *ByteBuffer {
	bb := bbPool.Get().(*ByteBuffer)
	bb.Reset()
	return bb
}

// PutByteBuffer returns bb to the pool.
func PutByteBuffer(bb *ByteBuffer) { bb.Reset(); bbPool.Put(bb) }

// Bytes returns the accumulated bytes.
func (bb *ByteBuffer) Bytes() []byte { return bb.b }

// Len returns the current length.
func (bb *ByteBuffer) Len() int { return len(bb.b) }

// Reset truncates the buffer to zero length without releasing capacity.
func (bb *ByteBuffer) Reset() { bb.b = bb.b[:0] }

func (bb *ByteBuffer) AppendArrayHeader(sz uint32) *ByteBuffer {
	bb.b = AppendArrayHeader(bb.b, sz)
	return bb
}

func (bb *ByteBuffer) AppendMapHeader(sz uint32) *ByteBuffer {
	bb.b = AppendMapHeader(bb.b, sz)
	return bb
}

func (bb *ByteBuffer) AppendUint64(u uint64) *ByteBuffer {
	bb.b = AppendUint64(bb.b, u)
	return bb
}

func (bb *ByteBuffer) AppendBytes(data []byte) *ByteBuffer {
	bb.b = AppendBytes(bb.b, data)
	return bb
}

func (bb *ByteBuffer) AppendString(s string) *ByteBuffer {
	bb.b = AppendString(bb.b, s)
	return bb
}

func (bb *ByteBuffer) AppendBool(v bool) *ByteBuffer {
	bb.b = AppendBool(bb.b, v)
	return bb
}

func (bb *ByteBuffer) AppendTag(tag uint64) *ByteBuffer {
	bb.b = AppendTag(bb.b, tag)
	return bb
}
