package cbor

import (
	"encoding/binary"
	"math"
)

// ensure grows b so that sz more bytes can be appended without a second
// reallocation, mirroring the teacher runtime's exponential-growth helper.
func ensure(b []byte, sz int) ([]byte, int) {
	l := len(b)
	c := cap(b)
	if c-l < sz {
		o := make([]byte, (2*c)+sz)
		n := copy(o, b)
		return o[:n+sz], n
	}
	return b[:l+sz], l
}

// appendUintCore appends an unsigned integer with the given major type
// using the shortest form that can hold it.
func appendUintCore(b []byte, majorType uint8, u uint64) []byte {
	switch {
	case u <= addInfoDirect:
		return append(b, makeByte(majorType, uint8(u)))
	case u <= math.MaxUint8:
		o, n := ensure(b, 2)
		o[n] = makeByte(majorType, addInfoUint8)
		o[n+1] = uint8(u)
		return o
	case u <= math.MaxUint16:
		o, n := ensure(b, 3)
		o[n] = makeByte(majorType, addInfoUint16)
		binary.BigEndian.PutUint16(o[n+1:], uint16(u))
		return o
	case u <= math.MaxUint32:
		o, n := ensure(b, 5)
		o[n] = makeByte(majorType, addInfoUint32)
		binary.BigEndian.PutUint32(o[n+1:], uint32(u))
		return o
	default:
		o, n := ensure(b, 9)
		o[n] = makeByte(majorType, addInfoUint64)
		binary.BigEndian.PutUint64(o[n+1:], u)
		return o
	}
}

// AppendUint64 appends an unsigned integer (major type 0) in shortest form.
func AppendUint64(b []byte, u uint64) []byte {
	return appendUintCore(b, majorTypeUint, u)
}

// AppendTag appends a semantic tag header (major type 6). The tagged
// content must be appended immediately afterward by the caller.
func AppendTag(b []byte, tag uint64) []byte {
	return appendUintCore(b, majorTypeTag, tag)
}

// AppendArrayHeader appends an array header (major type 4) of size sz.
func AppendArrayHeader(b []byte, sz uint32) []byte {
	return appendUintCore(b, majorTypeArray, uint64(sz))
}

// AppendMapHeader appends a map header (major type 5) of size sz
// (sz key/value pairs).
func AppendMapHeader(b []byte, sz uint32) []byte {
	return appendUintCore(b, majorTypeMap, uint64(sz))
}

// AppendBytes appends a byte string (major type 2).
func AppendBytes(b []byte, data []byte) []byte {
	b = appendUintCore(b, majorTypeBytes, uint64(len(data)))
	return append(b, data...)
}

// AppendString appends a UTF-8 text string (major type 3).
func AppendString(b []byte, s string) []byte {
	b = appendUintCore(b, majorTypeText, uint64(len(s)))
	return append(b, s...)
}

// AppendBool appends a boolean simple value (major type 7).
func AppendBool(b []byte, v bool) []byte {
	if v {
		return append(b, makeByte(majorTypeSimple, simpleTrue))
	}
	return append(b, makeByte(majorTypeSimple, simpleFalse))
}
