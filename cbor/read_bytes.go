package cbor

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

var be = binary.BigEndian

// readUintCore reads an unsigned integer with the given expected major
// type and returns it along with the remaining bytes.
func readUintCore(b []byte, expectedMajor uint8) (uint64, []byte, error) {
	if len(b) < 1 {
		return 0, b, ErrShortBytes
	}

	major := getMajorType(b[0])
	if major != expectedMajor {
		if major == majorTypeNegInt {
			return 0, b, ErrNegativeNotSupported
		}
		return 0, b, badPrefix(major, expectedMajor)
	}

	addInfo := getAddInfo(b[0])
	switch {
	case addInfo <= addInfoDirect:
		return uint64(addInfo), b[1:], nil
	case addInfo == addInfoUint8:
		if len(b) < 2 {
			return 0, b, ErrShortBytes
		}
		u := uint64(b[1])
		if u <= addInfoDirect {
			return 0, b, ErrNonCanonicalLength
		}
		return u, b[2:], nil
	case addInfo == addInfoUint16:
		if len(b) < 3 {
			return 0, b, ErrShortBytes
		}
		u := uint64(be.Uint16(b[1:]))
		if u <= math.MaxUint8 {
			return 0, b, ErrNonCanonicalLength
		}
		return u, b[3:], nil
	case addInfo == addInfoUint32:
		if len(b) < 5 {
			return 0, b, ErrShortBytes
		}
		u := uint64(be.Uint32(b[1:]))
		if u <= math.MaxUint16 {
			return 0, b, ErrNonCanonicalLength
		}
		return u, b[5:], nil
	case addInfo == addInfoUint64:
		if len(b) < 9 {
			return 0, b, ErrShortBytes
		}
		u := be.Uint64(b[1:])
		if u <= math.MaxUint32 {
			return 0, b, ErrNonCanonicalLength
		}
		return u, b[9:], nil
	case addInfo == addInfoIndefinite && expectedMajor != majorTypeTag:
		return 0, b, ErrIndefiniteNotSupported
	default:
		return 0, b, ErrShortBytes
	}
}

// ReadUint64Bytes reads an unsigned integer (major type 0).
func ReadUint64Bytes(b []byte) (uint64, []byte, error) {
	return readUintCore(b, majorTypeUint)
}

// ReadUint32Bytes reads an unsigned integer that must fit in 32 bits.
func ReadUint32Bytes(b []byte) (uint32, []byte, error) {
	u, o, err := readUintCore(b, majorTypeUint)
	if err != nil {
		return 0, b, err
	}
	if u > math.MaxUint32 {
		return 0, b, ErrIntOverflow
	}
	return uint32(u), o, nil
}

// ReadTagBytes reads a semantic tag header (major type 6). The caller
// must separately read the tagged content that follows.
func ReadTagBytes(b []byte) (uint64, []byte, error) {
	return readUintCore(b, majorTypeTag)
}

// ReadArrayHeaderBytes reads an array header (major type 4).
func ReadArrayHeaderBytes(b []byte) (uint32, []byte, error) {
	u, o, err := readUintCore(b, majorTypeArray)
	if err != nil {
		return 0, b, err
	}
	if u > math.MaxUint32 {
		return 0, b, ErrShortBytes
	}
	return uint32(u), o, nil
}

// ReadMapHeaderBytes reads a map header (major type 5), returning the
// number of key/value pairs.
func ReadMapHeaderBytes(b []byte) (uint32, []byte, error) {
	u, o, err := readUintCore(b, majorTypeMap)
	if err != nil {
		return 0, b, err
	}
	if u > math.MaxUint32 {
		return 0, b, ErrShortBytes
	}
	return uint32(u), o, nil
}

// ReadBytesBytes reads a byte string (major type 2). If scratch has
// enough capacity it is reused; otherwise a new slice is allocated.
func ReadBytesBytes(b []byte, scratch []byte) ([]byte, []byte, error) {
	sz, o, err := readUintCore(b, majorTypeBytes)
	if err != nil {
		return nil, b, err
	}
	if uint64(len(o)) < sz {
		return nil, b, ErrShortBytes
	}
	var v []byte
	if uint64(cap(scratch)) >= sz {
		v = scratch[:sz]
	} else {
		v = make([]byte, sz)
	}
	copy(v, o[:sz])
	return v, o[sz:], nil
}

// ReadStringBytes reads a UTF-8 text string (major type 3).
func ReadStringBytes(b []byte) (string, []byte, error) {
	sz, o, err := readUintCore(b, majorTypeText)
	if err != nil {
		return "", b, err
	}
	if uint64(len(o)) < sz {
		return "", b, ErrShortBytes
	}
	s := o[:sz]
	if !utf8.Valid(s) {
		return "", b, ErrInvalidUTF8
	}
	return string(s), o[sz:], nil
}

// ReadBoolBytes reads a boolean simple value (major type 7).
func ReadBoolBytes(b []byte) (bool, []byte, error) {
	if len(b) < 1 {
		return false, b, ErrShortBytes
	}
	if getMajorType(b[0]) != majorTypeSimple {
		return false, b, badPrefix(getMajorType(b[0]), majorTypeSimple)
	}
	switch getAddInfo(b[0]) {
	case simpleTrue:
		return true, b[1:], nil
	case simpleFalse:
		return false, b[1:], nil
	case 25, 26, 27:
		return false, b, ErrFloatNotSupported
	default:
		return false, b, ErrShortBytes
	}
}

// Skip skips over the next well-formed CBOR item in this subset and
// returns the remaining bytes.
func Skip(b []byte) ([]byte, error) {
	if len(b) < 1 {
		return b, ErrShortBytes
	}
	switch getMajorType(b[0]) {
	case majorTypeUint:
		_, o, err := readUintCore(b, majorTypeUint)
		return o, err
	case majorTypeNegInt:
		return b, ErrNegativeNotSupported
	case majorTypeBytes:
		_, o, err := ReadBytesBytes(b, nil)
		return o, err
	case majorTypeText:
		_, o, err := ReadStringBytes(b)
		return o, err
	case majorTypeArray:
		sz, o, err := ReadArrayHeaderBytes(b)
		if err != nil {
			return b, err
		}
		for i := uint32(0); i < sz; i++ {
			o, err = Skip(o)
			if err != nil {
				return b, err
			}
		}
		return o, nil
	case majorTypeMap:
		sz, o, err := ReadMapHeaderBytes(b)
		if err != nil {
			return b, err
		}
		for i := uint32(0); i < sz; i++ {
			o, err = Skip(o)
			if err != nil {
				return b, err
			}
			o, err = Skip(o)
			if err != nil {
				return b, err
			}
		}
		return o, nil
	case majorTypeTag:
		_, o, err := readUintCore(b, majorTypeTag)
		if err != nil {
			return b, err
		}
		return Skip(o)
	case majorTypeSimple:
		_, o, err := ReadBoolBytes(b)
		return o, err
	default:
		return b, ErrShortBytes
	}
}
