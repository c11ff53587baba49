package cbor

const recursionLimit = 10000

// Decode parses the single CBOR item at the start of b and returns it
// along with any trailing bytes. Decode fails on anything outside the
// supported subset (negative integers, floats, indefinite-length items,
// non-integer map keys) rather than silently accepting it.
func Decode(b []byte) (*Value, []byte, error) {
	return decodeValue(b, 0)
}

func decodeValue(b []byte, depth int) (*Value, []byte, error) {
	if depth > recursionLimit {
		return nil, b, ErrShortBytes
	}
	if len(b) < 1 {
		return nil, b, ErrShortBytes
	}
	switch getMajorType(b[0]) {
	case majorTypeUint:
		u, o, err := readUintCore(b, majorTypeUint)
		if err != nil {
			return nil, b, err
		}
		return Uint(u), o, nil

	case majorTypeNegInt:
		return nil, b, ErrNegativeNotSupported

	case majorTypeBytes:
		bs, o, err := ReadBytesBytes(b, nil)
		if err != nil {
			return nil, b, err
		}
		return Bytes(bs), o, nil

	case majorTypeText:
		s, o, err := ReadStringBytes(b)
		if err != nil {
			return nil, b, err
		}
		return Text(s), o, nil

	case majorTypeArray:
		sz, o, err := ReadArrayHeaderBytes(b)
		if err != nil {
			return nil, b, err
		}
		items := make([]*Value, 0, sz)
		for i := uint32(0); i < sz; i++ {
			var item *Value
			item, o, err = decodeValue(o, depth+1)
			if err != nil {
				return nil, b, err
			}
			items = append(items, item)
		}
		return &Value{typ: ArrayType, items: items}, o, nil

	case majorTypeMap:
		sz, o, err := ReadMapHeaderBytes(b)
		if err != nil {
			return nil, b, err
		}
		pairs := make([]Pair, 0, sz)
		for i := uint32(0); i < sz; i++ {
			key, o2, err2 := readUintCore(o, majorTypeUint)
			if err2 != nil {
				return nil, b, ErrNonIntegerMapKey
			}
			o = o2
			var val *Value
			val, o, err = decodeValue(o, depth+1)
			if err != nil {
				return nil, b, err
			}
			pairs = append(pairs, Pair{Key: key, Value: val})
		}
		return &Value{typ: MapType, pairs: pairs}, o, nil

	case majorTypeTag:
		tag, o, err := readUintCore(b, majorTypeTag)
		if err != nil {
			return nil, b, err
		}
		inner, o2, err := decodeValue(o, depth+1)
		if err != nil {
			return nil, b, err
		}
		return Tag(tag, inner), o2, nil

	case majorTypeSimple:
		bv, o, err := ReadBoolBytes(b)
		if err != nil {
			return nil, b, err
		}
		return Bool(bv), o, nil

	default:
		return nil, b, ErrShortBytes
	}
}
