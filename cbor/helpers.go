package cbor

// getType reports the Type of the item whose lead byte is b.
func getType(b byte) Type {
	switch getMajorType(b) {
	case majorTypeUint:
		return UintType
	case majorTypeBytes:
		return BytesType
	case majorTypeText:
		return TextType
	case majorTypeArray:
		return ArrayType
	case majorTypeMap:
		return MapType
	case majorTypeTag:
		return TagType
	case majorTypeSimple:
		switch getAddInfo(b) {
		case simpleTrue, simpleFalse:
			return BoolType
		}
	}
	return InvalidType
}

// NextType reports the Type of the next item in b without consuming it.
func NextType(b []byte) Type {
	if len(b) == 0 {
		return InvalidType
	}
	return getType(b[0])
}

// Require ensures b has room for n more bytes without reallocation,
// returning a slice sharing b's contents.
func Require(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}
