package cbor

import "strconv"

// Diagnostic renders v in an RFC-8949-flavored diagnostic notation,
// following the teacher runtime's DiagBytes helper: a programmatic way
// to inspect a value tree without a debugger, useful when a fountain
// part's header fails to parse.
func Diagnostic(v *Value) string {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	diagOne(bb, v)
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return string(out)
}

func diagOne(bb *ByteBuffer, v *Value) {
	if v == nil {
		bb.b = append(bb.b, "null"...)
		return
	}
	switch v.typ {
	case UintType:
		bb.b = append(bb.b, strconv.FormatUint(v.u, 10)...)
	case BytesType:
		bb.b = append(bb.b, "h'"...)
		bb.b = append(bb.b, HexEncode(v.bytes)...)
		bb.b = append(bb.b, '\'')
	case TextType:
		bb.b = append(bb.b, '"')
		bb.b = append(bb.b, v.text...)
		bb.b = append(bb.b, '"')
	case BoolType:
		if v.b {
			bb.b = append(bb.b, "true"...)
		} else {
			bb.b = append(bb.b, "false"...)
		}
	case ArrayType:
		bb.b = append(bb.b, '[')
		for i, item := range v.items {
			if i > 0 {
				bb.b = append(bb.b, ", "...)
			}
			diagOne(bb, item)
		}
		bb.b = append(bb.b, ']')
	case MapType:
		bb.b = append(bb.b, '{')
		for i, p := range v.pairs {
			if i > 0 {
				bb.b = append(bb.b, ", "...)
			}
			bb.b = append(bb.b, strconv.FormatUint(p.Key, 10)...)
			bb.b = append(bb.b, ": "...)
			diagOne(bb, p.Value)
		}
		bb.b = append(bb.b, '}')
	case TagType:
		bb.b = append(bb.b, strconv.FormatUint(v.tag, 10)...)
		bb.b = append(bb.b, '(')
		diagOne(bb, v.inner)
		bb.b = append(bb.b, ')')
	default:
		bb.b = append(bb.b, "<invalid>"...)
	}
}
