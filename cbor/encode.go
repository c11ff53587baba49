package cbor

// Encode produces the canonical byte sequence for v, using the shortest
// head encoding at every integer/length (spec §4.1). Encode is total
// over the supported subset: it never fails for a Value built through
// this package's constructors.
func Encode(v *Value) ([]byte, error) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	if err := appendValue(bb, v); err != nil {
		return nil, err
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out, nil
}

func appendValue(bb *ByteBuffer, v *Value) error {
	if v == nil {
		return ErrShortBytes
	}
	switch v.typ {
	case UintType:
		bb.AppendUint64(v.u)
	case BytesType:
		bb.AppendBytes(v.bytes)
	case TextType:
		bb.AppendString(v.text)
	case BoolType:
		bb.AppendBool(v.b)
	case ArrayType:
		bb.AppendArrayHeader(uint32(len(v.items)))
		for _, item := range v.items {
			if err := appendValue(bb, item); err != nil {
				return err
			}
		}
	case MapType:
		bb.AppendMapHeader(uint32(len(v.pairs)))
		for _, p := range v.pairs {
			bb.AppendUint64(p.Key)
			if err := appendValue(bb, p.Value); err != nil {
				return err
			}
		}
	case TagType:
		bb.AppendTag(v.tag)
		return appendValue(bb, v.inner)
	default:
		return ErrShortBytes
	}
	return nil
}
