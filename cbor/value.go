package cbor

// Type identifies the kind of value a Value node holds.
type Type byte

const (
	InvalidType Type = iota
	UintType
	BytesType
	TextType
	ArrayType
	MapType
	TagType
	BoolType
)

func (t Type) String() string {
	switch t {
	case UintType:
		return "uint"
	case BytesType:
		return "bytes"
	case TextType:
		return "text"
	case ArrayType:
		return "array"
	case MapType:
		return "map"
	case TagType:
		return "tag"
	case BoolType:
		return "bool"
	default:
		return "invalid"
	}
}

// Pair is one key/value entry of a Map value. Keys in this subset are
// always small unsigned integers (spec §4.1: "keys used by this system
// are always small unsigned integers").
type Pair struct {
	Key   uint64
	Value *Value
}

// Value is a node of the CBOR value tree this substrate can hold: an
// unsigned integer, a byte string, a text string, an array, an
// integer-keyed map, a tagged value, or a boolean.
type Value struct {
	typ   Type
	u     uint64
	bytes []byte
	text  string
	items []*Value
	pairs []Pair
	tag   uint64
	inner *Value
	b     bool
}

func Uint(u uint64) *Value         { return &Value{typ: UintType, u: u} }
func Bytes(b []byte) *Value        { return &Value{typ: BytesType, bytes: b} }
func Text(s string) *Value         { return &Value{typ: TextType, text: s} }
func Array(items ...*Value) *Value { return &Value{typ: ArrayType, items: items} }
func Bool(b bool) *Value           { return &Value{typ: BoolType, b: b} }
func Tag(tag uint64, inner *Value) *Value {
	return &Value{typ: TagType, tag: tag, inner: inner}
}

// Map constructs a map value from the given key/value pairs, in the
// order given (this subset does not require canonical map-key ordering
// since the only maps the fountain/UR core produces have ≤10 entries
// with keys chosen by the caller, per spec §4.1).
func Map(pairs ...Pair) *Value {
	return &Value{typ: MapType, pairs: pairs}
}

func (v *Value) Type() Type { return v.typ }

func (v *Value) AsUint() (uint64, bool) {
	if v.typ != UintType {
		return 0, false
	}
	return v.u, true
}

func (v *Value) AsBytes() ([]byte, bool) {
	if v.typ != BytesType {
		return nil, false
	}
	return v.bytes, true
}

func (v *Value) AsText() (string, bool) {
	if v.typ != TextType {
		return "", false
	}
	return v.text, true
}

func (v *Value) AsArray() ([]*Value, bool) {
	if v.typ != ArrayType {
		return nil, false
	}
	return v.items, true
}

func (v *Value) AsMap() ([]Pair, bool) {
	if v.typ != MapType {
		return nil, false
	}
	return v.pairs, true
}

func (v *Value) AsTag() (uint64, *Value, bool) {
	if v.typ != TagType {
		return 0, nil, false
	}
	return v.tag, v.inner, true
}

func (v *Value) AsBool() (bool, bool) {
	if v.typ != BoolType {
		return false, false
	}
	return v.b, true
}

// MapGet performs a linear lookup of key in a map value. Acceptable
// because the maps this system builds are tiny (spec §4.1: "the maps
// in the core are tiny (≤10 entries)").
func MapGet(pairs []Pair, key uint64) (*Value, bool) {
	for _, p := range pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Equal reports deep structural equality between two values.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case UintType:
		return a.u == b.u
	case BytesType:
		return string(a.bytes) == string(b.bytes)
	case TextType:
		return a.text == b.text
	case BoolType:
		return a.b == b.b
	case TagType:
		return a.tag == b.tag && Equal(a.inner, b.inner)
	case ArrayType:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case MapType:
		if len(a.pairs) != len(b.pairs) {
			return false
		}
		for _, pa := range a.pairs {
			pb, ok := MapGet(b.pairs, pa.Key)
			if !ok || !Equal(pa.Value, pb) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
