// Package cbor implements the minimal structural CBOR subset this module
// needs as a serialization substrate: unsigned integers, byte and text
// strings, arrays, maps keyed by small unsigned integers, tagged values,
// and booleans. Negative integers, floats, indefinite-length items, and
// non-integer map keys are not required by the fountain/UR core above it
// and are rejected rather than silently accepted.
package cbor

// CBOR major types (3 bits), RFC 8949 §3.
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer (rejected on decode, not emitted)
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // simple values / booleans
)

// Additional info values (5 bits).
const (
	addInfoDirect     = 23 // max value packed directly into the initial byte
	addInfoUint8      = 24
	addInfoUint16     = 25
	addInfoUint32     = 26
	addInfoUint64     = 27
	addInfoIndefinite = 31 // indefinite length; not supported by this subset
)

// Simple values under major type 7 that this subset recognizes.
const (
	simpleFalse = 20
	simpleTrue  = 21
)

func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

func getAddInfo(b byte) uint8 {
	return b & 0x1f
}
