package cbor

import (
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
)

// Cross-validates this package's hand-rolled encoder against
// github.com/fxamacker/cbor/v2, an independent, widely used CBOR
// implementation, for every value this subset can produce. This is the
// ambient test-tooling role SPEC_FULL.md assigns to fxamacker/cbor: an
// oracle, not a dependency of the library itself.
func TestEncodeMatchesOracle(t *testing.T) {
	mode, err := fxcbor.CoreDetEncOptions().EncMode()
	if err != nil {
		t.Fatalf("EncMode: %v", err)
	}

	cases := []struct {
		name   string
		v      *Value
		native any
	}{
		{"uint", Uint(1000), uint64(1000)},
		{"bytes", Bytes([]byte{0xde, 0xad, 0xbe, 0xef}), []byte{0xde, 0xad, 0xbe, 0xef}},
		{"text", Text("hello"), "hello"},
		{"array", Array(Uint(1), Uint(2), Uint(3)), []uint64{1, 2, 3}},
		{"bool-true", Bool(true), true},
		{"bool-false", Bool(false), false},
		{
			"map-int-keys",
			Map(Pair{1, Uint(10)}, Pair{2, Uint(20)}),
			map[uint64]uint64{1: 10, 2: 20},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ours, err := Encode(tc.v)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			want, err := mode.Marshal(tc.native)
			if err != nil {
				t.Fatalf("oracle Marshal: %v", err)
			}
			if string(ours) != string(want) {
				t.Fatalf("%s: ours=%x oracle=%x", tc.name, ours, want)
			}
		})
	}
}

// TestDecodeAcceptsOracleEncoding checks the reverse direction: bytes
// produced by the oracle library decode back to the same logical value
// through this package's Decode.
func TestDecodeAcceptsOracleEncoding(t *testing.T) {
	mode, err := fxcbor.CoreDetEncOptions().EncMode()
	if err != nil {
		t.Fatalf("EncMode: %v", err)
	}
	b, err := mode.Marshal([]uint64{7, 8, 9})
	if err != nil {
		t.Fatalf("oracle Marshal: %v", err)
	}
	got, rest, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover: %d", len(rest))
	}
	want := Array(Uint(7), Uint(8), Uint(9))
	if !Equal(got, want) {
		t.Fatalf("Decode(oracle bytes) = %s, want %s", Diagnostic(got), Diagnostic(want))
	}
}
