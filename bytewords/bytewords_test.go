package bytewords

import "testing"

var roundtripCases = [][]byte{
	{},
	{0x00},
	{0xff},
	{0xde, 0xad, 0xbe, 0xef},
	[]byte("Wolf"),
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, style := range []Style{StyleMinimal, StyleStandard, StyleURI} {
		for _, data := range roundtripCases {
			enc := Encode(data, style)
			got, err := Decode(enc, style)
			if err != nil {
				t.Fatalf("style %d: Decode(%q): %v", style, enc, err)
			}
			if string(got) != string(data) {
				t.Fatalf("style %d: round trip %x -> %q -> %x", style, data, enc, got)
			}
		}
	}
}

func TestRawRoundTrip(t *testing.T) {
	for _, style := range []Style{StyleMinimal, StyleStandard, StyleURI} {
		for _, data := range roundtripCases {
			enc := EncodeRaw(data, style)
			got, err := DecodeRaw(enc, style)
			if err != nil {
				t.Fatalf("style %d: DecodeRaw(%q): %v", style, enc, err)
			}
			if string(got) != string(data) {
				t.Fatalf("style %d raw: round trip %x -> %q -> %x", style, data, enc, got)
			}
		}
	}
}

// Known vector: "Wolf" is 0x576f6c66 (hang jowl jazz inky) and its
// CRC-32 is 0x598c84dc (hawk luck liar undo); the minimal style keeps
// the first and last letter of each word.
func TestMinimalKnownVector(t *testing.T) {
	data := []byte("Wolf")
	enc := Encode(data, StyleMinimal)
	if len(enc) != (len(data)+4)*2 {
		t.Fatalf("unexpected length: %q", enc)
	}
	if want := "HGJLJZIYHKLKLRUO"; enc != want {
		t.Fatalf("Encode = %q, want %q", enc, want)
	}
	got, err := Decode(enc, StyleMinimal)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("got %x want %x", got, data)
	}
}

func TestDecodeDetectsChecksumMismatch(t *testing.T) {
	enc := Encode([]byte("Wolf"), StyleMinimal)
	// Replace the last pair ("UO", undo = 0xdc) with another dictionary
	// pair ("AE", able = 0x00), corrupting the checksum's final byte
	// while every pair still passes the alphabet check.
	mutated := []byte(enc)
	mutated[len(mutated)-2], mutated[len(mutated)-1] = 'A', 'E'
	if _, err := Decode(string(mutated), StyleMinimal); err != ErrChecksumMismatch {
		t.Fatalf("got %v, want ErrChecksumMismatch", err)
	}
}

func TestDecodeRejectsBadAlphabet(t *testing.T) {
	if _, err := Decode("zz", StyleMinimal); err != ErrInvalidWord {
		t.Fatalf("got %v, want ErrInvalidWord", err)
	}
}

func TestDecodeRejectsOddLength(t *testing.T) {
	if _, err := Decode("abc", StyleMinimal); err != ErrInvalidLength {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
}

func TestDecodeRejectsEmpty(t *testing.T) {
	if _, err := Decode("", StyleMinimal); err != ErrInvalidLength {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
}

func TestStandardAndURIUseDistinctSeparators(t *testing.T) {
	data := []byte{0x01, 0x02}
	std := Encode(data, StyleStandard)
	uri := Encode(data, StyleURI)
	if std == uri {
		t.Fatalf("expected standard and uri renderings to differ")
	}
}
