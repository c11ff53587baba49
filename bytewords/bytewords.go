package bytewords

import (
	"encoding/binary"
	"errors"
	"strings"
)

// Style selects the Bytewords rendering: minimal (2 chars/byte, no
// separator — spec.md §4.3, the only style the ur package's wire
// framing uses), standard (full 4-letter words, space separated), or
// uri (full 4-letter words, hyphen separated). Standard and uri are
// carried over from original_source/src/bytewords.c, which implements
// all three, even though this module's own wire format only emits
// minimal.
type Style int

const (
	StyleMinimal Style = iota
	StyleStandard
	StyleURI
)

// ErrInvalidWord is returned when a character pair (minimal) or token
// (standard/uri) doesn't correspond to a dictionary word.
var ErrInvalidWord = errors.New("bytewords: invalid word")

// ErrInvalidLength is returned when the input's length doesn't match
// its style's expected granularity, or is too short to hold a checksum.
var ErrInvalidLength = errors.New("bytewords: invalid length")

// ErrChecksumMismatch is returned when the trailing checksum decoded
// from the input doesn't match the CRC-32 of the leading bytes.
var ErrChecksumMismatch = errors.New("bytewords: checksum mismatch")

// Encode appends a 4-byte big-endian CRC-32 of data to data, then
// renders the result in the given style. This is the "with CRC" form
// spec.md §4.3 describes for the outer Bytewords encoding of a UR part.
func Encode(data []byte, style Style) string {
	return render(appendChecksum(data), style)
}

// Decode is the inverse of Encode: it renders the input back to bytes,
// verifies the trailing 4-byte CRC-32 against the leading bytes, and
// returns the leading bytes on success. A single-character mutation to
// the input is caught here, by the alphabet check or the CRC check
// (spec.md §8, "Bytewords round-trip").
func Decode(s string, style Style) ([]byte, error) {
	buf, err := parse(s, style)
	if err != nil {
		return nil, err
	}
	if len(buf) < 4 {
		return nil, ErrInvalidLength
	}
	body, trailer := buf[:len(buf)-4], buf[len(buf)-4:]
	if binary.BigEndian.Uint32(trailer) != checksum(body) {
		return nil, ErrChecksumMismatch
	}
	return body, nil
}

// EncodeRaw renders data in the given style with no CRC-32 trailer
// appended. The ur package uses it (with DecodeRaw on the receiving
// side) for multi-part parts, where the CBOR-framed fountain part
// already carries its own checksum in the header (spec.md §4.3, "a
// 'raw' variant").
func EncodeRaw(data []byte, style Style) string {
	return render(data, style)
}

// DecodeRaw is the inverse of EncodeRaw: it renders the input back to
// bytes without checking for or stripping any trailer.
func DecodeRaw(s string, style Style) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	return parse(s, style)
}

func render(data []byte, style Style) string {
	switch style {
	case StyleMinimal:
		var sb strings.Builder
		sb.Grow(len(data) * 2)
		for _, b := range data {
			w := words[b]
			sb.WriteByte(upper(w[0]))
			sb.WriteByte(upper(w[3]))
		}
		return sb.String()
	case StyleStandard:
		parts := make([]string, len(data))
		for i, b := range data {
			parts[i] = words[b]
		}
		return strings.Join(parts, " ")
	case StyleURI:
		parts := make([]string, len(data))
		for i, b := range data {
			parts[i] = words[b]
		}
		return strings.Join(parts, "-")
	default:
		return ""
	}
}

func parse(s string, style Style) ([]byte, error) {
	switch style {
	case StyleMinimal:
		if len(s) == 0 || len(s)%2 != 0 {
			return nil, ErrInvalidLength
		}
		out := make([]byte, len(s)/2)
		for i := range out {
			b, err := decodeMinimalPair(s[i*2], s[i*2+1])
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return out, nil
	case StyleStandard, StyleURI:
		sep := " "
		if style == StyleURI {
			sep = "-"
		}
		if s == "" {
			return nil, ErrInvalidLength
		}
		tokens := strings.Split(s, sep)
		out := make([]byte, len(tokens))
		for i, tok := range tokens {
			b, err := decodeFullWord(tok)
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return out, nil
	default:
		return nil, ErrInvalidWord
	}
}

func decodeMinimalPair(first, last byte) (byte, error) {
	x := lower(first)
	y := lower(last)
	if x < 'a' || x > 'z' || y < 'a' || y > 'z' {
		return 0, ErrInvalidWord
	}
	offset := int(y-'a')*26 + int(x-'a')
	val := lookupTable[offset]
	if val == -1 {
		return 0, ErrInvalidWord
	}
	return byte(val), nil
}

func decodeFullWord(tok string) (byte, error) {
	if len(tok) != 4 {
		return 0, ErrInvalidWord
	}
	b, err := decodeMinimalPair(tok[0], tok[3])
	if err != nil {
		return 0, err
	}
	expected := words[b]
	if lower(tok[1]) != expected[1] || lower(tok[2]) != expected[2] {
		return 0, ErrInvalidWord
	}
	return b, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
