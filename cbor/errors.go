package cbor

import (
	"errors"
	"strconv"
)

// Error is the interface satisfied by ErrShortBytes, PrefixError and
// ArrayError, following the Resumable distinction the teacher codec uses
// to tell malformed-forever failures apart from simple short-input
// signals. The errors.New sentinels below do not implement it; the
// package-level Resumable reports false for them.
type Error interface {
	error

	// Resumable reports whether the error means only that the buffer
	// didn't contain enough bytes yet, as opposed to the bytes present
	// being structurally invalid.
	Resumable() bool
}

var (
	// ErrShortBytes is returned when the slice being decoded is too
	// short to contain the item being read.
	ErrShortBytes error = errShort{}

	// ErrNonCanonicalLength is returned when a length or integer is
	// encoded using a larger form than its value requires.
	ErrNonCanonicalLength error = errors.New("cbor: non-canonical length encoding")

	// ErrIndefiniteNotSupported is returned for indefinite-length items,
	// which this subset does not implement.
	ErrIndefiniteNotSupported error = errors.New("cbor: indefinite-length items are not supported")

	// ErrNegativeNotSupported is returned for major type 1 (negative
	// integers), which this subset does not implement.
	ErrNegativeNotSupported error = errors.New("cbor: negative integers are not supported")

	// ErrFloatNotSupported is returned for major-type-7 floats, which
	// this subset does not implement.
	ErrFloatNotSupported error = errors.New("cbor: floating point values are not supported")

	// ErrInvalidUTF8 is returned when a text string is not valid UTF-8.
	ErrInvalidUTF8 error = errors.New("cbor: invalid UTF-8 in text string")

	// ErrNonIntegerMapKey is returned when a map key is not a small
	// unsigned integer, which is the only key type this subset supports.
	ErrNonIntegerMapKey error = errors.New("cbor: map keys must be unsigned integers")

	// ErrIntOverflow is returned when a decoded unsigned integer doesn't
	// fit in the narrower type the caller requested.
	ErrIntOverflow error = errors.New("cbor: integer overflows requested width")
)

type errShort struct{}

func (e errShort) Error() string   { return "cbor: too few bytes left to read object" }
func (e errShort) Resumable() bool { return true }

// PrefixError is returned when the major type of the next item doesn't
// match what the caller expected to read.
type PrefixError struct {
	Want uint8
	Got  uint8
}

func (e PrefixError) Error() string {
	return "cbor: wanted major type " + strconv.Itoa(int(e.Want)) + "; got " + strconv.Itoa(int(e.Got))
}
func (e PrefixError) Resumable() bool { return false }

func badPrefix(got, want uint8) error {
	return PrefixError{Want: want, Got: got}
}

// ArrayError describes a fixed-size array of the wrong length. No
// decoder in this module returns it: fountain.DecodePart reports a part
// record of the wrong length as fountain.ErrMalformedPart.
type ArrayError struct {
	Wanted uint32
	Got    uint32
}

func (e ArrayError) Error() string {
	return "cbor: wanted array of size " + strconv.Itoa(int(e.Wanted)) + "; got " + strconv.Itoa(int(e.Got))
}
func (e ArrayError) Resumable() bool { return false }

// Resumable reports whether err means only that more bytes are needed.
func Resumable(err error) bool {
	if e, ok := err.(Error); ok {
		return e.Resumable()
	}
	return false
}
