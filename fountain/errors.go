package fountain

import "errors"

// ErrMalformedPart is returned when a decoded CBOR value doesn't match
// the five-element part record shape spec.md §6 defines.
var ErrMalformedPart = errors.New("fountain: malformed part")

// ErrIncompatiblePart is returned when a received part's header
// (seq_len, message_len, checksum) disagrees with the parameters
// already adopted from an earlier part (spec.md §3, "Decoder state").
var ErrIncompatiblePart = errors.New("fountain: incompatible part")

// ErrChecksumMismatch is returned by Result when every fragment is
// known but the reassembled payload's CRC-32 doesn't match the header
// (spec.md §4.6, "Failure semantics") — a terminal decoder error.
var ErrChecksumMismatch = errors.New("fountain: checksum mismatch")

// ErrEmptyMessage is returned by NewEncoder when asked to encode a
// zero-length payload (spec.md §7, "The encoder can fail only at
// construction ... or when asked to encode a null input"; §8,
// "Empty payload: the encoder rejects it").
var ErrEmptyMessage = errors.New("fountain: empty message")
