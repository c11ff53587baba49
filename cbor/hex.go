package cbor

import "encoding/hex"

// HexEncode renders b as a lowercase hex string. Kept as a thin,
// named wrapper (rather than calling encoding/hex directly at every
// call site) so test vectors and Diagnostic output go through one
// place, matching the "Utilities" component spec.md's component table
// calls out alongside byte buffers and string split.
func HexEncode(b []byte) string { return hex.EncodeToString(b) }

// HexDecode parses a hex string, as used by the literal test vectors
// in spec.md §8 (E1-E6).
func HexDecode(s string) ([]byte, error) { return hex.DecodeString(s) }
