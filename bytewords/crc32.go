package bytewords

import (
	"encoding/binary"
	"hash/crc32"
)

// checksum computes CRC-32 (IEEE 802.3 polynomial, spec.md §4.2) over
// data. hash/crc32 already implements the exact reflected/initial/final-
// XOR convention spec.md calls for, and the reference Go fountain
// package in the examples pack (seedhammer's bc/fountain) reaches for
// the same stdlib function rather than a third-party CRC-32 — there is
// no idiomatic ecosystem alternative to reach for here.
func checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

func appendChecksum(data []byte) []byte {
	out := make([]byte, len(data)+4)
	copy(out, data)
	binary.BigEndian.PutUint32(out[len(data):], checksum(data))
	return out
}
