package fountain

import (
	"hash/crc32"
	"hash/fnv"
)

// Checksum computes the CRC-32 (IEEE 802.3) of a message, used as the
// fountain header's checksum field and as half of the per-part PRNG
// seed (spec.md §4.2, §4.4). Grounded on the seedhammer fountain
// reference's Checksum, which also reaches for stdlib crc32 directly.
func Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// fingerprint hashes an index set's canonical key with FNV-1a, the
// reference choice spec.md §4.6 step 4 names for the decoder's
// duplicate-part suppression set.
func fingerprint(s Set) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s.key()))
	return h.Sum32()
}
