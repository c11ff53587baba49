// Package fountain implements the rateless Luby-Transform fountain code
// at the core of Uniform Resources (spec.md §4.4-§4.6): a deterministic
// fragment sampler, an infinite-iterator encoder, and a Gauss-Jordan
// decoder over GF(2). Grounded on
// _examples/other_examples/*seedhammer*bc-fountain-fountain.go.go, the
// only fountain-code implementation in the retrieved examples, adapted
// from its CBOR-tagged-struct part representation to this module's own
// cbor.Value tree and from its crypto/sha256-seeded
// seedhammer.com/bc/xoshiro256 (unavailable outside that module) to an
// inlined xoshiro256** matching spec.md §4.4's normative PRNG contract
// bit-for-bit.
package fountain

import (
	"crypto/sha256"
	"encoding/binary"
)

// prng is an xoshiro256** generator. The algorithm and its scramble
// step are part of the wire contract (spec.md §4.4): two decoders fed
// the same seed must produce bit-identical sequences.
type prng struct {
	s [4]uint64
}

// seedPRNG forms the 8-byte seed k||checksum (both big-endian), hashes
// it with SHA-256, and splits the 32-byte digest into four big-endian
// uint64 words of initial state, per spec.md §4.4 step 2a-2b.
func seedPRNG(k uint32, checksum uint32) *prng {
	var seed [8]byte
	binary.BigEndian.PutUint32(seed[0:4], k)
	binary.BigEndian.PutUint32(seed[4:8], checksum)
	digest := sha256.Sum256(seed[:])
	p := &prng{}
	for i := 0; i < 4; i++ {
		p.s[i] = binary.BigEndian.Uint64(digest[i*8 : i*8+8])
	}
	return p
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// next produces the next 64-bit output and advances the state: the
// standard xoshiro256** step — scramble is s1*5 rotated left 7, times
// 9 — followed by the canonical xoshiro256 linear update.
func (p *prng) next() uint64 {
	s := &p.s
	result := rotl(s[1]*5, 7) * 9

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = rotl(s[3], 45)

	return result
}

// float64 returns a double in [0, 1): next_u64 / 2^64 (spec.md §4.4,
// PRNG contract).
func (p *prng) float64() float64 {
	return float64(p.next()) / (1 << 64)
}

// intn returns an integer in [lo, hi] inclusive:
// floor(double * (hi - lo + 1)) + lo (spec.md §4.4, PRNG contract).
func (p *prng) intn(lo, hi int) int {
	span := float64(hi - lo + 1)
	return int(p.float64()*span) + lo
}

// aliasTable is a precomputed Walker's alias table for sampling the
// degree distribution 1/i, i in [1, seqLen], in O(1) per draw after an
// O(seqLen) build (spec.md §4.4 step 2c).
type aliasTable struct {
	prob   []float64
	alias  []int
	seqLen int
}

// buildAliasTable implements Walker's alias method (Vose's variant)
// over the weights 1/(i+1) for i in [0, seqLen), matching the
// probability/alias construction in the seedhammer fountain reference's
// sample().
func buildAliasTable(seqLen int) *aliasTable {
	n := seqLen
	probs := make([]float64, n)
	var sum float64
	for i := range probs {
		probs[i] = 1. / float64(i+1)
		sum += probs[i]
	}

	scaled := make([]float64, n)
	for i, p := range probs {
		scaled[i] = p * float64(n) / sum
	}

	var small, large []int
	for i := n - 1; i >= 0; i-- {
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	prob := make([]float64, n)
	alias := make([]int, n)
	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		prob[l] = scaled[l]
		alias[l] = g
		scaled[g] += scaled[l] - 1
		if scaled[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}
	for len(large) > 0 {
		g := large[len(large)-1]
		large = large[:len(large)-1]
		prob[g] = 1
	}
	for len(small) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		prob[l] = 1
	}

	return &aliasTable{prob: prob, alias: alias, seqLen: n}
}

// sample draws one index in [0, seqLen) from the alias table using two
// uniforms from rng, per spec.md §4.4 step 2c.
func (t *aliasTable) sample(rng *prng) int {
	r1 := rng.float64()
	r2 := rng.float64()
	i := int(float64(t.seqLen) * r1)
	if i >= t.seqLen {
		i = t.seqLen - 1
	}
	if r2 < t.prob[i] {
		return i
	}
	return t.alias[i]
}

// aliasCache caches alias tables per seqLen, since spec.md §4.4
// requires "Implementations must cache the alias tables per (seq_len,
// checksum)" to avoid rebuilding an O(seqLen) structure on every
// received part. The table depends only on seqLen (the weights are
// 1/i regardless of checksum), so caching by seqLen alone is
// sufficient and sharing-safe across checksums.
type aliasCache struct {
	tables map[int]*aliasTable
}

func newAliasCache() *aliasCache {
	return &aliasCache{tables: make(map[int]*aliasTable)}
}

func (c *aliasCache) get(seqLen int) *aliasTable {
	if t, ok := c.tables[seqLen]; ok {
		return t
	}
	t := buildAliasTable(seqLen)
	c.tables[seqLen] = t
	return t
}

// shuffleIndices draws a random permutation of [0, seqLen) by
// repeatedly picking a random element out of the still-remaining
// indices and appending it to the result, shrinking the remaining set
// by one each draw - not a swap-based Fisher-Yates. This consumes
// exactly seqLen draws from rng (the final draw is always from a
// single-element range and so is deterministic), matching the
// seedhammer fountain reference's shuffle and the C reference's
// choose_fragments. The two algorithms diverge over the same PRNG
// stream, and spec.md §4.4/§9 ties this exact sequence to the wire
// contract, so the draw-and-remove shape must match bit-for-bit.
func shuffleIndices(seqLen int, rng *prng) []int {
	items := make([]int, seqLen)
	for i := range items {
		items[i] = i
	}
	result := make([]int, 0, seqLen)
	for len(items) > 0 {
		i := rng.intn(0, len(items)-1)
		result = append(result, items[i])
		items = append(items[:i], items[i+1:]...)
	}
	return result
}

// chooseFragments implements spec.md §4.4 in full: the systematic
// prefix for k <= seqLen, and the seeded degree+shuffle sampler
// otherwise. cache may be nil, in which case a fresh alias table is
// built for this call (used by one-off callers like SeqNumFor).
func chooseFragments(k uint32, seqLen int, checksum uint32, cache *aliasCache) Set {
	if k <= uint32(seqLen) {
		return Set{int(k - 1)}
	}
	rng := seedPRNG(k, checksum)
	var table *aliasTable
	if cache != nil {
		table = cache.get(seqLen)
	} else {
		table = buildAliasTable(seqLen)
	}
	degree := table.sample(rng) + 1
	shuffled := shuffleIndices(seqLen, rng)
	return newSet(shuffled[:degree])
}
