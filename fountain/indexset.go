package fountain

import "sort"

// Set is a sorted set of fragment indices in [0, seqLen). It backs both
// the sampler's chosen-fragment output and the decoder's equations
// (spec.md §3, "Index set"). The zero value is the empty set.
type Set []int

// newSet builds a canonicalised (sorted) Set from indices, which need
// not already be sorted or deduplicated.
func newSet(indices []int) Set {
	s := append(Set(nil), indices...)
	sort.Ints(s)
	out := s[:0]
	for _, idx := range s {
		if len(out) == 0 || idx != out[len(out)-1] {
			out = append(out, idx)
		}
	}
	return out
}

func (s Set) contains(i int) bool {
	idx := sort.SearchInts(s, i)
	return idx < len(s) && s[idx] == i
}

// equal reports whether s and other contain the same indices.
func (s Set) equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// isStrictSubsetOf reports whether every index in s is in other, and s
// is strictly smaller than other — spec.md §4.6's "strict subset" used
// to decide whether a known or pending equation may reduce another.
func (s Set) isStrictSubsetOf(other Set) bool {
	if len(s) >= len(other) {
		return false
	}
	for _, i := range s {
		if !other.contains(i) {
			return false
		}
	}
	return true
}

// symmetricDifference returns the indices present in exactly one of s
// and other, canonicalised.
func (s Set) symmetricDifference(other Set) Set {
	out := make(Set, 0, len(s)+len(other))
	for _, i := range s {
		if !other.contains(i) {
			out = append(out, i)
		}
	}
	for _, i := range other {
		if !s.contains(i) {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// without returns s with i removed, if present.
func (s Set) without(i int) Set {
	out := make(Set, 0, len(s))
	for _, idx := range s {
		if idx != i {
			out = append(out, idx)
		}
	}
	return out
}

// key returns a string uniquely identifying s's contents, suitable for
// use as a map key in the decoder's pending-mixed-equations table.
func (s Set) key() string {
	b := make([]byte, 0, len(s)*4)
	for i, idx := range s {
		if i > 0 {
			b = append(b, '|')
		}
		b = appendInt(b, idx)
	}
	return string(b)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
