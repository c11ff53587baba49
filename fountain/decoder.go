package fountain

// Resource caps spec.md §4.6 ("Resource policy") recommends for
// constrained devices: once hit, further mixed parts are dropped but
// processing remains correct, just slower to converge.
const (
	maxPendingMixed      = 256
	maxDuplicateSuppress = 512
)

// equation is one XOR equation over GF(2): its left-hand side is the
// index set, its right-hand side is the mixed fragment bytes. Simple
// if len(indices) == 1.
type equation struct {
	indices Set
	data    []byte
}

func (e *equation) simple() bool { return len(e.indices) == 1 }

// Decoder is an online Gauss-Jordan eliminator over GF(2), restricted
// to column indices [0, seqLen) (spec.md §4.6). Grounded on the
// seedhammer fountain reference's Decoder, restructured around this
// module's own Set type and fingerprint-based duplicate suppression
// (spec.md §4.6 step 4 specifies FNV-1a; the reference instead keys a
// map directly on the sorted index list).
type Decoder struct {
	haveHeader bool
	header     header
	cache      *aliasCache

	known   map[int][]byte
	pending map[string]*equation
	seen    map[uint32]bool

	queue []*equation

	result    []byte
	resultErr error
	done      bool
}

// NewDecoder returns a Decoder ready to receive fountain parts.
func NewDecoder() *Decoder {
	return &Decoder{
		known:   make(map[int][]byte),
		pending: make(map[string]*equation),
		seen:    make(map[uint32]bool),
		cache:   newAliasCache(),
	}
}

// Receive processes one fountain part (spec.md §4.6, "Entry: receiving
// a part"). It returns an error only for a malformed/incompatible
// part; a part that is simply redundant or useful-but-insufficient is
// not an error.
func (d *Decoder) Receive(p Part) error {
	if d.done {
		return nil
	}
	h := p.header()
	if !d.haveHeader {
		d.haveHeader = true
		d.header = h
	} else if d.header != h {
		return ErrIncompatiblePart
	}

	indices := chooseFragments(p.SeqNum, p.SeqLen, p.Checksum, d.cache)
	fp := fingerprint(indices)
	if d.seen[fp] {
		return nil
	}
	if len(d.seen) < maxDuplicateSuppress {
		d.seen[fp] = true
	}

	data := append([]byte(nil), p.Data...)
	d.queue = append(d.queue, &equation{indices: indices, data: data})
	d.processQueue()
	return nil
}

func (d *Decoder) processQueue() {
	for len(d.queue) > 0 && !d.done {
		eq := d.queue[len(d.queue)-1]
		d.queue = d.queue[:len(d.queue)-1]
		if eq.simple() {
			d.processSimple(eq)
		} else {
			d.processMixed(eq)
		}
	}
}

// processSimple implements spec.md §4.6's "If the part is simple".
func (d *Decoder) processSimple(eq *equation) {
	i := eq.indices[0]
	if _, ok := d.known[i]; ok {
		return
	}
	d.known[i] = eq.data

	for key, other := range d.pending {
		if !other.indices.contains(i) {
			continue
		}
		delete(d.pending, key)
		other.indices = other.indices.without(i)
		xorInto(other.data, eq.data)
		if len(other.indices) == 1 {
			d.queue = append(d.queue, other)
		} else {
			d.pending[other.indices.key()] = other
		}
	}

	if len(d.known) == d.header.SeqLen {
		d.finish()
	}
}

// processMixed implements spec.md §4.6's "If the part is mixed".
func (d *Decoder) processMixed(eq *equation) {
	for i, frag := range d.known {
		if eq.indices.contains(i) {
			eq.indices = eq.indices.without(i)
			xorInto(eq.data, frag)
		}
	}

	for _, other := range d.pending {
		if other.indices.isStrictSubsetOf(eq.indices) {
			eq.indices = eq.indices.symmetricDifference(other.indices)
			xorInto(eq.data, other.data)
		}
	}

	switch {
	case len(eq.indices) == 0:
		return
	case len(eq.indices) == 1:
		d.queue = append(d.queue, eq)
	default:
		key := eq.indices.key()
		if _, exists := d.pending[key]; exists {
			return
		}
		if len(d.pending) >= maxPendingMixed {
			return
		}
		d.pending[key] = eq
	}
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func (d *Decoder) finish() {
	msg := make([]byte, 0, d.header.SeqLen*len(d.known[0]))
	for i := 0; i < d.header.SeqLen; i++ {
		msg = append(msg, d.known[i]...)
	}
	if len(msg) < d.header.MessageLen {
		d.done = true
		d.resultErr = ErrMalformedPart
		return
	}
	msg = msg[:d.header.MessageLen]
	if Checksum(msg) != d.header.Checksum {
		d.done = true
		d.resultErr = ErrChecksumMismatch
		return
	}
	d.done = true
	d.result = msg
}

// IsComplete reports whether the decoder has reached a final result
// (success or failure).
func (d *Decoder) IsComplete() bool {
	return d.done
}

// IsSuccess reports whether the decoder completed successfully.
func (d *Decoder) IsSuccess() bool {
	return d.done && d.resultErr == nil
}

// Result returns the reassembled payload once complete. It returns
// (nil, nil, false) if the decoder has not yet converged, and
// (nil, err, true) if it converged to a checksum failure.
func (d *Decoder) Result() ([]byte, error, bool) {
	if !d.done {
		return nil, nil, false
	}
	return d.result, d.resultErr, true
}

// ExpectedPartCount returns the sequence length once known, or 0
// before the first part has arrived.
func (d *Decoder) ExpectedPartCount() int {
	if !d.haveHeader {
		return 0
	}
	return d.header.SeqLen
}

// EstimatedPercentComplete returns
// min(0.99, processed / (expected_part_count * 1.75)) while incomplete
// and 1.0 once complete, where processed is the number of known
// fragments plus pending mixed equations. Received parts are not
// counted as such: duplicates, redundant parts and parts dropped at the
// pending cap add nothing to processed.
func (d *Decoder) EstimatedPercentComplete() float64 {
	if d.done {
		return 1.0
	}
	if !d.haveHeader || d.header.SeqLen == 0 {
		return 0
	}
	processed := len(d.known) + len(d.pending)
	p := float64(processed) / (float64(d.header.SeqLen) * 1.75)
	if p > 0.99 {
		p = 0.99
	}
	return p
}

// KnownCount returns the number of fragments recovered so far — a
// diagnostic aid, not part of spec.md's core surface.
func (d *Decoder) KnownCount() int {
	return len(d.known)
}

// PendingMixedCount returns the number of unreduced mixed equations
// currently held — a diagnostic aid mirroring the teacher's
// introspection-method style for internal state.
func (d *Decoder) PendingMixedCount() int {
	return len(d.pending)
}
