package fountain

// defaultMinFragmentLen is the default minimum fragment length
// (spec.md §4.5, "min fragment length (default 10)").
const defaultMinFragmentLen = 10

// Encoder partitions a payload into fixed-size fragments and emits an
// unbounded stream of fountain parts, mixing fragments according to
// the deterministic sampler in sampler.go (spec.md §4.5). Grounded on
// the seedhammer fountain reference's Encode, generalised from a
// one-shot function into a stateful iterator so NextPart can be called
// indefinitely.
type Encoder struct {
	message     []byte
	checksum    uint32
	seqLen      int
	fragmentLen int
	fragments   [][]byte
	seqNum      uint32
	emitted     int
	cache       *aliasCache
}

// NewEncoder builds an Encoder for message, using the smallest seqLen
// for which ceil(len(message)/seqLen) is at most maxFragmentLen, with
// fragmentLen set to that ceiling raised to minFragmentLen when it is
// smaller (see partition); the last fragment is zero-padded. A
// minFragmentLen of 0 selects the default of 10. firstSeqNum sets the
// sequence number NextPart will start from minus one (0 starts parts at
// 1, the BCR convention).
func NewEncoder(message []byte, maxFragmentLen, minFragmentLen, firstSeqNum int) (*Encoder, error) {
	if len(message) == 0 {
		return nil, ErrEmptyMessage
	}
	if minFragmentLen <= 0 {
		minFragmentLen = defaultMinFragmentLen
	}
	checksum := Checksum(message)
	seqLen, fragmentLen := partition(len(message), maxFragmentLen, minFragmentLen)
	fragments := make([][]byte, seqLen)
	for i := range fragments {
		start := i * fragmentLen
		end := start + fragmentLen
		frag := make([]byte, fragmentLen)
		if start < len(message) {
			copy(frag, message[start:min(end, len(message))])
		}
		fragments[i] = frag
	}
	return &Encoder{
		message:     message,
		checksum:    checksum,
		seqLen:      seqLen,
		fragmentLen: fragmentLen,
		fragments:   fragments,
		seqNum:      uint32(firstSeqNum),
		cache:       newAliasCache(),
	}, nil
}

// partition finds seqLen and fragmentLen: starting at one fragment, it
// increases the fragment count until ceil(messageLen/count) is at most
// maxFragmentLen, and returns that count with that ceiling, raised to
// minFragmentLen when the ceiling is smaller. minFragmentLen is not
// checked against maxFragmentLen, so a minFragmentLen above
// maxFragmentLen yields a fragmentLen above maxFragmentLen.
// messageLen is always > 0: NewEncoder rejects an empty message before
// calling this.
func partition(messageLen, maxFragmentLen, minFragmentLen int) (seqLen, fragmentLen int) {
	for count := 1; ; count++ {
		frag := (messageLen + count - 1) / count
		if frag <= maxFragmentLen {
			if frag < minFragmentLen {
				frag = minFragmentLen
			}
			return count, frag
		}
	}
}

// SeqLen returns the number of fragments the payload was split into.
func (e *Encoder) SeqLen() int {
	return e.seqLen
}

// IsSinglePart reports whether the payload fits in exactly one
// fragment, the case spec.md §4.5 calls out for the UR framing layer's
// single-part optimisation.
func (e *Encoder) IsSinglePart() bool {
	return e.seqLen == 1
}

// PartsEmitted returns how many times NextPart has been called. This
// is a supplement beyond spec.md's core surface — a sender-side
// counter like the one original_source's fountain_encoder.c keeps.
func (e *Encoder) PartsEmitted() int {
	return e.emitted
}

// NextPart advances the internal sequence counter and returns the next
// fountain part. It never terminates on its own (spec.md §4.5); the
// caller decides when enough parts have been emitted.
func (e *Encoder) NextPart() Part {
	e.seqNum++
	e.emitted++
	indices := chooseFragments(e.seqNum, e.seqLen, e.checksum, e.cache)
	mixed := make([]byte, e.fragmentLen)
	for _, idx := range indices {
		frag := e.fragments[idx]
		for i, b := range frag {
			mixed[i] ^= b
		}
	}
	return Part{
		SeqNum:     e.seqNum,
		SeqLen:     e.seqLen,
		MessageLen: len(e.message),
		Checksum:   e.checksum,
		Data:       mixed,
	}
}
