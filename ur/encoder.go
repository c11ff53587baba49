package ur

import (
	"strconv"
	"strings"

	"github.com/blockchaincommons/go-ur/bytewords"
	"github.com/blockchaincommons/go-ur/fountain"
)

// Encoder renders a single CBOR payload as a stream of UR part URIs,
// single-part if it fits in one fragment, or fountain-multiplexed
// otherwise (spec.md §4.7).
type Encoder struct {
	typ     string
	payload []byte
	single  bool
	fe      *fountain.Encoder
}

// NewEncoder builds an Encoder for the given type tag and CBOR-encoded
// payload. maxFragmentLen and minFragmentLen bound the fountain
// encoder's fragment size (spec.md §4.5); firstSeqNum sets the
// starting sequence number. minFragmentLen of 0 selects the fountain
// package's default.
func NewEncoder(typ string, cborPayload []byte, maxFragmentLen, firstSeqNum, minFragmentLen int) (*Encoder, error) {
	if !typeTagValid(typ) {
		return nil, newErr(KindInvalidType, "type tag violates grammar")
	}
	fe, err := fountain.NewEncoder(cborPayload, maxFragmentLen, minFragmentLen, firstSeqNum)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		typ:     typ,
		payload: cborPayload,
		single:  fe.IsSinglePart(),
		fe:      fe,
	}, nil
}

// IsSinglePart reports whether this encoder emits exactly one part
// (spec.md §4.5's single-part optimisation).
func (e *Encoder) IsSinglePart() bool {
	return e.single
}

// SeqLen returns the fountain sequence length backing this encoder.
func (e *Encoder) SeqLen() int {
	return e.fe.SeqLen()
}

// NextPart returns the next UR part URI. For a single-part encoder,
// every call returns the same `ur:<type>/<bytewords>` string (spec.md
// §4.7, "Single-part encode"); for a multi-part encoder, each call
// advances the fountain sequence and returns
// `ur:<type>/<seq_num>-<seq_len>/<bytewords>` (spec.md §4.7,
// "Multi-part encode").
func (e *Encoder) NextPart() (string, error) {
	if e.single {
		bw := bytewords.Encode(e.payload, bytewords.StyleMinimal)
		return "ur:" + e.typ + "/" + bw, nil
	}

	p := e.fe.NextPart()
	partCBOR, err := p.Encode()
	if err != nil {
		return "", err
	}
	bw := bytewords.EncodeRaw(partCBOR, bytewords.StyleMinimal)
	var sb strings.Builder
	sb.WriteString("ur:")
	sb.WriteString(e.typ)
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatUint(uint64(p.SeqNum), 10))
	sb.WriteByte('-')
	sb.WriteString(strconv.Itoa(p.SeqLen))
	sb.WriteByte('/')
	sb.WriteString(bw)
	return sb.String(), nil
}
