package ur

import (
	"github.com/blockchaincommons/go-ur/bytewords"
	"github.com/blockchaincommons/go-ur/cbor"
	"github.com/blockchaincommons/go-ur/fountain"
)

// Decoder assimilates a stream of UR part URIs — single- or
// multi-part, in any order, with arbitrary duplicates — into a single
// reassembled CBOR payload (spec.md §4.7, §8 "Round-trip").
type Decoder struct {
	typ        string
	haveType   bool
	single     bool
	singleCBOR []byte
	fd         *fountain.Decoder

	err error
}

// NewDecoder returns an empty Decoder ready to receive UR parts.
func NewDecoder() *Decoder {
	return &Decoder{fd: fountain.NewDecoder()}
}

// ReceivePart parses and assimilates one UR part URI. It returns an
// error describing which of spec.md §7's kinds applies; only a
// KindInvalidChecksum error is terminal — the caller may keep calling
// ReceivePart after any other error (spec.md §7, "non-fatal... except
// invalid-checksum").
func (d *Decoder) ReceivePart(s string) error {
	if d.err != nil {
		if de, ok := d.err.(*DecodeError); ok && de.Kind == KindInvalidChecksum {
			return d.err
		}
	}

	u, err := parseURI(s)
	if err != nil {
		return err
	}

	if d.haveType && u.typ != d.typ {
		return newErr(KindInvalidType, "type differs from first part's adopted type")
	}

	if u.seqNum == 0 {
		// Single-part part: two path components, raw CBOR under the
		// CRC-checked bytewords encoding (spec.md §4.7, "For two
		// components, the decoded bytes are the payload CBOR directly").
		payload, err := bytewords.Decode(u.bytewords, bytewords.StyleMinimal)
		if err != nil {
			return newErr(KindBytewords, err.Error())
		}
		if !d.haveType {
			d.haveType = true
			d.typ = u.typ
			d.single = true
			d.singleCBOR = payload
		}
		return nil
	}

	// Multi-part part: three path components, the five-element fountain
	// record under the raw (unchecked) bytewords encoding (spec.md §4.7,
	// "For three components...").
	raw, err := bytewords.DecodeRaw(u.bytewords, bytewords.StyleMinimal)
	if err != nil {
		return newErr(KindBytewords, err.Error())
	}

	part, err := fountain.DecodePart(raw)
	if err != nil {
		return newErr(KindCBOR, err.Error())
	}
	if int(part.SeqNum) != u.seqNum || part.SeqLen != u.seqLen {
		return newErr(KindInvalidPart, "header seq_num/seq_len disagree with URI sequence component")
	}

	if !d.haveType {
		d.haveType = true
		d.typ = u.typ
	}

	if err := d.fd.Receive(part); err != nil {
		return newErr(KindInvalidPart, err.Error())
	}

	if d.fd.IsComplete() && !d.fd.IsSuccess() {
		_, ferr, _ := d.fd.Result()
		d.err = newErr(KindInvalidChecksum, ferr.Error())
		return d.err
	}
	return nil
}

// IsComplete reports whether the decoder holds a final result, success
// or failure.
func (d *Decoder) IsComplete() bool {
	if d.single {
		return d.singleCBOR != nil
	}
	return d.fd.IsComplete()
}

// IsSuccess reports whether IsComplete holds and the result is usable.
func (d *Decoder) IsSuccess() bool {
	if d.single {
		return d.singleCBOR != nil
	}
	return d.fd.IsSuccess()
}

// Result returns the reassembled type tag and decoded CBOR value once
// complete and successful.
func (d *Decoder) Result() (string, *cbor.Value, error) {
	var payload []byte
	if d.single {
		payload = d.singleCBOR
	} else {
		if !d.fd.IsSuccess() {
			return "", nil, newErr(KindInvalidChecksum, "decoder has not reached a successful result")
		}
		p, _, _ := d.fd.Result()
		payload = p
	}
	v, rest, err := cbor.Decode(payload)
	if err != nil {
		return "", nil, newErr(KindCBOR, err.Error())
	}
	if len(rest) != 0 {
		return "", nil, newErr(KindCBOR, "trailing bytes after payload")
	}
	return d.typ, v, nil
}

// ExpectedPartCount returns the fountain sequence length once known
// from the first multi-part part received, 1 for a single-part
// message, or 0 if nothing has arrived yet.
func (d *Decoder) ExpectedPartCount() int {
	if d.single {
		return 1
	}
	return d.fd.ExpectedPartCount()
}

// EstimatedPercentComplete implements spec.md §6's estimator.
func (d *Decoder) EstimatedPercentComplete() float64 {
	if d.single {
		if d.singleCBOR != nil {
			return 1.0
		}
		return 0
	}
	return d.fd.EstimatedPercentComplete()
}
