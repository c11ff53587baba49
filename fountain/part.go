package fountain

import "github.com/blockchaincommons/go-ur/cbor"

// Part is the five-field wire record of spec.md §3/§6: a fountain
// fragment ready for (or received from) the wire, independent of any
// particular index set — the receiver replays the sampler against
// SeqNum to recover which fragments were mixed.
type Part struct {
	SeqNum     uint32
	SeqLen     int
	MessageLen int
	Checksum   uint32
	Data       []byte
}

// header is the subset of a Part that must stay constant across every
// part of one fountain stream (spec.md §3, "Decoder state").
type header struct {
	SeqLen     int
	MessageLen int
	Checksum   uint32
}

func (p Part) header() header {
	return header{SeqLen: p.SeqLen, MessageLen: p.MessageLen, Checksum: p.Checksum}
}

// Encode renders p as the CBOR five-element array described in
// spec.md §6: `[seq_num, seq_len, message_len, checksum, data]`, each
// integer in shortest form, data as a CBOR byte string.
func (p Part) Encode() ([]byte, error) {
	v := cbor.Array(
		cbor.Uint(uint64(p.SeqNum)),
		cbor.Uint(uint64(p.SeqLen)),
		cbor.Uint(uint64(p.MessageLen)),
		cbor.Uint(uint64(p.Checksum)),
		cbor.Bytes(p.Data),
	)
	return cbor.Encode(v)
}

// DecodePart parses the CBOR five-element array produced by Encode.
func DecodePart(b []byte) (Part, error) {
	v, rest, err := cbor.Decode(b)
	if err != nil {
		return Part{}, err
	}
	if len(rest) != 0 {
		return Part{}, cbor.ErrShortBytes
	}
	items, ok := v.AsArray()
	if !ok || len(items) != 5 {
		return Part{}, ErrMalformedPart
	}
	seqNum, ok1 := items[0].AsUint()
	seqLen, ok2 := items[1].AsUint()
	msgLen, ok3 := items[2].AsUint()
	checksum, ok4 := items[3].AsUint()
	data, ok5 := items[4].AsBytes()
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return Part{}, ErrMalformedPart
	}
	return Part{
		SeqNum:     uint32(seqNum),
		SeqLen:     int(seqLen),
		MessageLen: int(msgLen),
		Checksum:   uint32(checksum),
		Data:       data,
	}, nil
}
