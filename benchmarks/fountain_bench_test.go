package benchmarks

import (
	"crypto/rand"
	"testing"

	"github.com/blockchaincommons/go-ur/bytewords"
	"github.com/blockchaincommons/go-ur/cbor"
	"github.com/blockchaincommons/go-ur/fountain"
	"github.com/blockchaincommons/go-ur/ur"
	msgp "github.com/tinylib/msgp/msgp"
)

func randomPayload(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

// BenchmarkFountain_EncodePart measures the steady-state cost of
// producing one mixed fountain part for a realistically sized payload
// (comparable to a PSBT or xpub descriptor transported over animated
// QR codes).
func BenchmarkFountain_EncodePart(b *testing.B) {
	payload := randomPayload(2000)
	enc, err := fountain.NewEncoder(payload, 100, 10, 0)
	if err != nil {
		b.Fatalf("NewEncoder: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc.NextPart()
	}
}

// BenchmarkFountain_DecodeConvergence measures the cost of feeding a
// decoder enough parts to converge, including the Gauss-Jordan
// reduction cascade.
func BenchmarkFountain_DecodeConvergence(b *testing.B) {
	payload := randomPayload(2000)
	enc, err := fountain.NewEncoder(payload, 100, 10, 0)
	if err != nil {
		b.Fatalf("NewEncoder: %v", err)
	}
	var parts []fountain.Part
	for i := 0; i < enc.SeqLen()*3; i++ {
		parts = append(parts, enc.NextPart())
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dec := fountain.NewDecoder()
		for _, p := range parts {
			if dec.IsComplete() {
				break
			}
			_ = dec.Receive(p)
		}
	}
}

// BenchmarkBytewords_Encode and BenchmarkBytewords_Decode measure the
// minimal-style codec's per-byte cost, the layer every UR part's
// payload passes through.
func BenchmarkBytewords_Encode(b *testing.B) {
	data := randomPayload(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bytewords.Encode(data, bytewords.StyleMinimal)
	}
}

func BenchmarkBytewords_Decode(b *testing.B) {
	data := randomPayload(200)
	enc := bytewords.Encode(data, bytewords.StyleMinimal)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bytewords.Decode(enc, bytewords.StyleMinimal); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}

// encodeMsgpPart mirrors fountain.Part's five fields as a msgp append
// sequence, giving a throughput comparison point for the whole-part
// encode against an unrelated, independently-implemented serializer.
func encodeMsgpPart(p fountain.Part) []byte {
	var buf []byte
	buf = msgp.AppendArrayHeader(buf, 5)
	buf = msgp.AppendUint32(buf, p.SeqNum)
	buf = msgp.AppendInt(buf, p.SeqLen)
	buf = msgp.AppendInt(buf, p.MessageLen)
	buf = msgp.AppendUint32(buf, p.Checksum)
	buf = msgp.AppendBytes(buf, p.Data)
	return buf
}

func BenchmarkFountain_PartEncode(b *testing.B) {
	payload := randomPayload(2000)
	enc, err := fountain.NewEncoder(payload, 100, 10, 0)
	if err != nil {
		b.Fatalf("NewEncoder: %v", err)
	}
	p := enc.NextPart()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Encode(); err != nil {
			b.Fatalf("Encode: %v", err)
		}
	}
}

func BenchmarkMsgp_PartEncodeEquivalent(b *testing.B) {
	payload := randomPayload(2000)
	enc, err := fountain.NewEncoder(payload, 100, 10, 0)
	if err != nil {
		b.Fatalf("NewEncoder: %v", err)
	}
	p := enc.NextPart()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		encodeMsgpPart(p)
	}
}

// BenchmarkUR_SinglePartRoundTrip measures the full encode+decode cost
// of a small single-part UR, the common case for wallet descriptors
// and addresses.
func BenchmarkUR_SinglePartRoundTrip(b *testing.B) {
	v := cbor.Bytes(randomPayload(64))
	payload, err := cbor.Encode(v)
	if err != nil {
		b.Fatalf("cbor.Encode: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc, err := ur.NewEncoder("bytes", payload, 500, 0, 10)
		if err != nil {
			b.Fatalf("NewEncoder: %v", err)
		}
		part, err := enc.NextPart()
		if err != nil {
			b.Fatalf("NextPart: %v", err)
		}
		dec := ur.NewDecoder()
		if err := dec.ReceivePart(part); err != nil {
			b.Fatalf("ReceivePart: %v", err)
		}
	}
}
