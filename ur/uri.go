package ur

import "strconv"

// typeTagValid checks the type-tag grammar of spec.md §6:
// `[a-z0-9]([a-z0-9-]*[a-z0-9])?` — non-empty, lowercase alphanumerics
// and internal hyphens, neither end a hyphen.
func typeTagValid(s string) bool {
	if s == "" {
		return false
	}
	if !isAlnum(s[0]) || !isAlnum(s[len(s)-1]) {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		c := s[i]
		if !isAlnum(c) && c != '-' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// parsedURI holds the decomposed components of a `ur:` URI, before the
// bytewords payload has been decoded.
type parsedURI struct {
	typ       string
	seqNum    int // 0 if this is a single-part UR
	seqLen    int
	bytewords string
}

// parseURI implements spec.md §4.7's Parse step: split on '/', require
// scheme "ur", require 2 or 3 path components, lowercase the type,
// validate the type grammar, and for three components parse the
// `seq_num-seq_len` sequence component.
func parseURI(s string) (parsedURI, error) {
	var out parsedURI

	rest, ok := splitScheme(s)
	if !ok {
		return out, newErr(KindFraming, "missing ur: scheme")
	}

	parts := splitSlash(rest)
	if len(parts) != 2 && len(parts) != 3 {
		return out, newErr(KindFraming, "wrong number of path components")
	}

	out.typ = toLower(parts[0])
	if !typeTagValid(out.typ) {
		return out, newErr(KindInvalidType, "type tag violates grammar")
	}

	if len(parts) == 2 {
		out.bytewords = parts[1]
		return out, nil
	}

	seqNum, seqLen, err := parseSeq(parts[1])
	if err != nil {
		return out, err
	}
	out.seqNum = seqNum
	out.seqLen = seqLen
	out.bytewords = parts[2]
	return out, nil
}

func splitScheme(s string) (string, bool) {
	const scheme = "ur:"
	if len(s) < len(scheme) {
		return "", false
	}
	if toLower(s[:len(scheme)]) != scheme {
		return "", false
	}
	return s[len(scheme):], true
}

func splitSlash(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

// parseSeq parses a `<seq_num>-<seq_len>` component: both positive
// decimal integers (spec.md §4.7).
func parseSeq(s string) (seqNum, seqLen int, err error) {
	dash := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			dash = i
			break
		}
	}
	if dash <= 0 || dash == len(s)-1 {
		return 0, 0, newErr(KindFraming, "malformed sequence component")
	}
	seqNum, e1 := strconv.Atoi(s[:dash])
	seqLen, e2 := strconv.Atoi(s[dash+1:])
	if e1 != nil || e2 != nil || seqNum <= 0 || seqLen <= 0 {
		return 0, 0, newErr(KindFraming, "malformed sequence component")
	}
	return seqNum, seqLen, nil
}
