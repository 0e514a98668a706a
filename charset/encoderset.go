package charset

import (
	"errors"
	"strings"
)

// ErrInvalidArgument is returned for contractual misuses of the ECI encoding
// types: out-of-range indices, or querying the ECI value of a position that
// does not hold one.
var ErrInvalidArgument = errors.New("charset: invalid argument")

// singleByteCandidates lists, in trial order, the ECI encodings (the
// single-byte code pages, then the multi-byte Shift_JIS) considered on top
// of the mandatory ISO-8859-1 when covering an input string's characters.
// ISO8859_11 is absent: x/text has no Thai codepage
// implementation, so it can never be chosen as a candidate (see
// goNameToEncoding in encoding.go).
var singleByteCandidates = []*ECI{
	ECICp437,
	ECIISO8859_2, ECIISO8859_3, ECIISO8859_4, ECIISO8859_5, ECIISO8859_6,
	ECIISO8859_7, ECIISO8859_8, ECIISO8859_9, ECIISO8859_10,
	ECIISO8859_13, ECIISO8859_14, ECIISO8859_15, ECIISO8859_16,
	ECICp1250, ECICp1251, ECICp1252, ECICp1256,
	ECISJIS,
}

// ECIEncoderSet is the minimal list of single-byte encoders needed to cover
// every character of an input string, with ISO-8859-1 always first. UTF-8
// and UTF-16BE are appended after the needed encoders whenever ISO-8859-1
// alone is not enough (some character needs another candidate, or no
// candidate covers it) or the priority charset is a UTF encoding, so the
// string can always be represented.
type ECIEncoderSet struct {
	encoders             []*ECI
	priorityEncoderIndex int
}

// NewECIEncoderSet builds the encoder set for s. priorityCharset, if
// non-nil, is preferred whenever it can encode a character; fnc1 is the
// rune in s standing for an embedded FNC1 marker, or -1 if s carries none.
func NewECIEncoderSet(s string, priorityCharset *ECI, fnc1 rune) *ECIEncoderSet {
	needed := []*ECI{ECIISO8859_1}
	needUnicode := priorityCharset != nil && strings.HasPrefix(priorityCharset.GoName, "UTF")

	for _, c := range s {
		canEncode := false
		for _, e := range needed {
			if c == fnc1 || canEncodeRune(e, c) {
				canEncode = true
				break
			}
		}
		if !canEncode {
			for _, e := range singleByteCandidates {
				if canEncodeRune(e, c) {
					needed = append(needed, e)
					canEncode = true
					break
				}
			}
		}
		if !canEncode {
			needUnicode = true
		}
	}

	var encoders []*ECI
	if len(needed) == 1 && !needUnicode {
		encoders = []*ECI{ECIISO8859_1}
	} else {
		encoders = append(encoders, needed...)
		encoders = append(encoders, ECIUTF8, ECIUTF16BE)
	}

	priorityIndex := -1
	if priorityCharset != nil {
		for i, e := range encoders {
			if e == priorityCharset {
				priorityIndex = i
				break
			}
		}
	}

	return &ECIEncoderSet{encoders: encoders, priorityEncoderIndex: priorityIndex}
}

// Len returns the number of candidate encoders.
func (s *ECIEncoderSet) Len() int { return len(s.encoders) }

// Charset returns the ECI of the encoder at index i.
func (s *ECIEncoderSet) Charset(i int) *ECI { return s.encoders[i] }

// ECIValue returns the ECI numeric value of the encoder at index i.
func (s *ECIEncoderSet) ECIValue(i int) int { return s.encoders[i].Value }

// PriorityEncoderIndex returns the index of the priority charset among the
// encoders, or -1 if none was set or it was not among the candidates.
func (s *ECIEncoderSet) PriorityEncoderIndex() int { return s.priorityEncoderIndex }

// CanEncode reports whether the encoder at index i can represent c. It does
// not know about any FNC1 rune; callers that need to treat an FNC1 marker
// as always encodable must check for it themselves before calling this.
func (s *ECIEncoderSet) CanEncode(c rune, i int) bool {
	return canEncodeRune(s.encoders[i], c)
}

// EncodeChar encodes a single character with the encoder at index i. It
// panics if the encoder cannot represent c; callers must have checked with
// CanEncode first.
func (s *ECIEncoderSet) EncodeChar(c rune, i int) []byte {
	b, ok := encodeRune(s.encoders[i], c)
	if !ok {
		panic("charset: character not encodable by selected encoder")
	}
	return b
}

// EncodeString encodes all of s with the encoder at index i, substituting
// '?' for anything it cannot represent.
func (s *ECIEncoderSet) EncodeString(str string, i int) []byte {
	eci := s.encoders[i]
	if eci == ECIUTF8 {
		return []byte(str)
	}
	enc, ok := Encoding(eci)
	if !ok {
		return []byte(str)
	}
	out, err := enc.NewEncoder().Bytes([]byte(str))
	if err != nil {
		// Bytes() only returns an error for characters it cannot represent
		// with ErrUnsupported; fall back to a best-effort per-rune encode.
		var buf []byte
		for _, c := range str {
			if b, ok := encodeRune(eci, c); ok {
				buf = append(buf, b...)
			} else {
				buf = append(buf, '?')
			}
		}
		return buf
	}
	return out
}

func canEncodeRune(eci *ECI, c rune) bool {
	_, ok := encodeRune(eci, c)
	return ok
}

func encodeRune(eci *ECI, c rune) ([]byte, bool) {
	if eci == ECIUTF8 {
		return []byte(string(c)), true
	}
	if eci == ECIUTF16BE {
		enc, _ := Encoding(eci)
		b, err := enc.NewEncoder().Bytes([]byte(string(c)))
		if err != nil {
			return nil, false
		}
		return b, true
	}
	enc, ok := Encoding(eci)
	if !ok {
		return nil, false
	}
	b, err := enc.NewEncoder().Bytes([]byte(string(c)))
	if err != nil {
		return nil, false
	}
	return b, true
}
