package charset

import "strings"

// ECIStringBuilder assembles a decoded string from bytes interleaved with
// ECI designator switches, the consumer-side mirror of MinimalECIInput. It
// is not safe for concurrent use.
type ECIStringBuilder struct {
	currentBytes   []byte
	currentCharset *ECI
	result         strings.Builder
}

// NewECIStringBuilder creates a builder whose initial (pre-ECI) segment is
// interpreted as ISO-8859-1, matching the symbology default before any ECI
// designator has been seen.
func NewECIStringBuilder() *ECIStringBuilder {
	return &ECIStringBuilder{currentCharset: ECIISO8859_1}
}

// AppendByte appends a single raw byte to the current segment.
func (b *ECIStringBuilder) AppendByte(value byte) {
	b.currentBytes = append(b.currentBytes, value)
}

// AppendBytes appends raw bytes to the current segment.
func (b *ECIStringBuilder) AppendBytes(value []byte) {
	b.currentBytes = append(b.currentBytes, value...)
}

// AppendString appends the bytes of value to the current segment. Unlike
// AppendCharacters, value is treated as encoded bytes in the current
// charset, not as already-decoded text.
func (b *ECIStringBuilder) AppendString(value string) {
	b.currentBytes = append(b.currentBytes, value...)
}

// AppendECI closes the current segment and opens a new one under eciValue.
// It fails if eciValue does not name a recognized ECI.
func (b *ECIStringBuilder) AppendECI(eciValue int) error {
	eci, err := GetECIByValue(eciValue)
	if err != nil {
		return err
	}
	b.encodeCurrentBytesIfAny()
	b.currentCharset = eci
	return nil
}

// AppendCharacters appends value as already-decoded text, bypassing the
// current charset entirely. Once called, the builder must not retroactively
// reinterpret value under a later ECI.
func (b *ECIStringBuilder) AppendCharacters(value string) {
	b.encodeCurrentBytesIfAny()
	b.result.WriteString(value)
}

// encodeCurrentBytesIfAny decodes the pending byte segment under the active
// charset and appends the result, then clears the segment. Decode failures
// in a single segment contribute nothing rather than aborting the build.
func (b *ECIStringBuilder) encodeCurrentBytesIfAny() {
	if len(b.currentBytes) == 0 {
		return
	}
	bytes := b.currentBytes
	b.currentBytes = nil

	if b.currentCharset == ECIUTF8 {
		b.result.Write(bytes)
		return
	}

	enc, ok := Encoding(b.currentCharset)
	if !ok {
		// US-ASCII, ISO8859_11 (unsupported), and anything else unmapped:
		// treated as one byte per character, matching Binary/Unknown segments.
		for _, c := range bytes {
			b.result.WriteByte(c)
		}
		return
	}
	decoded, err := enc.NewDecoder().Bytes(bytes)
	if err != nil {
		return
	}
	b.result.Write(decoded)
}

// Len returns the length, in bytes, of the string built so far.
func (b *ECIStringBuilder) Len() int {
	b.encodeCurrentBytesIfAny()
	return b.result.Len()
}

// IsEmpty reports whether nothing has been appended.
func (b *ECIStringBuilder) IsEmpty() bool {
	return len(b.currentBytes) == 0 && b.result.Len() == 0
}

// String finalizes and returns the decoded result. Further appends are
// still permitted; each call re-flushes any bytes accumulated since the
// last call.
func (b *ECIStringBuilder) String() string {
	b.encodeCurrentBytesIfAny()
	return b.result.String()
}
