package charset

import "fmt"

const (
	fnc1Sentinel = 1000
	eciBase      = 256
	costPerECI   = 3
)

// ECIInput is the read interface over a token sequence produced by
// MinimalECIInput: a mix of plain bytes, FNC1 markers, and ECI switches,
// consumed by symbology encoders that need to walk it position by position.
type ECIInput interface {
	// Length returns the number of tokens (bytes, FNC1s, or ECIs).
	Length() int
	// CharAt returns the byte value at index i. It fails if i holds an ECI.
	CharAt(i int) (byte, error)
	// IsECI reports whether the token at index i is an ECI designator.
	IsECI(i int) bool
	// GetECIValue returns the ECI value at index i. It fails if i is not an ECI.
	GetECIValue(i int) (int, error)
	// SubSequence returns the bytes in [start, end). It fails if any
	// position in the range holds an ECI.
	SubSequence(start, end int) ([]byte, error)
	// IsFNC1 reports whether the token at index i is the FNC1 sentinel.
	IsFNC1(i int) bool
	// HaveNCharacters reports whether the next n tokens starting at i are
	// all non-ECI.
	HaveNCharacters(i, n int) bool
}

// MinimalECIInput turns a character string into the shortest possible
// sequence of ECI designators and bytes, using a Dijkstra shortest-path
// search over a lattice of (position, encoder) vertices. Every edge costs
// the number of bytes the character takes to encode, plus costPerECI when
// it requires switching encoders from the previous edge.
type MinimalECIInput struct {
	tokens []uint16
	fnc1   rune
}

// NewMinimalECIInput builds the minimal token sequence for s. priorityCharset
// may be nil to let the search pick freely; fnc1 is the rune within s that
// stands for an embedded FNC1 marker, or a negative rune if s has none.
func NewMinimalECIInput(s string, priorityCharset *ECI, fnc1 rune) *MinimalECIInput {
	runes := []rune(s)
	encoders := NewECIEncoderSet(s, priorityCharset, fnc1)

	var tokens []uint16
	if encoders.Len() == 1 {
		// The entire input fits in ISO-8859-1: no ECI switches are needed.
		tokens = make([]uint16, len(runes))
		for i, c := range runes {
			if c == fnc1 {
				tokens[i] = fnc1Sentinel
			} else {
				tokens[i] = uint16(c)
			}
		}
	} else {
		tokens = encodeMinimally(runes, encoders, fnc1)
	}
	return &MinimalECIInput{tokens: tokens, fnc1: fnc1}
}

// Length returns the number of tokens in the sequence.
func (m *MinimalECIInput) Length() int { return len(m.tokens) }

// FNC1Character returns the rune standing for FNC1, or a negative value if
// this input carries none.
func (m *MinimalECIInput) FNC1Character() rune { return m.fnc1 }

// IsFNC1 reports whether the token at index i is the FNC1 sentinel.
func (m *MinimalECIInput) IsFNC1(i int) bool {
	return m.tokens[i] == fnc1Sentinel
}

// IsECI reports whether the token at index i is an ECI designator.
func (m *MinimalECIInput) IsECI(i int) bool {
	return m.tokens[i] >= eciBase && m.tokens[i] != fnc1Sentinel
}

// CharAt returns the byte value at index i, substituting back the FNC1 rune
// if that position holds the sentinel.
func (m *MinimalECIInput) CharAt(i int) (byte, error) {
	if i < 0 || i >= len(m.tokens) {
		return 0, ErrInvalidArgument
	}
	if m.IsECI(i) {
		return 0, ErrInvalidArgument
	}
	if m.IsFNC1(i) {
		return byte(m.fnc1), nil
	}
	return byte(m.tokens[i]), nil
}

// GetECIValue returns the ECI value at index i.
func (m *MinimalECIInput) GetECIValue(i int) (int, error) {
	if i < 0 || i >= len(m.tokens) {
		return 0, ErrInvalidArgument
	}
	if !m.IsECI(i) {
		return 0, ErrInvalidArgument
	}
	return int(m.tokens[i]) - eciBase, nil
}

// SubSequence returns the bytes in [start, end). It fails if the range
// contains an ECI designator.
func (m *MinimalECIInput) SubSequence(start, end int) ([]byte, error) {
	if start < 0 || start > end || end > len(m.tokens) {
		return nil, ErrInvalidArgument
	}
	out := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		c, err := m.CharAt(i)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// HaveNCharacters reports whether the next n tokens starting at i are all
// non-ECI.
func (m *MinimalECIInput) HaveNCharacters(i, n int) bool {
	if i+n-1 >= len(m.tokens) {
		return false
	}
	for j := 0; j < n; j++ {
		if m.IsECI(i + j) {
			return false
		}
	}
	return true
}

func (m *MinimalECIInput) String() string {
	out := ""
	for i := 0; i < m.Length(); i++ {
		if i > 0 {
			out += ", "
		}
		if m.IsECI(i) {
			v, _ := m.GetECIValue(i)
			out += fmt.Sprintf("ECI(%d)", v)
		} else if c, _ := m.CharAt(i); c < 128 {
			out += fmt.Sprintf("'%c'", c)
		} else {
			out += fmt.Sprintf("0x%X", c)
		}
	}
	return out
}

// eciEdge is one vertex's best incoming edge in the encoder lattice: the
// character it carries, which encoder produced it, the predecessor edge
// (nil at the start of the string), and the cumulative cost to reach here.
// Chaining these by pointer rather than by arena index is safe because the
// lattice is a DAG walked strictly forward in position: no cycle can form.
type eciEdge struct {
	ch              rune
	encoderIndex    int
	prev            *eciEdge
	cachedTotalSize int
}

func (e *eciEdge) isFNC1() bool { return e.ch == fnc1Sentinel }

func newECIEdge(ch rune, encoders *ECIEncoderSet, encoderIndex int, prev *eciEdge, fnc1 rune) *eciEdge {
	var size int
	if ch == fnc1 {
		size = 1
	} else {
		size = len(encoders.EncodeChar(ch, encoderIndex))
	}
	prevEncoderIndex := 0
	if prev != nil {
		prevEncoderIndex = prev.encoderIndex
		size += prev.cachedTotalSize
	}
	if prevEncoderIndex != encoderIndex {
		size += costPerECI
	}
	storedCh := ch
	if ch == fnc1 {
		storedCh = fnc1Sentinel
	}
	return &eciEdge{ch: storedCh, encoderIndex: encoderIndex, prev: prev, cachedTotalSize: size}
}

func addECIEdge(column []*eciEdge, encoderIndex int, edge *eciEdge) {
	if column[encoderIndex] == nil || column[encoderIndex].cachedTotalSize > edge.cachedTotalSize {
		column[encoderIndex] = edge
	}
}

func addECIEdges(runes []rune, encoders *ECIEncoderSet, edges [][]*eciEdge, from int, previous *eciEdge, fnc1 rune) {
	ch := runes[from]

	start, end := 0, encoders.Len()
	if p := encoders.PriorityEncoderIndex(); p >= 0 && (ch == fnc1 || encoders.CanEncode(ch, p)) {
		start, end = p, p+1
	}

	for i := start; i < end; i++ {
		if ch == fnc1 || encoders.CanEncode(ch, i) {
			addECIEdge(edges[from+1], i, newECIEdge(ch, encoders, i, previous, fnc1))
		}
	}
}

// encodeMinimally runs the Dijkstra relaxation over the (position, encoder)
// lattice and back-traces the cheapest path from the end to the start,
// prepending an ECI marker wherever the chosen encoder changes.
func encodeMinimally(runes []rune, encoders *ECIEncoderSet, fnc1 rune) []uint16 {
	inputLength := len(runes)

	edges := make([][]*eciEdge, inputLength+1)
	for i := range edges {
		edges[i] = make([]*eciEdge, encoders.Len())
	}
	addECIEdges(runes, encoders, edges, 0, nil, fnc1)

	for i := 0; i < inputLength; i++ {
		for j := 0; j < encoders.Len(); j++ {
			if edges[i][j] != nil {
				addECIEdges(runes, encoders, edges, i, edges[i][j], fnc1)
			}
		}
		// Bound memory to the current and previous columns, per the
		// encoder-lattice invariant: edges only ever point one position back.
		if i > 0 {
			edges[i-1] = nil
		}
	}

	minimalJ := -1
	minimalSize := -1
	for j := 0; j < encoders.Len(); j++ {
		if e := edges[inputLength][j]; e != nil {
			if minimalJ < 0 || e.cachedTotalSize < minimalSize {
				minimalJ = j
				minimalSize = e.cachedTotalSize
			}
		}
	}
	if minimalJ < 0 {
		panic(fmt.Sprintf("charset: failed to encode %q", string(runes)))
	}

	var tokens []uint16
	current := edges[inputLength][minimalJ]
	for current != nil {
		if current.isFNC1() {
			tokens = append([]uint16{fnc1Sentinel}, tokens...)
		} else {
			b := encoders.EncodeChar(current.ch, current.encoderIndex)
			chunk := make([]uint16, len(b))
			for i, v := range b {
				chunk[i] = uint16(v)
			}
			tokens = append(chunk, tokens...)
		}
		prevEncoderIndex := 0
		if current.prev != nil {
			prevEncoderIndex = current.prev.encoderIndex
		}
		if prevEncoderIndex != current.encoderIndex {
			eciMarker := uint16(eciBase + encoders.ECIValue(current.encoderIndex))
			tokens = append([]uint16{eciMarker}, tokens...)
		}
		current = current.prev
	}
	return tokens
}
