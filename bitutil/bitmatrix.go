package bitutil

import (
	"math/bits"
	"strings"
)

// BitMatrix is a row-major grid of bits, width columns by height rows, with
// the origin at the top-left corner. Each row is packed into ceil(width/32)
// words; bit (x, y) lives in word y*RowSize()+x/32 at bit x&31.
type BitMatrix struct {
	width, height int
	rowWords      int
	words         []uint32
}

// NewBitMatrix allocates a square dimension x dimension matrix.
func NewBitMatrix(dimension int) *BitMatrix {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize allocates a width x height matrix, all bits unset.
// It panics if either dimension is not positive — a malformed matrix
// shape is a programmer error, not a recoverable condition, so the
// original's InvalidArgument is raised as a panic rather than threaded
// through every constructor call site.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic(ErrInvalidArgument)
	}
	rowWords := (width + 31) / 32
	return &BitMatrix{
		width:    width,
		height:   height,
		rowWords: rowWords,
		words:    make([]uint32, rowWords*height),
	}
}

func bitMatrixFromWords(width, height, rowWords int, words []uint32) *BitMatrix {
	return &BitMatrix{width: width, height: height, rowWords: rowWords, words: words}
}

// ParseBoolMatrix builds a BitMatrix whose dimensions match the given
// rectangular boolean grid, with a set bit wherever the grid is true.
func ParseBoolMatrix(grid [][]bool) *BitMatrix {
	height := len(grid)
	width := len(grid[0])
	m := NewBitMatrixWithSize(width, height)
	for y, row := range grid {
		for x, on := range row {
			if on {
				m.Set(x, y)
			}
		}
	}
	return m
}

// ParseStringMatrix tokenizes repr line by line using setToken/unsetToken,
// panicking on an unrecognized token or on rows of unequal length.
func ParseStringMatrix(repr, setToken, unsetToken string) *BitMatrix {
	cells := make([]bool, len(repr))
	parsed := 0
	rowStart := 0
	rowWidth := -1
	rows := 0

	closeRow := func() {
		if parsed == rowStart {
			return
		}
		if rowWidth == -1 {
			rowWidth = parsed - rowStart
		} else if parsed-rowStart != rowWidth {
			panic(ErrInvalidArgument)
		}
		rows++
	}

	for pos := 0; pos < len(repr); {
		switch {
		case repr[pos] == '\n' || repr[pos] == '\r':
			closeRow()
			rowStart = parsed
			pos++
		case len(repr) >= pos+len(setToken) && repr[pos:pos+len(setToken)] == setToken:
			pos += len(setToken)
			cells[parsed] = true
			parsed++
		case len(repr) >= pos+len(unsetToken) && repr[pos:pos+len(unsetToken)] == unsetToken:
			pos += len(unsetToken)
			cells[parsed] = false
			parsed++
		default:
			panic(ErrInvalidArgument)
		}
	}
	closeRow()

	m := NewBitMatrixWithSize(rowWidth, rows)
	for i := 0; i < parsed; i++ {
		if cells[i] {
			m.Set(i%rowWidth, i/rowWidth)
		}
	}
	return m
}

func (bm *BitMatrix) wordOffset(x, y int) int { return y*bm.rowWords + x/32 }

// Get reports whether the module at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	return bm.words[bm.wordOffset(x, y)]>>uint(x&31)&1 != 0
}

// Set marks the module at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	bm.words[bm.wordOffset(x, y)] |= 1 << uint(x&31)
}

// Unset clears the module at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	bm.words[bm.wordOffset(x, y)] &^= 1 << uint(x&31)
}

// Flip toggles the module at (x, y).
func (bm *BitMatrix) Flip(x, y int) {
	bm.words[bm.wordOffset(x, y)] ^= 1 << uint(x&31)
}

// FlipAll toggles every module in the matrix.
func (bm *BitMatrix) FlipAll() {
	for i := range bm.words {
		bm.words[i] = ^bm.words[i]
	}
}

// Xor toggles every module of bm wherever mask has the corresponding module
// set. It panics if the two matrices do not share width, height, and row
// packing.
func (bm *BitMatrix) Xor(mask *BitMatrix) {
	if bm.width != mask.width || bm.height != mask.height || bm.rowWords != mask.rowWords {
		panic(ErrInvalidArgument)
	}
	scratch := NewBitArray(bm.width)
	for y := 0; y < bm.height; y++ {
		offset := y * bm.rowWords
		maskRow := mask.Row(y, scratch).BitData()
		for x := 0; x < bm.rowWords; x++ {
			bm.words[offset+x] ^= maskRow[x]
		}
	}
}

// Clear unsets every module.
func (bm *BitMatrix) Clear() {
	for i := range bm.words {
		bm.words[i] = 0
	}
}

// SetRegion sets every module in the width x height rectangle whose
// top-left corner is (left, top). It panics if the rectangle has a
// negative origin, a non-positive extent, or runs outside the matrix.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if left < 0 || top < 0 || width < 1 || height < 1 {
		panic(ErrInvalidArgument)
	}
	right, bottom := left+width, top+height
	if right > bm.width || bottom > bm.height {
		panic(ErrInvalidArgument)
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowWords
		for x := left; x < right; x++ {
			bm.words[offset+x/32] |= 1 << uint(x&31)
		}
	}
}

// Row copies row y out into scratch, reusing it when it already has
// capacity for a row this wide; otherwise a fresh BitArray is allocated.
func (bm *BitMatrix) Row(y int, scratch *BitArray) *BitArray {
	if scratch == nil || scratch.Size() < bm.width {
		scratch = NewBitArray(bm.width)
	} else {
		scratch.Clear()
	}
	offset := y * bm.rowWords
	for x := 0; x < bm.rowWords; x++ {
		scratch.SetBulk(x*32, bm.words[offset+x])
	}
	return scratch
}

// SetRow overwrites row y with the first RowSize words of row.
func (bm *BitMatrix) SetRow(y int, row *BitArray) {
	copy(bm.words[y*bm.rowWords:], row.BitData()[:bm.rowWords])
}

// Rotate rotates the matrix in place by degrees, which must be a multiple
// of 90; it panics otherwise.
func (bm *BitMatrix) Rotate(degrees int) {
	switch ((degrees % 360) + 360) % 360 {
	case 0:
	case 90:
		bm.rotate90()
	case 180:
		bm.rotate180()
	case 270:
		bm.rotate90()
		bm.rotate180()
	default:
		panic(ErrInvalidArgument)
	}
}

// rotate180 swaps each row y with height-1-y, reversing both.
func (bm *BitMatrix) rotate180() {
	top := NewBitArray(bm.width)
	bottom := NewBitArray(bm.width)
	pairs := (bm.height + 1) / 2
	for i := 0; i < pairs; i++ {
		top = bm.Row(i, top)
		mirror := bm.height - 1 - i
		bottom = bm.Row(mirror, bottom)
		top.Reverse()
		bottom.Reverse()
		bm.SetRow(i, bottom)
		bm.SetRow(mirror, top)
	}
}

// rotate90 rotates the matrix a quarter turn counter-clockwise: column x of
// the original becomes row width-1-x of the result, read from its first row
// to its last, so the last column becomes the top row.
func (bm *BitMatrix) rotate90() {
	newWidth, newHeight := bm.height, bm.width
	newRowWords := (newWidth + 31) / 32
	rotated := make([]uint32, newRowWords*newHeight)

	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.words[bm.wordOffset(x, y)]>>uint(x&31)&1 == 0 {
				continue
			}
			dst := (newHeight-1-x)*newRowWords + y/32
			rotated[dst] |= 1 << uint(y&31)
		}
	}
	bm.width, bm.height, bm.rowWords, bm.words = newWidth, newHeight, newRowWords, rotated
}

// EnclosingRectangle returns the tight [left, top, width, height] bounding
// box of every set module, or nil if the matrix has no set modules.
func (bm *BitMatrix) EnclosingRectangle() []int {
	left, top := bm.width, bm.height
	right, bottom := -1, -1

	for y := 0; y < bm.height; y++ {
		for wx := 0; wx < bm.rowWords; wx++ {
			chunk := bm.words[y*bm.rowWords+wx]
			if chunk == 0 {
				continue
			}
			if y < top {
				top = y
			}
			if y > bottom {
				bottom = y
			}
			base := wx * 32
			if base < left {
				if lo := base + bits.TrailingZeros32(chunk); lo < left {
					left = lo
				}
			}
			if base+31 > right {
				if hi := base + 31 - bits.LeadingZeros32(chunk); hi > right {
					right = hi
				}
			}
		}
	}

	if right < left || bottom < top {
		return nil
	}
	return []int{left, top, right - left + 1, bottom - top + 1}
}

// TopLeftOnBit returns the [x, y] of the first set module in row-major
// order, or nil if the matrix is empty.
func (bm *BitMatrix) TopLeftOnBit() []int {
	word := 0
	for word < len(bm.words) && bm.words[word] == 0 {
		word++
	}
	if word == len(bm.words) {
		return nil
	}
	y := word / bm.rowWords
	x := (word%bm.rowWords)*32 + bits.TrailingZeros32(bm.words[word])
	return []int{x, y}
}

// BottomRightOnBit returns the [x, y] of the last set module in row-major
// order, or nil if the matrix is empty.
func (bm *BitMatrix) BottomRightOnBit() []int {
	word := len(bm.words) - 1
	for word >= 0 && bm.words[word] == 0 {
		word--
	}
	if word < 0 {
		return nil
	}
	y := word / bm.rowWords
	x := (word%bm.rowWords)*32 + 31 - bits.LeadingZeros32(bm.words[word])
	return []int{x, y}
}

// Width returns the matrix width in modules.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the matrix height in modules.
func (bm *BitMatrix) Height() int { return bm.height }

// RowSize returns the number of uint32 words used per row.
func (bm *BitMatrix) RowSize() int { return bm.rowWords }

// Clone returns an independent copy of bm.
func (bm *BitMatrix) Clone() *BitMatrix {
	words := make([]uint32, len(bm.words))
	copy(words, bm.words)
	return bitMatrixFromWords(bm.width, bm.height, bm.rowWords, words)
}

// String renders the matrix using "X " for set modules and two spaces for
// unset ones, one line per row.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars renders the matrix using the given set/unset tokens.
func (bm *BitMatrix) StringWithChars(setToken, unsetToken string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setToken)
			} else {
				sb.WriteString(unsetToken)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals reports whether bm and other share the same dimensions and every
// set module.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height || bm.rowWords != other.rowWords {
		return false
	}
	for i := range bm.words {
		if bm.words[i] != other.words[i] {
			return false
		}
	}
	return true
}
