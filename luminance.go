package barscan

import "github.com/codewright/barscan/bitutil"

// LuminanceSource exposes an image as 8-bit greyscale samples, row-major.
// Implementations need not hold decoded pixels in memory up front — Row
// and Matrix may convert lazily — but repeated calls must return
// consistent values.
type LuminanceSource interface {
	// Row fills dst with row y's samples, reusing it when large enough,
	// and returns the slice actually written to.
	Row(y int, dst []byte) []byte

	// Matrix returns every sample, row-major, as a fresh slice the
	// caller may mutate freely.
	Matrix() []byte

	Width() int
	Height() int
}

// Binarizer turns a LuminanceSource's greyscale samples into 1-bit
// modules. Implementations may cache a computed BlackMatrix across calls;
// BlackRow need not be consistent with a cached BlackMatrix's rows if the
// two use different thresholding strategies.
type Binarizer interface {
	// BlackRow binarizes row y, reusing reuse when it is large enough.
	BlackRow(y int, reuse *bitutil.BitArray) (*bitutil.BitArray, error)

	// BlackMatrix binarizes the whole image.
	BlackMatrix() (*bitutil.BitMatrix, error)

	// LuminanceSource returns the source this Binarizer reads from.
	LuminanceSource() LuminanceSource

	Width() int
	Height() int
}
