// Package barscan decodes and encodes 2D and 1D barcode symbols from
// luminance images: binarization, perspective rectification, and
// ECI-aware character assembly, with per-symbology readers and writers
// wired in as external collaborators through the Reader and Writer
// interfaces.
package barscan

import (
	"math"
	"time"

	"github.com/codewright/barscan/bitutil"
)

// Format identifies a barcode symbology. barscan itself only carries this
// vocabulary and the generic plumbing around it — no Format has a
// built-in Reader or Writer.
type Format int

const (
	FormatQRCode Format = iota
	FormatPDF417
	FormatCode128
	FormatCode39
	FormatEAN13
	FormatEAN8
	FormatUPCA
	FormatUPCE
	FormatITF
	FormatCodabar
	FormatDataMatrix
	FormatAztec
)

var formatNames = map[Format]string{
	FormatQRCode:     "QR_CODE",
	FormatPDF417:     "PDF_417",
	FormatCode128:    "CODE_128",
	FormatCode39:     "CODE_39",
	FormatEAN13:      "EAN_13",
	FormatEAN8:       "EAN_8",
	FormatUPCA:       "UPC_A",
	FormatUPCE:       "UPC_E",
	FormatITF:        "ITF",
	FormatCodabar:    "CODABAR",
	FormatDataMatrix: "DATA_MATRIX",
	FormatAztec:      "AZTEC",
}

// String returns the symbology's canonical name, or "UNKNOWN" for any
// value outside the declared constants.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "UNKNOWN"
}

// ResultMetadataKey identifies one piece of out-of-band information a
// Reader may attach to a Result alongside the decoded text.
type ResultMetadataKey int

const (
	MetadataOther ResultMetadataKey = iota
	MetadataOrientation
	MetadataByteSegments
	MetadataErrorCorrectionLevel
	MetadataErrorsCorrected
	MetadataErasuresCorrected
	MetadataIssueNumber
	MetadataSuggestedPrice
	MetadataPossibleCountry
	MetadataUPCEANExtension
	MetadataPDF417ExtraMetadata
	MetadataStructuredAppendSequence
	MetadataStructuredAppendParity
	MetadataSymbologyIdentifier
)

// ResultPoint is a point of interest a Reader found while locating or
// decoding a symbol (a finder pattern center, a corner, an alignment
// module), reported back for diagnostics or overlay rendering.
type ResultPoint struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b ResultPoint) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CrossProductZ returns the z-component of the cross product of vectors
// a->b and a->c: its sign tells which way b->c turns relative to a->b.
func CrossProductZ(a, b, c ResultPoint) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// OrderBestPatterns reorders three finder-pattern centers into
// (top-left, top-right, bottom-left) order: the point opposite the
// longest of the three pairwise distances becomes the top-left anchor,
// and the remaining two are swapped if necessary so the anchor-to-B,
// anchor-to-C turn is clockwise.
func OrderBestPatterns(patterns [3]ResultPoint) [3]ResultPoint {
	ab := Distance(patterns[0], patterns[1])
	bc := Distance(patterns[1], patterns[2])
	ac := Distance(patterns[0], patterns[2])

	var topLeft, pointB, pointC ResultPoint
	switch {
	case bc >= ab && bc >= ac:
		topLeft, pointB, pointC = patterns[0], patterns[1], patterns[2]
	case ac >= ab && ac >= bc:
		topLeft, pointB, pointC = patterns[1], patterns[0], patterns[2]
	default:
		topLeft, pointB, pointC = patterns[2], patterns[0], patterns[1]
	}

	if CrossProductZ(topLeft, pointB, pointC) < 0 {
		pointB, pointC = pointC, pointB
	}
	return [3]ResultPoint{topLeft, pointB, pointC}
}

// Result is what a Reader hands back for a successfully decoded symbol.
type Result struct {
	Text      string
	RawBytes  []byte
	NumBits   int
	Points    []ResultPoint
	Format    Format
	Metadata  map[ResultMetadataKey]interface{}
	Timestamp time.Time
}

// NewResult builds a Result, deriving NumBits from rawBytes and stamping
// Timestamp at construction time.
func NewResult(text string, rawBytes []byte, points []ResultPoint, format Format) *Result {
	r := &Result{
		Text:      text,
		RawBytes:  rawBytes,
		Points:    points,
		Format:    format,
		Metadata:  make(map[ResultMetadataKey]interface{}),
		Timestamp: time.Now(),
	}
	if rawBytes != nil {
		r.NumBits = 8 * len(rawBytes)
	}
	return r
}

// PutMetadata records one metadata value, overwriting any prior value
// under the same key.
func (r *Result) PutMetadata(key ResultMetadataKey, value interface{}) {
	r.Metadata[key] = value
}

// AddResultPoints appends additional result points, e.g. from a second
// decode pass that recovers extra structured-append fragments.
func (r *Result) AddResultPoints(points []ResultPoint) {
	r.Points = append(r.Points, points...)
}

// BinaryBitmap pairs a Binarizer with a lazily-computed, cached full
// binarization of it. It is the type a Reader's Decode method receives.
type BinaryBitmap struct {
	binarizer Binarizer
	cached    *bitutil.BitMatrix
}

// NewBinaryBitmap wraps binarizer for a Reader to decode from.
func NewBinaryBitmap(binarizer Binarizer) *BinaryBitmap {
	return &BinaryBitmap{binarizer: binarizer}
}

func (b *BinaryBitmap) Width() int  { return b.binarizer.Width() }
func (b *BinaryBitmap) Height() int { return b.binarizer.Height() }

// BlackRow binarizes a single row without forcing the full matrix to be
// computed.
func (b *BinaryBitmap) BlackRow(y int, reuse *bitutil.BitArray) (*bitutil.BitArray, error) {
	return b.binarizer.BlackRow(y, reuse)
}

// BlackMatrix returns the full binarized image, computing it once and
// reusing the result on subsequent calls.
func (b *BinaryBitmap) BlackMatrix() (*bitutil.BitMatrix, error) {
	if b.cached != nil {
		return b.cached, nil
	}
	m, err := b.binarizer.BlackMatrix()
	if err != nil {
		return nil, err
	}
	b.cached = m
	return m, nil
}
