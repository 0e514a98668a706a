// Package binarizer turns continuous luminance samples into the 1-bit
// matrices the rest of this module operates on.
package binarizer

import (
	barscan "github.com/codewright/barscan"
	"github.com/codewright/barscan/bitutil"
)

const (
	histogramBits    = 5
	histogramShift   = 8 - histogramBits
	histogramBuckets = 1 << histogramBits
)

// GlobalHistogram picks a single black/white threshold for the whole image
// from a histogram of luminance samples. It is cheap and works well on
// flat, evenly lit images; Hybrid should be preferred whenever the source
// is expected to carry shadows or lighting gradients.
type GlobalHistogram struct {
	source  barscan.LuminanceSource
	samples []byte
	bucket  [histogramBuckets]int
}

// NewGlobalHistogram wraps source in a GlobalHistogram binarizer.
func NewGlobalHistogram(source barscan.LuminanceSource) *GlobalHistogram {
	return &GlobalHistogram{source: source}
}

// LuminanceSource returns the wrapped source.
func (g *GlobalHistogram) LuminanceSource() barscan.LuminanceSource { return g.source }

// Width is the wrapped source's width.
func (g *GlobalHistogram) Width() int { return g.source.Width() }

// Height is the wrapped source's height.
func (g *GlobalHistogram) Height() int { return g.source.Height() }

// BlackRow binarizes a single row. Rows of 3 or more samples are sharpened
// with a 3-tap (-1,4,-1)/2 filter before thresholding so that a lone dark
// module surrounded by light ones still crosses the black point; shorter
// rows fall back to a flat per-pixel comparison.
func (g *GlobalHistogram) BlackRow(y int, reuse *bitutil.BitArray) (*bitutil.BitArray, error) {
	width := g.source.Width()
	row := reuse
	if row == nil || row.Size() < width {
		row = bitutil.NewBitArray(width)
	} else {
		row.Clear()
	}

	g.resetScratch(width)
	samples := g.source.Row(y, g.samples)
	for x := 0; x < width; x++ {
		g.bucket[int(samples[x]&0xff)>>histogramShift]++
	}
	threshold, err := pickBlackPoint(g.bucket[:])
	if err != nil {
		return nil, err
	}

	if width < 3 {
		for x := 0; x < width; x++ {
			if int(samples[x]&0xff) < threshold {
				row.Set(x)
			}
		}
		return row, nil
	}

	left := int(samples[0] & 0xff)
	center := int(samples[1] & 0xff)
	for x := 1; x < width-1; x++ {
		right := int(samples[x+1] & 0xff)
		if ((center*4)-left-right)/2 < threshold {
			row.Set(x)
		}
		left = center
		center = right
	}
	return row, nil
}

// BlackMatrix binarizes the whole image against a single threshold derived
// from a histogram of its central 3/5 x 3/5 band (rows 1-4 of 5, columns
// 1/5 to 4/5), trading border accuracy for resistance to vignetting.
func (g *GlobalHistogram) BlackMatrix() (*bitutil.BitMatrix, error) {
	width, height := g.source.Width(), g.source.Height()
	matrix := bitutil.NewBitMatrixWithSize(width, height)

	g.resetScratch(width)
	for band := 1; band < 5; band++ {
		y := height * band / 5
		samples := g.source.Row(y, g.samples)
		right := (width * 4) / 5
		for x := width / 5; x < right; x++ {
			g.bucket[int(samples[x]&0xff)>>histogramShift]++
		}
	}
	threshold, err := pickBlackPoint(g.bucket[:])
	if err != nil {
		return nil, err
	}

	full := g.source.Matrix()
	for y := 0; y < height; y++ {
		rowStart := y * width
		for x := 0; x < width; x++ {
			if int(full[rowStart+x]&0xff) < threshold {
				matrix.Set(x, y)
			}
		}
	}
	return matrix, nil
}

func (g *GlobalHistogram) resetScratch(width int) {
	if len(g.samples) < width {
		g.samples = make([]byte, width)
	}
	g.bucket = [histogramBuckets]int{}
}

// pickBlackPoint finds the two most prominent luminance peaks (the tallest
// bucket, then the bucket whose population-weighted squared distance from
// it is largest) and returns the valley between them: a bucket that is
// sparsely populated relative to the tallest one, with the choice weighted
// toward the lighter of the two peaks. It fails with ErrNotFound when the
// peaks sit too close together to imply a genuine light/dark split, which
// includes every sample falling into a single bucket.
func pickBlackPoint(bucket []int) (int, error) {
	n := len(bucket)
	tallest := 0
	firstPeak, firstPeakHeight := 0, 0
	for i := 0; i < n; i++ {
		if bucket[i] > firstPeakHeight {
			firstPeak, firstPeakHeight = i, bucket[i]
		}
		if bucket[i] > tallest {
			tallest = bucket[i]
		}
	}

	secondPeak, secondPeakScore := firstPeak, 0
	for i := 0; i < n; i++ {
		d := i - firstPeak
		if score := bucket[i] * d * d; score > secondPeakScore {
			secondPeak, secondPeakScore = i, score
		}
	}
	if firstPeak > secondPeak {
		firstPeak, secondPeak = secondPeak, firstPeak
	}
	if secondPeak-firstPeak <= n/16 {
		return 0, barscan.ErrNotFound
	}

	valley, valleyScore := secondPeak-1, -1
	for i := secondPeak - 1; i > firstPeak; i-- {
		fromFirst := i - firstPeak
		score := fromFirst * fromFirst * (secondPeak - i) * (tallest - bucket[i])
		if score > valleyScore {
			valley, valleyScore = i, score
		}
	}
	return valley << histogramShift, nil
}
