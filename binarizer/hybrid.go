package binarizer

import (
	barscan "github.com/codewright/barscan"
	"github.com/codewright/barscan/bitutil"
)

const (
	tileShift       = 3
	tileSide        = 1 << tileShift
	tileMask        = tileSide - 1
	minHybridExtent = tileSide * 5
	flatRangeLimit  = 24
)

// Hybrid thresholds each tileSide x tileSide block of the image against a
// black point smoothed over its 5x5 tile neighborhood, rather than a
// single image-wide value. It copes with shadows and lighting gradients
// that defeat GlobalHistogram, at the cost of needing a minimum image
// size to have enough tiles to average over.
type Hybrid struct {
	GlobalHistogram
	cached *bitutil.BitMatrix
}

// NewHybrid wraps source in a Hybrid binarizer.
func NewHybrid(source barscan.LuminanceSource) *Hybrid {
	return &Hybrid{GlobalHistogram: *NewGlobalHistogram(source)}
}

// BlackMatrix returns the binarized image, computing and caching it on
// first call. Images smaller than minHybridExtent in either dimension
// don't carry enough tiles for local averaging and fall back to the
// inherited GlobalHistogram.BlackMatrix.
func (h *Hybrid) BlackMatrix() (*bitutil.BitMatrix, error) {
	if h.cached != nil {
		return h.cached, nil
	}
	source := h.LuminanceSource()
	width, height := source.Width(), source.Height()

	if width < minHybridExtent || height < minHybridExtent {
		whole, err := h.GlobalHistogram.BlackMatrix()
		if err != nil {
			return nil, err
		}
		h.cached = whole
		return h.cached, nil
	}

	samples := source.Matrix()
	tilesAcross := ceilDiv(width)
	tilesDown := ceilDiv(height)
	tilePoints := tileBlackPoints(samples, tilesAcross, tilesDown, width, height)

	out := bitutil.NewBitMatrixWithSize(width, height)
	applyTileThresholds(samples, tilesAcross, tilesDown, width, height, tilePoints, out)
	h.cached = out
	return h.cached, nil
}

func ceilDiv(n int) int {
	q := n >> tileShift
	if n&tileMask != 0 {
		q++
	}
	return q
}

// applyTileThresholds thresholds every tile against the mean of the 5x5
// neighborhood of per-tile black points centered on it, clamping that
// neighborhood into the valid tile-index range via clampCenter. The clamp
// never needs to go below index 2 in practice: minHybridExtent and
// tileSide together guarantee at least 5 tiles in each dimension whenever
// this function runs.
func applyTileThresholds(samples []byte, tilesAcross, tilesDown, width, height int,
	tilePoints [][]int, out *bitutil.BitMatrix) {
	lastRowOffset := height - tileSide
	lastColOffset := width - tileSide
	for ty := 0; ty < tilesDown; ty++ {
		rowOffset := ty << tileShift
		if rowOffset > lastRowOffset {
			rowOffset = lastRowOffset
		}
		cy := clampCenter(ty, tilesDown-3)
		for tx := 0; tx < tilesAcross; tx++ {
			colOffset := tx << tileShift
			if colOffset > lastColOffset {
				colOffset = lastColOffset
			}
			cx := clampCenter(tx, tilesAcross-3)
			sum := 0
			for dy := -2; dy <= 2; dy++ {
				row := tilePoints[cy+dy]
				sum += row[cx-2] + row[cx-1] + row[cx] + row[cx+1] + row[cx+2]
			}
			thresholdTile(samples, colOffset, rowOffset, sum/25, width, out)
		}
	}
}

func clampCenter(i, upper int) int {
	if i < 2 {
		return 2
	}
	if i > upper {
		return upper
	}
	return i
}

func thresholdTile(samples []byte, colOffset, rowOffset, threshold, stride int, out *bitutil.BitMatrix) {
	for dy, offset := 0, rowOffset*stride+colOffset; dy < tileSide; dy, offset = dy+1, offset+stride {
		for dx := 0; dx < tileSide; dx++ {
			if int(samples[offset+dx]&0xFF) <= threshold {
				out.Set(colOffset+dx, rowOffset+dy)
			}
		}
	}
}

// tileBlackPoints computes one black-point estimate per tile: the mean
// sample value, unless the tile's dynamic range is too flat (<=
// flatRangeLimit) to trust a mean, in which case it falls back to half the
// tile's minimum, pulled toward the already-computed black point of its
// upper and left neighbors when that neighbor average is higher.
func tileBlackPoints(samples []byte, tilesAcross, tilesDown, width, height int) [][]int {
	lastRowOffset := height - tileSide
	lastColOffset := width - tileSide
	points := make([][]int, tilesDown)
	for i := range points {
		points[i] = make([]int, tilesAcross)
	}

	for ty := 0; ty < tilesDown; ty++ {
		rowOffset := ty << tileShift
		if rowOffset > lastRowOffset {
			rowOffset = lastRowOffset
		}
		for tx := 0; tx < tilesAcross; tx++ {
			colOffset := tx << tileShift
			if colOffset > lastColOffset {
				colOffset = lastColOffset
			}
			sum, lo, hi := 0, 0xFF, 0
			for dy, offset := 0, rowOffset*width+colOffset; dy < tileSide; dy, offset = dy+1, offset+width {
				for dx := 0; dx < tileSide; dx++ {
					v := int(samples[offset+dx] & 0xFF)
					sum += v
					if v < lo {
						lo = v
					}
					if v > hi {
						hi = v
					}
				}
				if hi-lo > flatRangeLimit {
					for dy, offset = dy+1, offset+width; dy < tileSide; dy, offset = dy+1, offset+width {
						for dx := 0; dx < tileSide; dx++ {
							sum += int(samples[offset+dx] & 0xFF)
						}
					}
				}
			}

			mean := sum >> (tileShift * 2)
			if hi-lo <= flatRangeLimit {
				mean = lo / 2
				if ty > 0 && tx > 0 {
					neighborMean := (points[ty-1][tx] + 2*points[ty][tx-1] + points[ty-1][tx-1]) / 4
					if lo < neighborMean {
						mean = neighborMean
					}
				}
			}
			points[ty][tx] = mean
		}
	}
	return points
}
