package transform

import (
	"errors"

	"github.com/codewright/barscan/bitutil"
)

// ErrNotFound signals that a requested grid could not be sampled: either
// the caller asked for a non-positive dimension, or a transformed sample
// point landed too far outside the source image to trust. It is always a
// "try a different candidate" signal, never a fault.
var ErrNotFound = errors.New("transform: not found")

// GridSampler rasterizes a dimensionX x dimensionY module grid out of a
// larger, possibly perspective-distorted source matrix.
type GridSampler interface {
	// SampleGrid maps the four corners (p1..p4) of the destination grid
	// onto the four corresponding points in the source image and samples
	// through the resulting transform.
	SampleGrid(source *bitutil.BitMatrix, dimensionX, dimensionY int,
		dstX1, dstY1, dstX2, dstY2, dstX3, dstY3, dstX4, dstY4 float64,
		srcX1, srcY1, srcX2, srcY2, srcX3, srcY3, srcX4, srcY4 float64,
	) (*bitutil.BitMatrix, error)

	// SampleGridTransform samples through an already-built transform.
	SampleGridTransform(source *bitutil.BitMatrix, dimensionX, dimensionY int,
		t *PerspectiveTransform,
	) (*bitutil.BitMatrix, error)
}

// DefaultGridSampler is the only GridSampler implementation this package
// provides.
type DefaultGridSampler struct{}

// SampleGrid composes the dst->src quadrilateral transform and delegates
// to SampleGridTransform.
func (DefaultGridSampler) SampleGrid(source *bitutil.BitMatrix, dimensionX, dimensionY int,
	dstX1, dstY1, dstX2, dstY2, dstX3, dstY3, dstX4, dstY4 float64,
	srcX1, srcY1, srcX2, srcY2, srcX3, srcY3, srcX4, srcY4 float64,
) (*bitutil.BitMatrix, error) {
	t := QuadrilateralToQuadrilateral(
		dstX1, dstY1, dstX2, dstY2, dstX3, dstY3, dstX4, dstY4,
		srcX1, srcY1, srcX2, srcY2, srcX3, srcY3, srcX4, srcY4)
	return DefaultGridSampler{}.SampleGridTransform(source, dimensionX, dimensionY, t)
}

// SampleGridTransform fills one output row at a time: it builds the
// (x+0.5, y+0.5) sample centers for that row, maps them through t, nudges
// any point that landed just outside the source image back onto it, and
// copies whichever source pixel each nudged point lands on into the
// destination matrix.
func (DefaultGridSampler) SampleGridTransform(source *bitutil.BitMatrix, dimensionX, dimensionY int,
	t *PerspectiveTransform,
) (*bitutil.BitMatrix, error) {
	if dimensionX <= 0 || dimensionY <= 0 {
		return nil, ErrNotFound
	}
	dst := bitutil.NewBitMatrixWithSize(dimensionX, dimensionY)
	rowPoints := make([]float64, 2*dimensionX)
	for y := 0; y < dimensionY; y++ {
		sampleY := float64(y) + 0.5
		for i := 0; i < len(rowPoints); i += 2 {
			rowPoints[i] = float64(i/2) + 0.5
			rowPoints[i+1] = sampleY
		}
		t.TransformPoints(rowPoints)
		if err := nudgePointsOntoImage(source, rowPoints); err != nil {
			return nil, err
		}
		for i := 0; i < len(rowPoints); i += 2 {
			sx, sy := int(rowPoints[i]), int(rowPoints[i+1])
			if sx < 0 || sx >= source.Width() || sy < 0 || sy >= source.Height() {
				return nil, ErrNotFound
			}
			if source.Get(sx, sy) {
				dst.Set(i/2, y)
			}
		}
	}
	return dst, nil
}

// nudgePointsOntoImage clamps any sample point that landed exactly one
// unit outside image bounds back onto the nearest edge pixel, in place.
// Points further outside than that fail the whole row with ErrNotFound.
//
// The nudging sweeps from both ends of the point list inward and stops
// each sweep at the first point it doesn't need to touch, rather than
// visiting every point unconditionally: once a run of interior points is
// reached, later (or earlier) points in that direction are assumed sound.
// Both sweeps use a plain forward/backward int index rather than an
// unsigned offset, so the reverse sweep never wraps past zero.
func nudgePointsOntoImage(image *bitutil.BitMatrix, points []float64) error {
	width, height := image.Width(), image.Height()
	last := len(points) - 2

	if err := nudgeSweep(points, 0, last, 2, width, height); err != nil {
		return err
	}
	return nudgeSweep(points, last, 0, -2, width, height)
}

func nudgeSweep(points []float64, from, to, step, width, height int) error {
	nudgedLast := true
	for i := from; nudgedLast && (step > 0 && i <= to || step < 0 && i >= to); i += step {
		x, y := int(points[i]), int(points[i+1])
		if x < -1 || x > width || y < -1 || y > height {
			return ErrNotFound
		}
		nudgedLast = false
		switch x {
		case -1:
			points[i] = 0
			nudgedLast = true
		case width:
			points[i] = float64(width - 1)
			nudgedLast = true
		}
		switch y {
		case -1:
			points[i+1] = 0
			nudgedLast = true
		case height:
			points[i+1] = float64(height - 1)
			nudgedLast = true
		}
	}
	return nil
}
