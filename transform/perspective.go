// Package transform implements the geometric rectification step between a
// detected finder-pattern quadrilateral and the canonical, axis-aligned
// module grid a symbology decoder expects: a 3x3 projective transform
// (PerspectiveTransform) and the point-sampled grid reconstruction built on
// top of it (GridSampler).
package transform

// PerspectiveTransform is an immutable 3x3 projective map, built only
// through the square/quadrilateral constructors below and composed via
// Times. Coefficients are named a<row><col> following Wolberg's notation
// for the classic "mapping" construction (Digital Image Warping, §3.4.2).
type PerspectiveTransform struct {
	a11, a12, a13 float64
	a21, a22, a23 float64
	a31, a32, a33 float64
}

// SquareToQuadrilateral builds the transform carrying the unit square
// (0,0),(1,0),(1,1),(0,1) onto the quadrilateral (x0,y0)..(x3,y3), taken in
// the same corner order. When the quad's diagonals already sum to zero
// displacement (dx3 == dy3 == 0) the mapping is a pure affine one and the
// projective terms a13/a23 are left at zero.
func SquareToQuadrilateral(x0, y0, x1, y1, x2, y2, x3, y3 float64) *PerspectiveTransform {
	dx3 := x0 - x1 + x2 - x3
	dy3 := y0 - y1 + y2 - y3
	if dx3 == 0 && dy3 == 0 {
		return &PerspectiveTransform{
			a11: x1 - x0, a21: x2 - x1, a31: x0,
			a12: y1 - y0, a22: y2 - y1, a32: y0,
			a13: 0, a23: 0, a33: 1,
		}
	}

	dx1 := x1 - x2
	dx2 := x3 - x2
	dy1 := y1 - y2
	dy2 := y3 - y2
	denominator := dx1*dy2 - dx2*dy1
	a13 := (dx3*dy2 - dx2*dy3) / denominator
	a23 := (dx1*dy3 - dx3*dy1) / denominator
	return &PerspectiveTransform{
		a11: x1 - x0 + a13*x1, a21: x3 - x0 + a23*x3, a31: x0,
		a12: y1 - y0 + a13*y1, a22: y3 - y0 + a23*y3, a32: y0,
		a13: a13, a23: a23, a33: 1,
	}
}

// QuadrilateralToSquare builds the inverse of SquareToQuadrilateral by
// taking its adjoint, which equals its matrix inverse up to the common
// scale factor this projective representation already normalizes away.
func QuadrilateralToSquare(x0, y0, x1, y1, x2, y2, x3, y3 float64) *PerspectiveTransform {
	return SquareToQuadrilateral(x0, y0, x1, y1, x2, y2, x3, y3).adjoint()
}

// QuadrilateralToQuadrilateral composes a map from one arbitrary
// quadrilateral to another by routing through the unit square:
// src -> square -> dst.
func QuadrilateralToQuadrilateral(
	srcX0, srcY0, srcX1, srcY1, srcX2, srcY2, srcX3, srcY3 float64,
	dstX0, dstY0, dstX1, dstY1, dstX2, dstY2, dstX3, dstY3 float64,
) *PerspectiveTransform {
	srcToSquare := QuadrilateralToSquare(srcX0, srcY0, srcX1, srcY1, srcX2, srcY2, srcX3, srcY3)
	squareToDst := SquareToQuadrilateral(dstX0, dstY0, dstX1, dstY1, dstX2, dstY2, dstX3, dstY3)
	return squareToDst.Times(srcToSquare)
}

// adjoint returns the transpose of the cofactor matrix, which this package
// relies on as the inverse of a SquareToQuadrilateral result: the common
// determinant scale factor cancels out of both sides of the projective
// ratio mapPoint computes, so the adjoint alone is enough.
func (pt *PerspectiveTransform) adjoint() *PerspectiveTransform {
	return &PerspectiveTransform{
		a11: pt.a22*pt.a33 - pt.a23*pt.a32,
		a21: pt.a23*pt.a31 - pt.a21*pt.a33,
		a31: pt.a21*pt.a32 - pt.a22*pt.a31,
		a12: pt.a13*pt.a32 - pt.a12*pt.a33,
		a22: pt.a11*pt.a33 - pt.a13*pt.a31,
		a32: pt.a12*pt.a31 - pt.a11*pt.a32,
		a13: pt.a12*pt.a23 - pt.a13*pt.a22,
		a23: pt.a13*pt.a21 - pt.a11*pt.a23,
		a33: pt.a11*pt.a22 - pt.a12*pt.a21,
	}
}

// Times returns the matrix product pt * other — applying the result to a
// point is equivalent to applying other first, then pt.
func (pt *PerspectiveTransform) Times(other *PerspectiveTransform) *PerspectiveTransform {
	return &PerspectiveTransform{
		a11: pt.a11*other.a11 + pt.a21*other.a12 + pt.a31*other.a13,
		a21: pt.a11*other.a21 + pt.a21*other.a22 + pt.a31*other.a23,
		a31: pt.a11*other.a31 + pt.a21*other.a32 + pt.a31*other.a33,
		a12: pt.a12*other.a11 + pt.a22*other.a12 + pt.a32*other.a13,
		a22: pt.a12*other.a21 + pt.a22*other.a22 + pt.a32*other.a23,
		a32: pt.a12*other.a31 + pt.a22*other.a32 + pt.a32*other.a33,
		a13: pt.a13*other.a11 + pt.a23*other.a12 + pt.a33*other.a13,
		a23: pt.a13*other.a21 + pt.a23*other.a22 + pt.a33*other.a23,
		a33: pt.a13*other.a31 + pt.a23*other.a32 + pt.a33*other.a33,
	}
}

// mapPoint applies the projective map to a single (x, y) pair. A
// quadrilateral built from four nearly-collinear or coincident points can
// drive the denominator to zero, producing Inf/NaN; this package never
// screens for that here; GridSampler's subsequent bounds check on every
// sampled point is what catches a degenerate transform.
func (pt *PerspectiveTransform) mapPoint(x, y float64) (float64, float64) {
	denominator := pt.a13*x + pt.a23*y + pt.a33
	return (pt.a11*x + pt.a21*y + pt.a31) / denominator,
		(pt.a12*x + pt.a22*y + pt.a32) / denominator
}

// TransformPoints maps interleaved [x0, y0, x1, y1, ...] coordinates in
// place.
func (pt *PerspectiveTransform) TransformPoints(points []float64) {
	for i := 0; i+1 < len(points); i += 2 {
		points[i], points[i+1] = pt.mapPoint(points[i], points[i+1])
	}
}

// TransformPointsSeparate maps parallel x and y coordinate slices in
// place.
func (pt *PerspectiveTransform) TransformPointsSeparate(xs, ys []float64) {
	for i := range xs {
		xs[i], ys[i] = pt.mapPoint(xs[i], ys[i])
	}
}
