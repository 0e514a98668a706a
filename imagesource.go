package barscan

import (
	"image"
	"image/color"
)

// ImageLuminanceSource adapts a decoded Go image into a LuminanceSource by
// flattening it to 8-bit greyscale once, at construction time, rather than
// converting pixels on every Row/Matrix call.
type ImageLuminanceSource struct {
	gray          []byte
	width, height int
}

// NewImageLuminanceSource converts img to greyscale using the same
// weighting ZXing's BufferedImageLuminanceSource uses —
// (306*R + 601*G + 117*B + 0x200) >> 10 on 8-bit components — so that
// luminance values match what a Java decoder of the same image would see.
// Fully transparent pixels are forced to white rather than averaged in.
func NewImageLuminanceSource(img image.Image) *ImageLuminanceSource {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray[y*w+x] = grayscalePixel(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return &ImageLuminanceSource{gray: gray, width: w, height: h}
}

func grayscalePixel(c color.Color) byte {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0xFF
	}
	r8, g8, b8 := r>>8, g>>8, b>>8
	return byte((306*r8 + 601*g8 + 117*b8 + 0x200) >> 10)
}

// NewGrayImageLuminanceSource builds a source directly from an *image.Gray,
// copying its Pix buffer without a per-pixel color conversion. A matching
// stride and zero origin let it copy in one shot instead of row by row.
func NewGrayImageLuminanceSource(img *image.Gray) *ImageLuminanceSource {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]byte, w*h)

	if img.Stride == w && bounds.Min.X == 0 && bounds.Min.Y == 0 {
		copy(gray, img.Pix[:w*h])
		return &ImageLuminanceSource{gray: gray, width: w, height: h}
	}

	for y := 0; y < h; y++ {
		rowStart := y * img.Stride
		copy(gray[y*w:], img.Pix[rowStart:rowStart+w])
	}
	return &ImageLuminanceSource{gray: gray, width: w, height: h}
}

// Width returns the image width.
func (s *ImageLuminanceSource) Width() int { return s.width }

// Height returns the image height.
func (s *ImageLuminanceSource) Height() int { return s.height }

// Row copies row y's luminance values, reusing dst when it is long enough.
func (s *ImageLuminanceSource) Row(y int, dst []byte) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	if dst == nil || len(dst) < s.width {
		dst = make([]byte, s.width)
	}
	start := y * s.width
	copy(dst, s.gray[start:start+s.width])
	return dst
}

// Matrix returns a defensive copy of the whole greyscale buffer.
func (s *ImageLuminanceSource) Matrix() []byte {
	out := make([]byte, len(s.gray))
	copy(out, s.gray)
	return out
}

// RotateCounterClockwise returns a new source holding this image rotated 90
// degrees counterclockwise, for retrying a 1D read along the other axis:
// source (x, y) lands at destination (y, width-1-x).
func (s *ImageLuminanceSource) RotateCounterClockwise() *ImageLuminanceSource {
	rw, rh := s.height, s.width
	rotated := make([]byte, rw*rh)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			rotated[(s.width-1-x)*rw+y] = s.gray[y*s.width+x]
		}
	}
	return &ImageLuminanceSource{gray: rotated, width: rw, height: rh}
}

// bitGrid is the subset of BitMatrix that BitMatrixToImage needs, kept
// narrow so callers outside bitutil can pass any compatible type.
type bitGrid interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// BitMatrixToImage rasterizes a module grid into a grayscale image: set
// modules render black, unset modules render white.
func BitMatrixToImage(grid bitGrid) *image.Gray {
	w, h := grid.Width(), grid.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			shade := color.Gray{Y: 255}
			if grid.Get(x, y) {
				shade = color.Gray{Y: 0}
			}
			img.SetGray(x, y, shade)
		}
	}
	return img
}
