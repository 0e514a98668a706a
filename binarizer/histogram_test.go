package binarizer

import "testing"

// stripedSource is a LuminanceSource made of alternating dark/light
// vertical stripes, wide enough to exercise both BlackRow's sharpening
// path and BlackMatrix's central-band sampling.
type stripedSource struct {
	width, height int
	dark, light   byte
	stripe        int
}

func (s *stripedSource) Width() int  { return s.width }
func (s *stripedSource) Height() int { return s.height }

func (s *stripedSource) Row(y int, dst []byte) []byte {
	if dst == nil || len(dst) < s.width {
		dst = make([]byte, s.width)
	}
	for x := 0; x < s.width; x++ {
		if (x/s.stripe)%2 == 0 {
			dst[x] = s.dark
		} else {
			dst[x] = s.light
		}
	}
	return dst
}

func (s *stripedSource) Matrix() []byte {
	out := make([]byte, s.width*s.height)
	row := s.Row(0, nil)
	for y := 0; y < s.height; y++ {
		copy(out[y*s.width:], row)
	}
	return out
}

func newStripedSource(w, h int) *stripedSource {
	return &stripedSource{width: w, height: h, dark: 0x10, light: 0xF0, stripe: 4}
}

func TestGlobalHistogramBlackMatrixSeparatesStripes(t *testing.T) {
	src := newStripedSource(40, 40)
	g := NewGlobalHistogram(src)
	m, err := g.BlackMatrix()
	if err != nil {
		t.Fatalf("BlackMatrix: %v", err)
	}
	if !m.Get(0, 0) {
		t.Error("dark stripe should binarize to set")
	}
	if m.Get(5, 0) {
		t.Error("light stripe should binarize to unset")
	}
}

func TestGlobalHistogramBlackRowSeparatesStripes(t *testing.T) {
	src := newStripedSource(40, 40)
	g := NewGlobalHistogram(src)
	row, err := g.BlackRow(0, nil)
	if err != nil {
		t.Fatalf("BlackRow: %v", err)
	}
	if !row.Get(1) {
		t.Error("dark stripe should binarize to set")
	}
	if row.Get(5) {
		t.Error("light stripe should binarize to unset")
	}
}

func TestGlobalHistogramRejectsFlatImage(t *testing.T) {
	src := &stripedSource{width: 20, height: 20, dark: 0x80, light: 0x80, stripe: 4}
	g := NewGlobalHistogram(src)
	if _, err := g.BlackMatrix(); err == nil {
		t.Fatal("expected an error binarizing a perfectly flat image")
	}
}
