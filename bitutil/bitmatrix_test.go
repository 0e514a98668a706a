package bitutil

import "testing"

func TestBitMatrixFreshMatrixIsAllUnset(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if bm.Get(x, y) {
				t.Fatalf("(%d,%d) set on a fresh matrix", x, y)
			}
		}
	}
}

func TestBitMatrixRejectsNonPositiveDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic constructing a zero-width matrix")
		}
	}()
	NewBitMatrixWithSize(0, 4)
}

func TestBitMatrixSetGetUnsetFlip(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.Set(2, 3)
	if !bm.Get(2, 3) || bm.Get(3, 2) {
		t.Fatal("Set affected the wrong coordinate")
	}
	bm.Unset(2, 3)
	if bm.Get(2, 3) {
		t.Fatal("Unset left the module set")
	}
	bm.Flip(1, 2)
	if !bm.Get(1, 2) {
		t.Fatal("Flip should set an unset module")
	}
	bm.Flip(1, 2)
	if bm.Get(1, 2) {
		t.Fatal("double Flip should restore the original value")
	}
}

func TestBitMatrixSetRegionFillsExactRectangle(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.SetRegion(2, 2, 4, 4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 6 && y >= 2 && y < 6
			if bm.Get(x, y) != inside {
				t.Errorf("(%d,%d) = %v, want %v", x, y, bm.Get(x, y), inside)
			}
		}
	}
}

func TestBitMatrixSetRegionRejectsOutOfBounds(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a region that overruns the matrix")
		}
	}()
	bm.SetRegion(2, 2, 4, 4)
}

func TestBitMatrixRowExtractsPackedWords(t *testing.T) {
	bm := NewBitMatrixWithSize(40, 4)
	bm.Set(3, 2)
	bm.Set(37, 2)
	row := bm.Row(2, nil)
	if row.Size() != 40 {
		t.Fatalf("row size = %d, want 40", row.Size())
	}
	if !row.Get(3) || !row.Get(37) {
		t.Fatal("row missing expected bits")
	}
	if row.Get(4) {
		t.Fatal("row has an unexpected bit set")
	}
}

func TestBitMatrixRowReusesScratchWhenBigEnough(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 4)
	bm.Set(1, 1)
	scratch := NewBitArray(8)
	scratch.Set(6) // should be cleared, not merged, by Row
	row := bm.Row(1, scratch)
	if row != scratch {
		t.Fatal("Row reallocated despite a large-enough scratch buffer")
	}
	if row.Get(6) {
		t.Fatal("Row did not clear stale bits from the reused scratch buffer")
	}
	if !row.Get(1) {
		t.Fatal("Row lost the bit set on the matrix")
	}
}

func TestBitMatrixRotateFullTurnIsIdentity(t *testing.T) {
	bm := NewBitMatrixWithSize(5, 7)
	bm.Set(1, 0)
	bm.Set(4, 6)
	original := bm.Clone()
	for i := 0; i < 4; i++ {
		bm.Rotate(90)
	}
	if !bm.Equals(original) {
		t.Fatal("four quarter-turns did not return to the original matrix")
	}
}

func TestBitMatrixRotate180EqualsTwoQuarterTurns(t *testing.T) {
	a := NewBitMatrixWithSize(5, 7)
	a.Set(1, 0)
	a.Set(3, 5)
	b := a.Clone()
	a.Rotate(180)
	b.Rotate(90)
	b.Rotate(90)
	if !a.Equals(b) {
		t.Fatal("Rotate(180) should equal two Rotate(90) calls")
	}
}

func TestBitMatrixRotate90SwapsDimensions(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 3)
	bm.Set(3, 0) // top-right corner
	bm.Rotate(90)
	if bm.Width() != 3 || bm.Height() != 4 {
		t.Fatalf("dimensions after Rotate(90) = %dx%d, want 3x4", bm.Width(), bm.Height())
	}
	if !bm.Get(0, 0) {
		t.Fatal("top-right corner should land on (0,0) after a quarter turn")
	}
}

func TestBitMatrixRotateRejectsNonMultipleOf90(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic rotating by a non-multiple of 90")
		}
	}()
	bm.Rotate(45)
}

func TestBitMatrixEnclosingRectangle(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 2)
	bm.Set(7, 8)
	rect := bm.EnclosingRectangle()
	if rect == nil {
		t.Fatal("expected a non-nil rectangle")
	}
	want := []int{3, 2, 5, 7}
	for i, v := range want {
		if rect[i] != v {
			t.Fatalf("rect = %v, want %v", rect, want)
		}
	}
}

func TestBitMatrixEnclosingRectangleEmptyMatrix(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	if rect := bm.EnclosingRectangle(); rect != nil {
		t.Fatalf("expected nil for an empty matrix, got %v", rect)
	}
}

func TestBitMatrixTopLeftAndBottomRightOnBit(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(5, 3)
	bm.Set(9, 9)
	if pt := bm.TopLeftOnBit(); pt == nil || pt[0] != 5 || pt[1] != 3 {
		t.Fatalf("TopLeftOnBit = %v, want [5 3]", pt)
	}
	if pt := bm.BottomRightOnBit(); pt == nil || pt[0] != 9 || pt[1] != 9 {
		t.Fatalf("BottomRightOnBit = %v, want [9 9]", pt)
	}
}

func TestBitMatrixCloneIsIndependent(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.Set(1, 1)
	clone := bm.Clone()
	clone.Set(2, 2)
	if bm.Get(2, 2) {
		t.Fatal("mutating the clone leaked back into the original")
	}
}

func TestBitMatrixXorRequiresMatchingShape(t *testing.T) {
	a := NewBitMatrixWithSize(4, 4)
	a.Set(0, 0)
	a.Set(1, 1)
	b := NewBitMatrixWithSize(4, 4)
	b.Set(1, 1)
	a.Xor(b)
	if a.Get(1, 1) {
		t.Fatal("xor should clear a bit set in both matrices")
	}
	if !a.Get(0, 0) {
		t.Fatal("xor should preserve a bit set only in the receiver")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic xoring mismatched shapes")
		}
	}()
	a.Xor(NewBitMatrixWithSize(5, 4))
}

func TestBitMatrixEquals(t *testing.T) {
	a := NewBitMatrixWithSize(4, 4)
	b := NewBitMatrixWithSize(4, 4)
	a.Set(1, 2)
	b.Set(1, 2)
	if !a.Equals(b) {
		t.Fatal("matrices with identical bits compared unequal")
	}
	b.Set(3, 3)
	if a.Equals(b) {
		t.Fatal("matrices with differing bits compared equal")
	}
}

func TestParseBoolMatrix(t *testing.T) {
	bm := ParseBoolMatrix([][]bool{
		{true, false, true},
		{false, true, false},
	})
	if bm.Width() != 3 || bm.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", bm.Width(), bm.Height())
	}
	if !bm.Get(0, 0) || bm.Get(1, 0) || !bm.Get(2, 0) {
		t.Fatal("row 0 parsed incorrectly")
	}
	if bm.Get(0, 1) || !bm.Get(1, 1) || bm.Get(2, 1) {
		t.Fatal("row 1 parsed incorrectly")
	}
}

func TestParseStringMatrix(t *testing.T) {
	bm := ParseStringMatrix("X.X\n.X.\nX.X", "X", ".")
	if bm.Width() != 3 || bm.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", bm.Width(), bm.Height())
	}
	rect := bm.EnclosingRectangle()
	want := []int{0, 0, 3, 3}
	for i, v := range want {
		if rect[i] != v {
			t.Fatalf("EnclosingRectangle = %v, want %v", rect, want)
		}
	}
	if pt := bm.TopLeftOnBit(); pt == nil || pt[0] != 0 || pt[1] != 0 {
		t.Fatalf("TopLeftOnBit = %v, want [0 0]", pt)
	}
}

func TestParseStringMatrixRejectsRaggedRows(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for rows of unequal length")
		}
	}()
	ParseStringMatrix("XX\nX", "X", ".")
}
