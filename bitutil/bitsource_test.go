package bitutil

import "testing"

func TestBitSourceReadBitsAcrossByteBoundary(t *testing.T) {
	bs := NewBitSource([]byte{0b10110100, 0b11001010})
	v, err := bs.ReadBits(4)
	if err != nil || v != 0b1011 {
		t.Fatalf("first nibble = %d, %v; want 11, nil", v, err)
	}
	v, err = bs.ReadBits(8)
	if err != nil || v != 0b01001100 {
		t.Fatalf("spanning byte read = %d, %v; want 76, nil", v, err)
	}
	if bs.Available() != 4 {
		t.Fatalf("available = %d, want 4", bs.Available())
	}
}

func TestBitSourceReadBitsWholeBytes(t *testing.T) {
	bs := NewBitSource([]byte{0xAB, 0xCD, 0xEF})
	v, err := bs.ReadBits(24)
	if err != nil || v != 0xABCDEF {
		t.Fatalf("got %#x, %v; want 0xABCDEF, nil", v, err)
	}
}

func TestBitSourceReadBitsRejectsOverrun(t *testing.T) {
	bs := NewBitSource([]byte{0xFF})
	if _, err := bs.ReadBits(9); err == nil {
		t.Fatal("expected an error reading more bits than available")
	}
	if _, err := bs.ReadBits(0); err == nil {
		t.Fatal("expected an error reading zero bits")
	}
	if _, err := bs.ReadBits(33); err == nil {
		t.Fatal("expected an error reading more than 32 bits")
	}
}

func TestBitSourceOffsetsAdvance(t *testing.T) {
	bs := NewBitSource([]byte{0xFF, 0xFF})
	if bs.ByteOffset() != 0 || bs.BitOffset() != 0 {
		t.Fatal("fresh source should start at (0, 0)")
	}
	if _, err := bs.ReadBits(3); err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if bs.ByteOffset() != 0 || bs.BitOffset() != 3 {
		t.Fatalf("offsets = (%d, %d), want (0, 3)", bs.ByteOffset(), bs.BitOffset())
	}
	if _, err := bs.ReadBits(5); err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if bs.ByteOffset() != 1 || bs.BitOffset() != 0 {
		t.Fatalf("offsets = (%d, %d), want (1, 0) after filling a byte", bs.ByteOffset(), bs.BitOffset())
	}
}
