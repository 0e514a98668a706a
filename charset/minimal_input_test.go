package charset

import "testing"

func TestMinimalECIInputASCIIHasNoECI(t *testing.T) {
	m := NewMinimalECIInput("HELLO", nil, -1)
	if m.Length() != 5 {
		t.Fatalf("Length() = %d, want 5", m.Length())
	}
	for i := 0; i < m.Length(); i++ {
		if m.IsECI(i) {
			t.Errorf("position %d should not be an ECI for an all-ASCII string", i)
		}
	}
	c, err := m.CharAt(0)
	if err != nil || c != 'H' {
		t.Errorf("CharAt(0) = %v, %v, want 'H', nil", c, err)
	}
}

func TestMinimalECIInputFNC1(t *testing.T) {
	m := NewMinimalECIInput("AB", nil, 'B')
	if !m.IsFNC1(1) {
		t.Error("position of the FNC1 rune should report IsFNC1")
	}
	c, err := m.CharAt(1)
	if err != nil || c != 'B' {
		t.Errorf("CharAt(1) = %v, %v, want 'B', nil", c, err)
	}
}

func TestMinimalECIInputSubSequence(t *testing.T) {
	m := NewMinimalECIInput("HELLO", nil, -1)
	got, err := m.SubSequence(1, 4)
	if err != nil {
		t.Fatalf("SubSequence returned error: %v", err)
	}
	if string(got) != "ELL" {
		t.Errorf("SubSequence(1, 4) = %q, want %q", got, "ELL")
	}
}

func TestMinimalECIInputHaveNCharacters(t *testing.T) {
	m := NewMinimalECIInput("HELLO", nil, -1)
	if !m.HaveNCharacters(0, 5) {
		t.Error("HaveNCharacters(0, 5) should be true for a 5-character input")
	}
	if m.HaveNCharacters(0, 6) {
		t.Error("HaveNCharacters(0, 6) should be false for a 5-character input")
	}
}

func TestMinimalECIInputSwitchesEncoderForUncoveredScript(t *testing.T) {
	m := NewMinimalECIInput("A中", nil, -1)
	sawECI := false
	for i := 0; i < m.Length(); i++ {
		if m.IsECI(i) {
			sawECI = true
		}
	}
	if !sawECI {
		t.Error("expected an ECI designator when switching into a non-Latin1 script")
	}
}

func TestMinimalECIInputGetECIValueRejectsNonECI(t *testing.T) {
	m := NewMinimalECIInput("HELLO", nil, -1)
	if _, err := m.GetECIValue(0); err == nil {
		t.Error("GetECIValue on a non-ECI position should return an error")
	}
}
