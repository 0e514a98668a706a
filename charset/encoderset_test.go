package charset

import "testing"

func TestECIEncoderSetASCIIOnly(t *testing.T) {
	s := NewECIEncoderSet("HELLO WORLD", nil, -1)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 for an all-ASCII string", s.Len())
	}
	if s.Charset(0) != ECIISO8859_1 {
		t.Errorf("Charset(0) = %v, want ISO8859_1", s.Charset(0))
	}
}

func TestECIEncoderSetNeedsUnicodeFallback(t *testing.T) {
	// The CJK characters need Shift_JIS on top of ISO-8859-1; once more than
	// one encoder is needed, the UTF-8/UTF-16BE fallback encoders are appended.
	s := NewECIEncoderSet("héllo 中文", nil, -1)
	if s.Len() < 2 {
		t.Fatalf("Len() = %d, want at least 2", s.Len())
	}
	last := s.Charset(s.Len() - 1)
	secondLast := s.Charset(s.Len() - 2)
	if secondLast != ECIUTF8 || last != ECIUTF16BE {
		t.Errorf("fallback encoders = %v, %v, want UTF8, UTF16BE", secondLast, last)
	}
	if s.Charset(0) != ECIISO8859_1 {
		t.Errorf("Charset(0) = %v, want ISO8859_1 first", s.Charset(0))
	}
}

func TestECIEncoderSetPriorityCharset(t *testing.T) {
	s := NewECIEncoderSet("HELLO", ECIUTF8, -1)
	if idx := s.PriorityEncoderIndex(); idx < 0 || s.Charset(idx) != ECIUTF8 {
		t.Errorf("PriorityEncoderIndex() = %d, want index of ECIUTF8", idx)
	}
}

func TestECIEncoderSetEncodeChar(t *testing.T) {
	s := NewECIEncoderSet("A", nil, -1)
	b := s.EncodeChar('A', 0)
	if len(b) != 1 || b[0] != 'A' {
		t.Errorf("EncodeChar('A', 0) = %v, want [0x41]", b)
	}
}

func TestECIEncoderSetBuildsWithFNC1Rune(t *testing.T) {
	// A string containing the designated FNC1 rune should still build a
	// valid encoder set: the rune need not itself be representable, since
	// every encoder accepts it, and MinimalECIInput's lattice search charges
	// it a fixed cost of one unit.
	s := NewECIEncoderSet("AB", nil, 'B')
	if s.Len() == 0 {
		t.Fatal("expected at least one encoder")
	}
}
