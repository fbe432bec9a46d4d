package sfnt

import "testing"

func TestDecodeMaxP(t *testing.T) {
	buf := make([]byte, 6)
	putU16(buf, 4, 42)
	m, err := decodeMaxP(buf)
	if err != nil {
		t.Fatalf("decodeMaxP: %v", err)
	}
	if m.NumGlyphs != 42 {
		t.Fatalf("NumGlyphs = %d; want 42", m.NumGlyphs)
	}
}

func TestDecodeMaxPRejectsTruncated(t *testing.T) {
	_, err := decodeMaxP(make([]byte, 4))
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != Truncated {
		t.Fatalf("decodeMaxP(short buffer) = %v; want Truncated", err)
	}
}
