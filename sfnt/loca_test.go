package sfnt

import "testing"

func TestDecodeLocaShortFormat(t *testing.T) {
	buf := make([]byte, 3*2)
	putU16(buf, 0, 0)
	putU16(buf, 2, 5)
	putU16(buf, 4, 12)

	loca, err := decodeLoca(buf, 2, LocaShort)
	if err != nil {
		t.Fatalf("decodeLoca: %v", err)
	}
	start, end, ok := loca.Range(1)
	if !ok || start != 10 || end != 24 {
		t.Fatalf("Range(1) = (%d, %d, %v); want (10, 24, true)", start, end, ok)
	}
	if loca.NumGlyphs() != 2 {
		t.Fatalf("NumGlyphs() = %d; want 2", loca.NumGlyphs())
	}
}

func TestDecodeLocaLongFormat(t *testing.T) {
	buf := make([]byte, 3*4)
	putU32(buf, 0, 0)
	putU32(buf, 4, 100)
	putU32(buf, 8, 250)

	loca, err := decodeLoca(buf, 2, LocaLong)
	if err != nil {
		t.Fatalf("decodeLoca: %v", err)
	}
	start, end, ok := loca.Range(0)
	if !ok || start != 0 || end != 100 {
		t.Fatalf("Range(0) = (%d, %d, %v); want (0, 100, true)", start, end, ok)
	}
}

func TestDecodeLocaRejectsNonMonotonicOffsets(t *testing.T) {
	buf := make([]byte, 3*2)
	putU16(buf, 0, 5)
	putU16(buf, 2, 2)
	putU16(buf, 4, 10)

	_, err := decodeLoca(buf, 2, LocaShort)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != Malformed {
		t.Fatalf("decodeLoca(non-monotonic) = %v; want Malformed", err)
	}
}

func TestLocaRangeOutOfBounds(t *testing.T) {
	loca := NewLoca([]uint32{0, 10})
	if _, _, ok := loca.Range(1); ok {
		t.Fatalf("Range(1) should be out of bounds for a single-glyph loca")
	}
	if _, _, ok := loca.Range(-1); ok {
		t.Fatalf("Range(-1) should be out of bounds")
	}
}
