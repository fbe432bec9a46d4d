package sfnt

import "testing"

func headBuf(unitsPerEm uint16, indexToLoc int16) []byte {
	b := make([]byte, 54)
	putU16(b, 18, unitsPerEm)
	putU16(b, 50, uint16(indexToLoc))
	return b
}

func TestDecodeHeadBasic(t *testing.T) {
	h, err := decodeHead(headBuf(2048, 1))
	if err != nil {
		t.Fatalf("decodeHead: %v", err)
	}
	if h.UnitsPerEm != 2048 {
		t.Fatalf("UnitsPerEm = %d; want 2048", h.UnitsPerEm)
	}
	if h.IndexToLocFormat != LocaLong {
		t.Fatalf("IndexToLocFormat = %v; want LocaLong", h.IndexToLocFormat)
	}
}

func TestDecodeHeadRejectsOutOfRangeUnitsPerEm(t *testing.T) {
	_, err := decodeHead(headBuf(4, 0))
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != Malformed {
		t.Fatalf("decodeHead(unitsPerEm=4) = %v; want Malformed", err)
	}
}

func TestDecodeHeadRejectsTruncatedBuffer(t *testing.T) {
	_, err := decodeHead(make([]byte, 10))
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != Truncated {
		t.Fatalf("decodeHead(short buffer) = %v; want Truncated", err)
	}
}

func TestDecodeHeadRejectsBadIndexToLocFormat(t *testing.T) {
	_, err := decodeHead(headBuf(1000, 2))
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != Malformed {
		t.Fatalf("decodeHead(indexToLocFormat=2) = %v; want Malformed", err)
	}
}
