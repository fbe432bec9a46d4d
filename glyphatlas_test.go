package glyphatlas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func putU16(b []byte, off int, v uint16) {
	b[off] = byte(v >> 8)
	b[off+1] = byte(v)
}

func putU32(b []byte, off int, v uint32) {
	b[off] = byte(v >> 24)
	b[off+1] = byte(v >> 16)
	b[off+2] = byte(v >> 8)
	b[off+3] = byte(v)
}

// buildMinimalTTF assembles a two-glyph TrueType font: glyph 0 (.notdef,
// empty outline) and glyph 1 (a single on-curve point at (10,10)), mapped
// from codepoint 'A' via a format 4 cmap.
func buildMinimalTTF(t *testing.T) []byte {
	t.Helper()

	head := make([]byte, 54)
	putU16(head, 18, 1000) // unitsPerEm
	putU16(head, 50, 0)    // indexToLocFormat = short

	maxp := make([]byte, 6)
	putU16(maxp, 4, 2) // numGlyphs

	// cmap: format 4, one segment mapping 'A' (0x41) -> glyph 1.
	segCount := 2 // one real segment + terminator
	sub := make([]byte, 16+segCount*2*4)
	putU16(sub, 0, 4)
	putU16(sub, 6, uint16(segCount*2))
	putU16(sub, 14, 0x41)   // endCode[0]
	putU16(sub, 16, 0xffff) // endCode[1] (terminator)
	putU16(sub, 20, 0x41)   // startCode[0]
	putU16(sub, 22, 0xffff) // startCode[1]
	// idDelta[0] chosen so that gid = (c + idDelta) mod 2^16 == 1 for c == 0x41.
	idDelta := int16(1 - 0x41)
	putU16(sub, 24, uint16(idDelta))
	putU16(sub, 26, 0)

	cmap := make([]byte, 4+8+len(sub))
	putU16(cmap, 0, 0) // version
	putU16(cmap, 2, 1) // numTables
	putU16(cmap, 4, 3) // platformID = Windows
	putU16(cmap, 6, 1) // encodingID = BMP
	putU32(cmap, 8, uint32(4+8))
	copy(cmap[12:], sub)

	// glyf: glyph 0 is empty (zero-length loca range); glyph 1 is a single
	// on-curve point at (10, 10).
	glyph1 := []byte{
		0x00, 0x01, // numberOfContours = 1
		0x00, 0x0a, 0x00, 0x0a, 0x00, 0x0a, 0x00, 0x0a, // bbox
		0x00, 0x00, // endPtsOfContours[0] = 0
		0x00, 0x00, // instructionLength
		0x01 | 0x02 | 0x10 | 0x04 | 0x20, // on-curve, x short +, y short +
		0x0a, 0x0a,
		0x00, // pad to an even length, as loca's short format requires
	}
	glyf := glyph1

	// loca: short format, values are byte-offset/2.
	loca := make([]byte, 3*2)
	putU16(loca, 0, 0) // glyph 0 starts at 0
	putU16(loca, 2, 0) // glyph 0 ends at 0 (empty)
	putU16(loca, 4, uint16(len(glyf)/2))

	tables := []struct {
		tag  string
		data []byte
	}{
		{"head", head},
		{"maxp", maxp},
		{"cmap", cmap},
		{"loca", loca},
		{"glyf", glyf},
	}

	const headerSize = 12
	const recordSize = 16
	offset := headerSize + recordSize*len(tables)
	dir := make([]byte, headerSize+recordSize*len(tables))
	putU32(dir, 0, 0x00010000)
	putU16(dir, 4, uint16(len(tables)))

	var body []byte
	for i, tbl := range tables {
		rec := dir[headerSize+i*recordSize:]
		copy(rec[0:4], tbl.tag)
		putU32(rec, 8, uint32(offset))
		putU32(rec, 12, uint32(len(tbl.data)))
		body = append(body, tbl.data...)
		offset += len(tbl.data)
	}
	return append(dir, body...)
}

func TestDecodeMinimalFont(t *testing.T) {
	buf := buildMinimalTTF(t)
	font, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 2, font.GlyphCount())
	require.Equal(t, 1000, font.UnitsPerEm())

	g0 := font.GlyphByID(0)
	require.NotNil(t, g0)
	require.Empty(t, g0.Contours)

	g1 := font.GlyphByCodepoint('A')
	require.NotNil(t, g1)
	require.Equal(t, 1, g1.ID)
	require.Len(t, g1.Contours, 1)
}

func TestDecodeRoundTripStructuralEquality(t *testing.T) {
	buf := buildMinimalTTF(t)
	f1, err := Decode(buf)
	require.NoError(t, err)
	f2, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, f1.GlyphCount(), f2.GlyphCount())
	for i := 0; i < f1.GlyphCount(); i++ {
		require.Equal(t, f1.GlyphByID(i), f2.GlyphByID(i))
	}
}

func TestGlyphByIDInvariant(t *testing.T) {
	buf := buildMinimalTTF(t)
	font, err := Decode(buf)
	require.NoError(t, err)
	for i := 0; i < font.GlyphCount(); i++ {
		require.Equal(t, i, font.GlyphByID(i).ID)
	}
}
