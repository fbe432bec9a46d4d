package sfnt

import "testing"

func TestDecodeSimpleGlyphTrianglePoints(t *testing.T) {
	data := []byte{
		0x00, 0x01, // numberOfContours = 1
		0x00, 0x00, 0x00, 0x00, 0x00, 0x0a, 0x00, 0x0a, // bbox: xMin=0 yMin=0 xMax=10 yMax=10
		0x00, 0x02, // endPtsOfContours[0] = 2 (3 points)
		0x00, 0x00, // instructionLength = 0
		// flags: all short-vector, one byte per coordinate below
		flagOnCurve | flagXShortVector | flagXSameOrPos | flagYShortVector | flagYSameOrPos, // p0: dx=+0, dy=+0
		flagOnCurve | flagXShortVector | flagXSameOrPos | flagYShortVector | flagYSameOrPos, // p1: dx=+10, dy=+0
		flagOnCurve | flagXShortVector | flagYShortVector | flagYSameOrPos,                  // p2: dx=-5, dy=+10
		// xCoordinates (magnitudes; sign from the SameOrPos bit above)
		0x00, 0x0a, 0x05,
		// yCoordinates
		0x00, 0x00, 0x0a,
	}
	g, err := decodeGlyph(data)
	if err != nil {
		t.Fatalf("decodeGlyph: %v", err)
	}
	if len(g.Simple) != 1 || len(g.Simple[0]) != 3 {
		t.Fatalf("unexpected contour shape: %+v", g.Simple)
	}
	want := []RawPoint{
		{X: 0, Y: 0, OnCurve: true},
		{X: 10, Y: 0, OnCurve: true},
		{X: 5, Y: 10, OnCurve: true},
	}
	for i, p := range g.Simple[0] {
		if p != want[i] {
			t.Fatalf("point %d = %+v; want %+v", i, p, want[i])
		}
	}
}

func TestDecodeCompositeGlyphSimpleOffset(t *testing.T) {
	data := []byte{
		0xff, 0xff, // numberOfContours = -1 (composite)
		0x00, 0x00, 0x00, 0x00, 0x00, 0x64, 0x00, 0x64, // bbox
		// component: flags = ARGS_ARE_XY_VALUES | ARG_1_AND_2_ARE_WORDS, no more components
		0x00, compArgsAreXYValues | compArg1And2AreWords,
		0x00, 0x05, // glyphIndex = 5
		0x00, 0x0a, // dx = 10
		0xff, 0xec, // dy = -20
	}
	g, err := decodeGlyph(data)
	if err != nil {
		t.Fatalf("decodeGlyph: %v", err)
	}
	if len(g.Composite) != 1 {
		t.Fatalf("expected 1 component, got %d", len(g.Composite))
	}
	c := g.Composite[0]
	if c.GlyphIndex != 5 || c.DX != 10 || c.DY != -20 {
		t.Fatalf("unexpected component: %+v", c)
	}
	if c.A != 1 || c.B != 0 || c.C != 0 || c.D != 1 {
		t.Fatalf("expected identity transform, got %+v", c)
	}
}

func TestDecodeGlyphRejectsBadContourCount(t *testing.T) {
	data := []byte{0xff, 0xfe, 0, 0, 0, 0, 0, 0, 0, 0} // numberOfContours = -2
	_, err := decodeGlyph(data)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != Malformed {
		t.Fatalf("expected Malformed, got %v", err)
	}
}
