package sfnt

import "github.com/npillmayer/glyphatlas/reader"

// RawPoint is a single contour point as encoded in 'glyf', before composite
// flattening.
type RawPoint struct {
	X, Y    int16
	OnCurve bool
}

// RawContour is one contour's points, in file order.
type RawContour []RawPoint

// Simple glyph point flag bits.
const (
	flagOnCurve      = 0x01
	flagXShortVector = 0x02
	flagYShortVector = 0x04
	flagRepeat       = 0x08
	flagXSameOrPos   = 0x10
	flagYSameOrPos   = 0x20
)

// Composite glyph component flag bits.
const (
	compArg1And2AreWords    = 0x0001
	compArgsAreXYValues     = 0x0002
	compWeHaveAScale        = 0x0008
	compMoreComponents      = 0x0020
	compWeHaveAnXAndYScale  = 0x0040
	compWeHaveATwoByTwo     = 0x0080
	compWeHaveInstructions  = 0x0100
)

// Component is one entry of a composite glyph: a reference to another
// glyph under an affine transform (2×2 scale/rotation `A B C D` plus
// translation `DX DY`).
type Component struct {
	GlyphIndex uint16
	DX, DY     float64
	A, B, C, D float64
}

// RawGlyph is a single glyph's 'glyf' entry, decoded but not yet flattened
// through the Composite Resolver.
type RawGlyph struct {
	XMin, YMin, XMax, YMax int16
	Simple                 []RawContour // nil if Composite != nil
	Composite              []Component  // nil if Simple != nil
}

// decodeGlyph decodes one glyph's 'glyf' entry. An empty data slice (a
// zero-length loca range) represents a glyph with no contours and is
// reported by the caller without invoking this function.
func decodeGlyph(data []byte) (*RawGlyph, error) {
	r := reader.New(data)
	numContours, err := r.I16()
	if err != nil {
		return nil, errTruncated("glyf", 0)
	}
	xMin, _ := r.FWord()
	yMin, _ := r.FWord()
	xMax, _ := r.FWord()
	yMax, _ := r.FWord()

	g := &RawGlyph{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}

	if numContours < -1 {
		return nil, errMalformed("glyf", "numberOfContours less than -1")
	}
	if numContours >= 0 {
		contours, err := decodeSimpleGlyph(r, int(numContours))
		if err != nil {
			return nil, err
		}
		g.Simple = contours
		return g, nil
	}
	comps, err := decodeCompositeGlyph(r)
	if err != nil {
		return nil, err
	}
	g.Composite = comps
	return g, nil
}

func decodeSimpleGlyph(r *reader.R, numContours int) ([]RawContour, error) {
	endPts := make([]uint16, numContours)
	for i := range endPts {
		v, err := r.U16()
		if err != nil {
			return nil, errTruncated("glyf", uint32(r.Pos()))
		}
		endPts[i] = v
	}
	for i := 1; i < len(endPts); i++ {
		if endPts[i] <= endPts[i-1] {
			return nil, errMalformed("glyf", "endPtsOfContours is not strictly increasing")
		}
	}
	numPoints := 0
	if numContours > 0 {
		numPoints = int(endPts[numContours-1]) + 1
	}

	instrLen, err := r.U16()
	if err != nil {
		return nil, errTruncated("glyf", uint32(r.Pos()))
	}
	if _, err := r.Bytes(int(instrLen)); err != nil {
		return nil, errTruncated("glyf", uint32(r.Pos()))
	}

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		f, err := r.U8()
		if err != nil {
			return nil, errTruncated("glyf", uint32(r.Pos()))
		}
		flags[i] = f
		i++
		if f&flagRepeat != 0 {
			count, err := r.U8()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			for ; count > 0 && i < numPoints; count-- {
				flags[i] = f
				i++
			}
		}
	}

	xs := make([]int16, numPoints)
	var x int16
	for i := 0; i < numPoints; i++ {
		f := flags[i]
		switch {
		case f&flagXShortVector != 0:
			d, err := r.U8()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			if f&flagXSameOrPos != 0 {
				x += int16(d)
			} else {
				x -= int16(d)
			}
		case f&flagXSameOrPos == 0:
			d, err := r.I16()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			x += d
		}
		xs[i] = x
	}

	ys := make([]int16, numPoints)
	var y int16
	for i := 0; i < numPoints; i++ {
		f := flags[i]
		switch {
		case f&flagYShortVector != 0:
			d, err := r.U8()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			if f&flagYSameOrPos != 0 {
				y += int16(d)
			} else {
				y -= int16(d)
			}
		case f&flagYSameOrPos == 0:
			d, err := r.I16()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			y += d
		}
		ys[i] = y
	}

	contours := make([]RawContour, numContours)
	start := 0
	for ci, end := range endPts {
		pts := make(RawContour, 0, int(end)-start+1)
		for i := start; i <= int(end); i++ {
			pts = append(pts, RawPoint{X: xs[i], Y: ys[i], OnCurve: flags[i]&flagOnCurve != 0})
		}
		contours[ci] = pts
		start = int(end) + 1
	}
	return contours, nil
}

func decodeCompositeGlyph(r *reader.R) ([]Component, error) {
	var comps []Component
	for {
		flags, err := r.U16()
		if err != nil {
			return nil, errTruncated("glyf", uint32(r.Pos()))
		}
		glyphIndex, err := r.U16()
		if err != nil {
			return nil, errTruncated("glyf", uint32(r.Pos()))
		}
		if flags&compArgsAreXYValues == 0 {
			return nil, errUnsupportedFormat("glyf", -1)
		}
		var dx, dy float64
		if flags&compArg1And2AreWords != 0 {
			a, err := r.I16()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			b, err := r.I16()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			dx, dy = float64(a), float64(b)
		} else {
			a, err := r.I8()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			b, err := r.I8()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			dx, dy = float64(a), float64(b)
		}

		comp := Component{GlyphIndex: glyphIndex, DX: dx, DY: dy, A: 1, B: 0, C: 0, D: 1}
		switch {
		case flags&compWeHaveAScale != 0:
			s, err := r.F2Dot14()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			comp.A, comp.D = s, s
		case flags&compWeHaveAnXAndYScale != 0:
			sx, err := r.F2Dot14()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			sy, err := r.F2Dot14()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			comp.A, comp.D = sx, sy
		case flags&compWeHaveATwoByTwo != 0:
			a, err := r.F2Dot14()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			b, err := r.F2Dot14()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			c, err := r.F2Dot14()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			d, err := r.F2Dot14()
			if err != nil {
				return nil, errTruncated("glyf", uint32(r.Pos()))
			}
			comp.A, comp.B, comp.C, comp.D = a, b, c, d
		}

		comps = append(comps, comp)
		if flags&compMoreComponents == 0 {
			break
		}
	}
	return comps, nil
}
