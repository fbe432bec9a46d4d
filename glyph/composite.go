package glyph

import (
	"math"

	"github.com/npillmayer/glyphatlas/sfnt"
)

// maxCompositeDepth bounds composite recursion.
const maxCompositeDepth = 64

// resolver flattens composite glyphs by recursively substituting referenced
// glyph contours under an affine transform. Results are
// memoized per glyph id, since a glyph may be referenced by several
// composites.
type resolver struct {
	tables    *sfnt.Tables
	numGlyphs int
	resolved  map[int][]Contour
}

func newResolver(tables *sfnt.Tables, numGlyphs int) *resolver {
	return &resolver{tables: tables, numGlyphs: numGlyphs, resolved: make(map[int][]Contour)}
}

// resolve returns glyph gid's fully flattened contours, in its own
// coordinate frame. path tracks glyph ids on the current recursion chain,
// to detect composite cycles.
func (res *resolver) resolve(gid int, depth int, path map[int]bool) ([]Contour, error) {
	if cached, ok := res.resolved[gid]; ok {
		return cached, nil
	}
	if depth > maxCompositeDepth {
		return nil, sfnt.ErrMalformed("glyf", "composite nesting exceeds maximum depth")
	}
	if path[gid] {
		return nil, sfnt.ErrMalformed("glyf", "composite component graph contains a cycle")
	}
	path[gid] = true
	defer delete(path, gid)

	raw, err := res.tables.DecodeGlyph(gid)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		res.resolved[gid] = nil
		return nil, nil
	}

	var contours []Contour
	if raw.Simple != nil {
		contours = convertSimpleContours(raw.Simple)
	} else {
		for _, comp := range raw.Composite {
			if int(comp.GlyphIndex) >= res.numGlyphs {
				return nil, sfnt.ErrMalformed("glyf", "composite component references out-of-range glyph id")
			}
			sub, err := res.resolve(int(comp.GlyphIndex), depth+1, path)
			if err != nil {
				return nil, err
			}
			contours = append(contours, applyTransform(sub, comp)...)
		}
	}
	res.resolved[gid] = contours
	return contours, nil
}

func convertSimpleContours(raw []sfnt.RawContour) []Contour {
	out := make([]Contour, len(raw))
	for i, c := range raw {
		pts := make(Contour, len(c))
		for j, p := range c {
			pts[j] = Point{X: int(p.X), Y: int(p.Y), OnCurve: p.OnCurve}
		}
		out[i] = pts
	}
	return out
}

// applyTransform applies a component's affine transform (2×2 scale/rotation
// plus translation) to every point of contours. Arithmetic is carried out
// in float64 before rounding back to a 16-bit signed integer for storage.
func applyTransform(contours []Contour, c sfnt.Component) []Contour {
	out := make([]Contour, len(contours))
	for i, ct := range contours {
		pts := make(Contour, len(ct))
		for j, p := range ct {
			x := float64(p.X)*c.A + float64(p.Y)*c.C + c.DX
			y := float64(p.X)*c.B + float64(p.Y)*c.D + c.DY
			pts[j] = Point{X: roundToI16(x), Y: roundToI16(y), OnCurve: p.OnCurve}
		}
		out[i] = pts
	}
	return out
}

func roundToI16(v float64) int {
	r := math.Round(v)
	switch {
	case r > math.MaxInt16:
		return math.MaxInt16
	case r < math.MinInt16:
		return math.MinInt16
	default:
		return int(r)
	}
}
