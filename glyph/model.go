// Package glyph assembles the tables decoded by package sfnt into a flat,
// indexed Glyph inventory, flattening composite glyph references under
// their affine transforms.
//
// Glyphs never hold owning references to other glyphs: composite structure
// is resolved away during assembly and only the flattened contours remain.
package glyph

import (
	"strconv"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphatlas")
}

// Point is an (x, y) pair in font-unit integer coordinates plus an
// on-curve flag.
type Point struct {
	X, Y    int
	OnCurve bool
}

// Contour is an ordered, non-empty sequence of Points that implicitly
// closes back to its first point.
type Contour []Point

// BoundingBox is a glyph's declared extent in font units.
type BoundingBox struct {
	XMin, YMin, XMax, YMax int
}

// Glyph is a single decoded glyph, owned by its Font.
type Glyph struct {
	ID              int
	codepoint       rune
	hasCodepoint    bool
	aliases         []rune
	PostscriptName  string // empty if the font has no 'post' entry for this glyph
	BBox            BoundingBox
	Contours        []Contour
}

// Codepoint returns the glyph's primary mapped codepoint, if any. When
// several codepoints map to the same glyph id, the primary is the
// numerically smallest; the rest are available via Aliases.
func (g *Glyph) Codepoint() (rune, bool) {
	return g.codepoint, g.hasCodepoint
}

// Aliases returns the non-primary codepoints that also map to this glyph,
// in ascending order.
func (g *Glyph) Aliases() []rune {
	return g.aliases
}

// Name returns the name to use for this glyph in a code-generation
// context: the postscript name when present, otherwise a name synthesized
// from the codepoint ("u" plus its hex value), or, for a glyph with no
// codepoint, from its glyph id ("gid" plus the id).
func (g *Glyph) Name() string {
	if g.PostscriptName != "" {
		return g.PostscriptName
	}
	if g.hasCodepoint {
		return syntheticName(g.codepoint)
	}
	return syntheticGIDName(g.ID)
}

func syntheticName(cp rune) string {
	return "u" + strconv.FormatUint(uint64(cp), 16)
}

func syntheticGIDName(gid int) string {
	return "gid" + strconv.Itoa(gid)
}
