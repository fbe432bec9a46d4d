// Package glyphatlas decodes a TrueType font into a structured, queryable
// glyph inventory with on-demand SVG path rendering, joining packages
// reader, sfnt, glyph and svgpath.
package glyphatlas

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/glyphatlas/glyph"
	"github.com/npillmayer/glyphatlas/identifier"
	"github.com/npillmayer/glyphatlas/sfnt"
	"github.com/npillmayer/glyphatlas/svgpath"
)

func tracer() tracing.Trace {
	return tracing.Select("glyphatlas")
}

// Font is a decoded TrueType font: family/style name, scale, and an ordered,
// immutable glyph inventory.
type Font struct {
	familyName  string
	styleName   string
	unitsPerEm  int
	glyphs      []*glyph.Glyph
	byCodepoint map[rune]*glyph.Glyph
	byName      map[string]*glyph.Glyph
	diagnostics []string
}

// Decode parses buf as a TrueType font and assembles its glyph inventory.
// No partial Font is ever returned alongside a non-nil error.
func Decode(buf []byte) (*Font, error) {
	tables, err := sfnt.DecodeTables(buf)
	if err != nil {
		return nil, err
	}

	glyphs, err := glyph.Assemble(tables)
	if err != nil {
		return nil, err
	}

	f := &Font{
		unitsPerEm:  int(tables.Head.UnitsPerEm),
		glyphs:      glyphs,
		byCodepoint: make(map[rune]*glyph.Glyph),
		byName:      make(map[string]*glyph.Glyph),
	}
	if tables.Name != nil {
		f.familyName = tables.Name.Family
		f.styleName = tables.Name.Style
	} else {
		f.diagnostics = append(f.diagnostics, "no 'name' table: family and style names are empty")
	}
	if tables.Post == nil {
		f.diagnostics = append(f.diagnostics, "no 'post' table: glyphs fall back to synthesized names")
	}

	for _, g := range glyphs {
		if cp, ok := g.Codepoint(); ok {
			f.byCodepoint[cp] = g
		}
		for _, alias := range g.Aliases() {
			if _, taken := f.byCodepoint[alias]; !taken {
				f.byCodepoint[alias] = g
			}
		}
		f.byName[g.Name()] = g
	}

	tracer().Infof("decoded font %q: %d glyphs, %d units/em", f.familyName, len(glyphs), f.unitsPerEm)
	return f, nil
}

func (f *Font) FamilyName() string { return f.familyName }
func (f *Font) StyleName() string  { return f.styleName }
func (f *Font) UnitsPerEm() int    { return f.unitsPerEm }
func (f *Font) GlyphCount() int    { return len(f.glyphs) }

// Glyphs iterates the glyph inventory in glyph-id order.
func (f *Font) Glyphs(yield func(*glyph.Glyph) bool) {
	for _, g := range f.glyphs {
		if !yield(g) {
			return
		}
	}
}

// GlyphByID returns the glyph with the given id, or nil if out of range.
func (f *Font) GlyphByID(id int) *glyph.Glyph {
	if id < 0 || id >= len(f.glyphs) {
		return nil
	}
	return f.glyphs[id]
}

// GlyphByCodepoint returns the glyph mapped to cp, resolving through
// aliases as well as primaries, or nil if cp is unmapped.
func (f *Font) GlyphByCodepoint(cp rune) *glyph.Glyph {
	return f.byCodepoint[cp]
}

// GlyphNamed returns the glyph whose Name() exactly matches name, or nil.
func (f *Font) GlyphNamed(name string) *glyph.Glyph {
	return f.byName[name]
}

// Diagnostics returns human-readable notes about optional tables that were
// missing or skipped during decode. Never affects decode success.
func (f *Font) Diagnostics() []string {
	return f.diagnostics
}

// SvgPath returns g's SVG path `d` attribute value.
func SvgPath(g *glyph.Glyph) string {
	return svgpath.Emit(g.Contours)
}

// SvgPreview returns a compressed, base64-encoded data URL embedding a
// standalone SVG document for g, sized to the font's unitsPerEm.
func SvgPreview(g *glyph.Glyph, unitsPerEm int) (string, error) {
	return svgpath.PreviewDataURL(SvgPath(g), unitsPerEm)
}

// Identifiers returns a unique, sanitized identifier for every glyph in the
// font, suitable for use by a code generator, keyed by glyph id.
func (f *Font) Identifiers() map[int]string {
	u := identifier.NewUniquifier()
	out := make(map[int]string, len(f.glyphs))
	for _, g := range f.glyphs {
		out[g.ID] = u.Assign(g.Name(), g.ID)
	}
	return out
}
