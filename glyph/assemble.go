package glyph

import (
	"sort"

	"github.com/npillmayer/glyphatlas/sfnt"
)

// Assemble joins decoded sfnt tables into an ordered glyph inventory,
// flattening composite glyphs through the resolver as it goes.
func Assemble(tables *sfnt.Tables) ([]*Glyph, error) {
	codepointsByGlyph := map[int][]rune{}
	if tables.CMap != nil {
		tables.CMap.All(func(cp rune, gid uint16) bool {
			codepointsByGlyph[int(gid)] = append(codepointsByGlyph[int(gid)], cp)
			return true
		})
	}
	for _, cps := range codepointsByGlyph {
		sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	}

	numGlyphs := tables.Loca.NumGlyphs()
	res := newResolver(tables, numGlyphs)

	glyphs := make([]*Glyph, numGlyphs)
	for gid := 0; gid < numGlyphs; gid++ {
		raw, err := tables.DecodeGlyph(gid)
		if err != nil {
			return nil, err
		}

		contours, err := res.resolve(gid, 0, map[int]bool{})
		if err != nil {
			return nil, err
		}

		g := &Glyph{ID: gid, Contours: contours}
		if raw != nil {
			g.BBox = BoundingBox{XMin: int(raw.XMin), YMin: int(raw.YMin), XMax: int(raw.XMax), YMax: int(raw.YMax)}
		}
		if name, ok := tables.Post.Name(gid); ok {
			g.PostscriptName = name
		}
		if cps := codepointsByGlyph[gid]; len(cps) > 0 {
			g.codepoint = cps[0]
			g.hasCodepoint = true
			g.aliases = cps[1:]
		}
		glyphs[gid] = g
	}
	return glyphs, nil
}
