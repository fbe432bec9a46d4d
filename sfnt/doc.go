// Package sfnt decodes the SFNT container and the specific TrueType tables
// needed to build a glyph inventory: head, maxp, cmap, name, post, loca and
// glyf. Each table decoder takes the table's own bytes, sliced from the font
// buffer at its directory record's (offset, length), and returns a
// structured view or a DecodeError; the decoders
// are a closed, known-at-compile-time set (one function per table format),
// not a runtime-polymorphic plugin system.
//
// Table-checksum mismatches and trailing bytes beyond the declared table
// directory are intentionally ignored, per the TrueType tolerance the format
// itself encourages.
package sfnt

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("glyphatlas")
}
