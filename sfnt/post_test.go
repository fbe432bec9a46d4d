package sfnt

import "testing"

func putFixed(b []byte, off int, whole int32) {
	putU32(b, off, uint32(whole)<<16)
}

func TestDecodePostVersion1UsesStandardMacNames(t *testing.T) {
	buf := make([]byte, 32)
	putFixed(buf, 0, 1)
	post, err := decodePost(buf, 4)
	if err != nil {
		t.Fatalf("decodePost: %v", err)
	}
	name, ok := post.Name(3)
	if !ok || name != "space" {
		t.Fatalf("Name(3) = (%q, %v); want (\"space\", true)", name, ok)
	}
}

func TestDecodePostVersion2CustomName(t *testing.T) {
	buf := make([]byte, 34)
	putFixed(buf, 0, 2)
	putU16(buf, 32, 2) // numberOfGlyphs

	extra := "custom.glyph"
	rest := make([]byte, 4+1+len(extra))
	putU16(rest, 0, 0)           // glyphNameIndex[0] -> macGlyphNames[0] = ".notdef"
	putU16(rest, 2, uint16(258)) // glyphNameIndex[1] -> extra[0]
	rest[4] = byte(len(extra))   // pascal string length
	copy(rest[5:], extra)
	buf = append(buf, rest...)

	post, err := decodePost(buf, 2)
	if err != nil {
		t.Fatalf("decodePost: %v", err)
	}
	name0, _ := post.Name(0)
	if name0 != ".notdef" {
		t.Fatalf("Name(0) = %q; want \".notdef\"", name0)
	}
	name1, ok := post.Name(1)
	if !ok || name1 != extra {
		t.Fatalf("Name(1) = (%q, %v); want (%q, true)", name1, ok, extra)
	}
}

func TestDecodePostVersion3HasNoNames(t *testing.T) {
	buf := make([]byte, 32)
	putFixed(buf, 0, 3)
	post, err := decodePost(buf, 4)
	if err != nil {
		t.Fatalf("decodePost: %v", err)
	}
	if _, ok := post.Name(0); ok {
		t.Fatalf("version 3.0 post table should carry no glyph names")
	}
}

func TestDecodePostUnsupportedVersion(t *testing.T) {
	buf := make([]byte, 32)
	putFixed(buf, 0, 4)
	_, err := decodePost(buf, 4)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != UnsupportedFormat {
		t.Fatalf("decodePost(version=4.0) = %v; want UnsupportedFormat", err)
	}
}
