package sfnt

// requiredTables lists tables that must be present for a usable font.
var requiredTables = []string{"head", "maxp", "cmap", "loca", "glyf"}

// Tables is the result of decoding every table the glyph assembler needs.
// 'name' and 'post' are optional and may be nil.
type Tables struct {
	Head  *Head
	MaxP  *MaxP
	CMap  *CMap
	Name  *NameTable
	Post  *PostTable
	Loca  *Loca
	Glyf  []byte // raw 'glyf' table bytes; per-glyph decode happens lazily via DecodeGlyph
}

// DecodeGlyph decodes glyph gid's outline from the raw 'glyf' table,
// using t.Loca to find its byte range. A zero-length range (space, e.g.)
// yields (nil, nil): a glyph with no contours.
func (t *Tables) DecodeGlyph(gid int) (*RawGlyph, error) {
	start, end, ok := t.Loca.Range(gid)
	if !ok {
		return nil, errMalformed("loca", "glyph id out of range")
	}
	if start == end {
		return nil, nil
	}
	if int(end) > len(t.Glyf) || start > end {
		return nil, errTruncated("glyf", start)
	}
	return decodeGlyph(t.Glyf[start:end])
}

// DecodeTables parses the SFNT directory and every table the glyph
// assembler needs, driving the decoders in the order: head, maxp, cmap,
// name, post, loca, glyf.
func DecodeTables(buf []byte) (*Tables, error) {
	dir, err := parseDirectory(buf)
	if err != nil {
		return nil, err
	}
	for _, tag := range requiredTables {
		if _, ok := dir.find(tag); !ok {
			return nil, errMissingTable(tag)
		}
	}

	t := &Tables{}

	headRec, _ := dir.find("head")
	t.Head, err = decodeHead(buf[headRec.offset : headRec.offset+headRec.length])
	if err != nil {
		return nil, err
	}

	maxpRec, _ := dir.find("maxp")
	t.MaxP, err = decodeMaxP(buf[maxpRec.offset : maxpRec.offset+maxpRec.length])
	if err != nil {
		return nil, err
	}

	cmapRec, _ := dir.find("cmap")
	t.CMap, err = decodeCMap(buf[cmapRec.offset : cmapRec.offset+cmapRec.length])
	if err != nil {
		return nil, err
	}

	if nameRec, ok := dir.find("name"); ok {
		t.Name, err = decodeName(buf[nameRec.offset : nameRec.offset+nameRec.length])
		if err != nil {
			tracer().Infof("skipping malformed optional 'name' table: %v", err)
			t.Name = nil
		}
	}

	if postRec, ok := dir.find("post"); ok {
		post, err := decodePost(buf[postRec.offset:postRec.offset+postRec.length], t.MaxP.NumGlyphs)
		if err != nil {
			tracer().Infof("skipping malformed or unsupported optional 'post' table: %v", err)
		} else {
			t.Post = post
		}
	}

	locaRec, _ := dir.find("loca")
	t.Loca, err = decodeLoca(buf[locaRec.offset:locaRec.offset+locaRec.length], t.MaxP.NumGlyphs, t.Head.IndexToLocFormat)
	if err != nil {
		return nil, err
	}

	glyfRec, _ := dir.find("glyf")
	t.Glyf = buf[glyfRec.offset : glyfRec.offset+glyfRec.length]

	return t, nil
}
