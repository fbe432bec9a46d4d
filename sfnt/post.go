package sfnt

import "github.com/npillmayer/glyphatlas/reader"

// PostTable maps glyph-id → postscript-name.
type PostTable struct {
	names map[int]string
}

// Name returns the postscript name for gid, if any.
func (p *PostTable) Name(gid int) (string, bool) {
	if p == nil {
		return "", false
	}
	n, ok := p.names[gid]
	return n, ok
}

// decodePost parses the 'post' table. Versions 1.0, 2.0, 2.5 and 3.0 are
// accepted; 3.0 carries no glyph names.
func decodePost(buf []byte, numGlyphs int) (*PostTable, error) {
	r := reader.New(buf)
	version, err := r.Fixed()
	if err != nil {
		return nil, errTruncated("post", 0)
	}

	switch {
	case version == 1.0:
		names := map[int]string{}
		for i := 0; i < numGlyphs && i < len(macGlyphNames); i++ {
			names[i] = macGlyphNames[i]
		}
		return &PostTable{names: names}, nil

	case version == 2.0:
		if err := r.Seek(32); err != nil {
			return nil, errTruncated("post", 32)
		}
		n, err := r.U16()
		if err != nil {
			return nil, errTruncated("post", 32)
		}
		indices := make([]uint16, n)
		for i := range indices {
			v, err := r.U16()
			if err != nil {
				return nil, errTruncated("post", uint32(r.Pos()))
			}
			indices[i] = v
		}
		var extra []string
		for r.Pos() < len(buf) {
			l, err := r.U8()
			if err != nil {
				break
			}
			b, err := r.Bytes(int(l))
			if err != nil {
				return nil, errMalformed("post", "pascal string truncated")
			}
			extra = append(extra, string(b))
		}
		names := map[int]string{}
		for gid, idx := range indices {
			switch {
			case idx < 258:
				names[gid] = macGlyphNames[idx]
			case int(idx)-258 < len(extra):
				names[gid] = extra[idx-258]
			}
		}
		return &PostTable{names: names}, nil

	case version == 2.5:
		if err := r.Seek(32); err != nil {
			return nil, errTruncated("post", 32)
		}
		names := map[int]string{}
		for i := 0; i < numGlyphs; i++ {
			offset, err := r.I8()
			if err != nil {
				return nil, errTruncated("post", uint32(r.Pos()))
			}
			idx := i + int(offset)
			if idx >= 0 && idx < len(macGlyphNames) {
				names[i] = macGlyphNames[idx]
			}
		}
		return &PostTable{names: names}, nil

	case version == 3.0:
		return &PostTable{names: map[int]string{}}, nil

	default:
		return nil, errUnsupportedFormat("post", int(version*10))
	}
}

// macGlyphNames is the fixed set of 258 standard Macintosh glyph names
// referenced by 'post' table versions 1.0, 2.0 and 2.5.
var macGlyphNames = [258]string{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam", "quotedbl",
	"numbersign", "dollar", "percent", "ampersand", "quotesingle",
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen",
	"period", "slash", "zero", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "colon", "semicolon", "less",
	"equal", "greater", "question", "at", "A", "B", "C", "D", "E", "F",
	"G", "H", "I", "J", "K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
	"U", "V", "W", "X", "Y", "Z", "bracketleft", "backslash",
	"bracketright", "asciicircum", "underscore", "grave", "a", "b", "c",
	"d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q",
	"r", "s", "t", "u", "v", "w", "x", "y", "z", "braceleft", "bar",
	"braceright", "asciitilde", "Adieresis", "Aring", "Ccedilla",
	"Eacute", "Ntilde", "Odieresis", "Udieresis", "aacute", "agrave",
	"acircumflex", "adieresis", "atilde", "aring", "ccedilla", "eacute",
	"egrave", "ecircumflex", "edieresis", "iacute", "igrave",
	"icircumflex", "idieresis", "ntilde", "oacute", "ograve",
	"ocircumflex", "odieresis", "otilde", "uacute", "ugrave",
	"ucircumflex", "udieresis", "dagger", "degree", "cent", "sterling",
	"section", "bullet", "paragraph", "germandbls", "registered",
	"copyright", "trademark", "acute", "dieresis", "notequal", "AE",
	"Oslash", "infinity", "plusminus", "lessequal", "greaterequal",
	"yen", "mu", "partialdiff", "summation", "product", "pi", "integral",
	"ordfeminine", "ordmasculine", "Omega", "ae", "oslash",
	"questiondown", "exclamdown", "logicalnot", "radical", "florin",
	"approxequal", "Delta", "guillemotleft", "guillemotright",
	"ellipsis", "nonbreakingspace", "Agrave", "Atilde", "Otilde", "OE",
	"oe", "endash", "emdash", "quotedblleft", "quotedblright",
	"quoteleft", "quoteright", "divide", "lozenge", "ydieresis",
	"Ydieresis", "fraction", "currency", "guilsinglleft",
	"guilsinglright", "fi", "fl", "daggerdbl", "periodcentered",
	"quotesinglbase", "quotedblbase", "perthousand", "Acircumflex",
	"Ecircumflex", "Aacute", "Edieresis", "Egrave", "Iacute",
	"Icircumflex", "Idieresis", "Igrave", "Oacute", "Ocircumflex",
	"apple", "Ograve", "Uacute", "Ucircumflex", "Ugrave", "dotlessi",
	"circumflex", "tilde", "macron", "breve", "dotaccent", "ring",
	"cedilla", "hungarumlaut", "ogonek", "caron", "Lslash", "lslash",
	"Scaron", "scaron", "Zcaron", "zcaron", "brokenbar", "Eth", "eth",
	"Yacute", "yacute", "Thorn", "thorn", "minus", "multiply",
	"onesuperior", "twosuperior", "threesuperior", "onehalf",
	"onequarter", "threequarters", "franc", "Gbreve", "gbreve",
	"Idotaccent", "Scedilla", "scedilla", "Cacute", "cacute", "Ccaron",
	"ccaron", "dcroat",
}
