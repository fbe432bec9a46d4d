package sfnt

import "github.com/npillmayer/glyphatlas/reader"

// Loca is the decoded 'loca' table: offsets into 'glyf' for numGlyphs+1
// entries.
type Loca struct {
	offsets []uint32
}

// NewLoca builds a Loca directly from offsets, bypassing decodeLoca. Useful
// for assembling synthetic Tables in tests.
func NewLoca(offsets []uint32) *Loca {
	return &Loca{offsets: offsets}
}

// Range returns the (start, end) byte range of glyph gid within 'glyf'. A
// zero-length range denotes a glyph with no contours.
func (l *Loca) Range(gid int) (start, end uint32, ok bool) {
	if gid < 0 || gid+1 >= len(l.offsets) {
		return 0, 0, false
	}
	return l.offsets[gid], l.offsets[gid+1], true
}

// NumGlyphs returns the number of glyphs loca has entries for.
func (l *Loca) NumGlyphs() int {
	if len(l.offsets) == 0 {
		return 0
	}
	return len(l.offsets) - 1
}

func decodeLoca(buf []byte, numGlyphs int, format LocaFormat) (*Loca, error) {
	r := reader.New(buf)
	offsets := make([]uint32, numGlyphs+1)
	for i := range offsets {
		switch format {
		case LocaShort:
			v, err := r.U16()
			if err != nil {
				return nil, errTruncated("loca", uint32(r.Pos()))
			}
			offsets[i] = uint32(v) * 2
		case LocaLong:
			v, err := r.U32()
			if err != nil {
				return nil, errTruncated("loca", uint32(r.Pos()))
			}
			offsets[i] = v
		default:
			return nil, errMalformed("loca", "unknown indexToLocFormat")
		}
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, errMalformed("loca", "offsets are not monotonically increasing")
		}
	}
	return &Loca{offsets: offsets}, nil
}
