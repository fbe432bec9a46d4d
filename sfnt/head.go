package sfnt

import "github.com/npillmayer/glyphatlas/reader"

// LocaFormat selects the width of entries in the loca table, as recorded
// in head.indexToLocFormat.
type LocaFormat int

const (
	LocaShort LocaFormat = 0 // entries are u16, value*2
	LocaLong  LocaFormat = 1 // entries are u32
)

// Head is the decoded 'head' table.
type Head struct {
	UnitsPerEm       uint16
	XMin, YMin       int16
	XMax, YMax       int16
	IndexToLocFormat LocaFormat
}

// decodeHead parses the 'head' table.
func decodeHead(buf []byte) (*Head, error) {
	r := reader.New(buf)
	if r.Len() < 54 {
		return nil, errTruncated("head", 0)
	}
	if err := r.Seek(18); err != nil {
		return nil, errTruncated("head", 18)
	}
	unitsPerEm, err := r.U16()
	if err != nil {
		return nil, errTruncated("head", 18)
	}
	if unitsPerEm < 16 || unitsPerEm > 16384 {
		return nil, errMalformed("head", "unitsPerEm out of range [16, 16384]")
	}
	// created, modified: skip 16 bytes.
	if err := r.Seek(36); err != nil {
		return nil, errTruncated("head", 36)
	}
	xMin, _ := r.FWord()
	yMin, _ := r.FWord()
	xMax, _ := r.FWord()
	yMax, _ := r.FWord()
	// macStyle, lowestRecPPEM, fontDirectionHint: skip 6 bytes.
	if err := r.Seek(50); err != nil {
		return nil, errTruncated("head", 50)
	}
	indexToLoc, err := r.I16()
	if err != nil {
		return nil, errTruncated("head", 50)
	}
	if indexToLoc != 0 && indexToLoc != 1 {
		return nil, errMalformed("head", "indexToLocFormat must be 0 or 1")
	}
	glyphDataFormat, err := r.I16()
	if err != nil {
		return nil, errTruncated("head", 52)
	}
	if glyphDataFormat != 0 {
		return nil, errMalformed("head", "glyphDataFormat must be 0")
	}
	return &Head{
		UnitsPerEm:       unitsPerEm,
		XMin:             xMin,
		YMin:             yMin,
		XMax:             xMax,
		YMax:             yMax,
		IndexToLocFormat: LocaFormat(indexToLoc),
	}, nil
}
