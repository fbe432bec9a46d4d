package sfnt

import "github.com/npillmayer/glyphatlas/reader"

// MaxP is the decoded 'maxp' table; only numGlyphs is needed downstream.
type MaxP struct {
	NumGlyphs int
}

func decodeMaxP(buf []byte) (*MaxP, error) {
	r := reader.New(buf)
	if err := r.Seek(4); err != nil {
		return nil, errTruncated("maxp", 0)
	}
	n, err := r.U16()
	if err != nil {
		return nil, errTruncated("maxp", 4)
	}
	return &MaxP{NumGlyphs: int(n)}, nil
}
