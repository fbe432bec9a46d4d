package sfnt

import "github.com/npillmayer/glyphatlas/reader"

// CMap is the combined Unicode codepoint → glyph-id mapping built from the
// font's 'cmap' table.
type CMap struct {
	byCodepoint map[rune]uint16
}

// Lookup returns the glyph id mapped to cp, if any.
func (c *CMap) Lookup(cp rune) (uint16, bool) {
	gid, ok := c.byCodepoint[cp]
	return gid, ok
}

// All iterates every (codepoint, glyph-id) pair in the combined map.
func (c *CMap) All(yield func(rune, uint16) bool) {
	for cp, gid := range c.byCodepoint {
		if !yield(cp, gid) {
			return
		}
	}
}

type platformEncoding struct {
	platformID, encodingID uint16
}

// priority lists accepted (platform, encoding) combinations, most preferred
// first. encodingAny marks "any encoding" for platform 0.
const encodingAny = 0xffff

var cmapPriority = []platformEncoding{
	{0, encodingAny}, // Unicode, any encoding
	{3, 10},          // MS Unicode UCS-4
	{3, 1},           // MS Unicode BMP
	{1, 0},           // Macintosh
}

func cmapRank(pid, eid uint16) int {
	for i, pe := range cmapPriority {
		if pe.platformID != pid {
			continue
		}
		if pe.encodingID == encodingAny || pe.encodingID == eid {
			return i
		}
	}
	return -1
}

// decodeCMap parses the 'cmap' table header and every subtable whose
// (platformID, encodingID) is one of the accepted combinations, then merges
// them into a single CodepointMap: lower-priority subtables are applied
// first, so a higher-priority subtable's entry wins on conflict.
func decodeCMap(buf []byte) (*CMap, error) {
	r := reader.New(buf)
	if _, err := r.U16(); err != nil { // version, unchecked
		return nil, errTruncated("cmap", 0)
	}
	numTables, err := r.U16()
	if err != nil {
		return nil, errTruncated("cmap", 2)
	}

	type candidate struct {
		rank   int
		offset uint32
	}
	var candidates []candidate
	for i := 0; i < int(numTables); i++ {
		pid, err := r.U16()
		if err != nil {
			return nil, errTruncated("cmap", uint32(r.Pos()))
		}
		eid, err := r.U16()
		if err != nil {
			return nil, errTruncated("cmap", uint32(r.Pos()))
		}
		off, err := r.U32()
		if err != nil {
			return nil, errTruncated("cmap", uint32(r.Pos()))
		}
		if rank := cmapRank(pid, eid); rank >= 0 {
			candidates = append(candidates, candidate{rank: rank, offset: off})
		}
	}

	merged := map[rune]uint16{}
	// Apply lowest priority (highest rank number) first, so index 0 (the
	// most preferred) is applied last and wins conflicts.
	for rank := len(cmapPriority) - 1; rank >= 0; rank-- {
		for _, c := range candidates {
			if c.rank != rank {
				continue
			}
			if int(c.offset) >= len(buf) {
				tracer().Infof("cmap subtable offset %d out of bounds, skipping", c.offset)
				continue
			}
			sub, err := decodeCMapSubtable(buf[c.offset:])
			if err != nil {
				return nil, err
			}
			for cp, gid := range sub {
				merged[cp] = gid
			}
		}
	}
	return &CMap{byCodepoint: merged}, nil
}

func decodeCMapSubtable(buf []byte) (map[rune]uint16, error) {
	r := reader.New(buf)
	format, err := r.U16()
	if err != nil {
		return nil, errTruncated("cmap", 0)
	}
	switch format {
	case 0:
		return decodeCMapFormat0(buf)
	case 4:
		return decodeCMapFormat4(buf)
	case 6:
		return decodeCMapFormat6(buf)
	case 10:
		return decodeCMapFormat10(buf)
	case 12:
		return decodeCMapFormat12(buf)
	case 13:
		return decodeCMapFormat13(buf)
	default:
		return nil, errUnsupportedFormat("cmap", int(format))
	}
}

// decodeCMapFormat0 decodes the byte-encoding table: 256 entries, codepoints
// 0..255.
func decodeCMapFormat0(buf []byte) (map[rune]uint16, error) {
	r := reader.New(buf)
	if err := r.Seek(6); err != nil {
		return nil, errTruncated("cmap", 0)
	}
	ids, err := r.Bytes(256)
	if err != nil {
		return nil, errTruncated("cmap", 6)
	}
	out := map[rune]uint16{}
	for cp, gid := range ids {
		if gid != 0 {
			out[rune(cp)] = uint16(gid)
		}
	}
	return out, nil
}

// decodeCMapFormat4 decodes the segment mapping to delta values, the most
// common BMP cmap format.
func decodeCMapFormat4(buf []byte) (map[rune]uint16, error) {
	r := reader.New(buf)
	if err := r.Seek(6); err != nil {
		return nil, errTruncated("cmap", 0)
	}
	segCountX2, err := r.U16()
	if err != nil {
		return nil, errTruncated("cmap", 6)
	}
	segCount := int(segCountX2 / 2)
	if err := r.Seek(14); err != nil { // skip searchRange/entrySelector/rangeShift
		return nil, errTruncated("cmap", 8)
	}

	readU16Array := func(n int) ([]uint16, int, error) {
		start := r.Pos()
		out := make([]uint16, n)
		for i := range out {
			v, err := r.U16()
			if err != nil {
				return nil, 0, errTruncated("cmap", uint32(r.Pos()))
			}
			out[i] = v
		}
		return out, start, nil
	}

	endCode, _, err := readU16Array(segCount)
	if err != nil {
		return nil, err
	}
	if _, err := r.U16(); err != nil { // reservedPad
		return nil, errTruncated("cmap", uint32(r.Pos()))
	}
	startCode, _, err := readU16Array(segCount)
	if err != nil {
		return nil, err
	}
	idDelta, _, err := readU16Array(segCount)
	if err != nil {
		return nil, err
	}
	idRangeOffset, idRangeOffsetStart, err := readU16Array(segCount)
	if err != nil {
		return nil, err
	}

	out := map[rune]uint16{}
	for i := 0; i < segCount; i++ {
		start, end := startCode[i], endCode[i]
		if start == 0xffff && end == 0xffff {
			continue // terminator segment
		}
		for c := uint32(start); c <= uint32(end); c++ {
			var gid uint16
			if idRangeOffset[i] == 0 {
				gid = uint16(c+uint32(idDelta[i])) & 0xffff
			} else {
				addr := idRangeOffsetStart + 2*i + int(idRangeOffset[i]) + 2*int(c-uint32(start))
				if addr+1 >= len(buf) {
					continue
				}
				raw := uint16(buf[addr])<<8 | uint16(buf[addr+1])
				if raw == 0 {
					continue
				}
				gid = (raw + idDelta[i]) & 0xffff
			}
			if gid != 0 {
				out[rune(c)] = gid
			}
			if c == 0xffff { // avoid overflow wraparound on the sentinel range
				break
			}
		}
	}
	return out, nil
}

// decodeCMapFormat6 decodes the trimmed table mapping.
func decodeCMapFormat6(buf []byte) (map[rune]uint16, error) {
	r := reader.New(buf)
	if err := r.Seek(6); err != nil {
		return nil, errTruncated("cmap", 0)
	}
	firstCode, err := r.U16()
	if err != nil {
		return nil, errTruncated("cmap", 6)
	}
	entryCount, err := r.U16()
	if err != nil {
		return nil, errTruncated("cmap", 8)
	}
	out := map[rune]uint16{}
	for i := 0; i < int(entryCount); i++ {
		gid, err := r.U16()
		if err != nil {
			return nil, errTruncated("cmap", uint32(r.Pos()))
		}
		if gid != 0 {
			out[rune(int(firstCode)+i)] = gid
		}
	}
	return out, nil
}

// decodeCMapFormat10 decodes the trimmed array UCS-4 mapping.
func decodeCMapFormat10(buf []byte) (map[rune]uint16, error) {
	r := reader.New(buf)
	if err := r.Seek(12); err != nil {
		return nil, errTruncated("cmap", 0)
	}
	startCharCode, err := r.U32()
	if err != nil {
		return nil, errTruncated("cmap", 12)
	}
	numChars, err := r.U32()
	if err != nil {
		return nil, errTruncated("cmap", 16)
	}
	out := map[rune]uint16{}
	for i := uint32(0); i < numChars; i++ {
		gid, err := r.U16()
		if err != nil {
			return nil, errTruncated("cmap", uint32(r.Pos()))
		}
		if gid != 0 {
			out[rune(startCharCode+i)] = gid
		}
	}
	return out, nil
}

// decodeCMapFormat12 decodes the segmented coverage mapping, UCS-4, with a
// linear glyph-id progression per group.
func decodeCMapFormat12(buf []byte) (map[rune]uint16, error) {
	return decodeCMapGroups(buf, false)
}

// decodeCMapFormat13 decodes the many-to-one mapping: every codepoint in a
// group shares startGlyphID.
func decodeCMapFormat13(buf []byte) (map[rune]uint16, error) {
	return decodeCMapGroups(buf, true)
}

func decodeCMapGroups(buf []byte, constant bool) (map[rune]uint16, error) {
	r := reader.New(buf)
	if err := r.Seek(12); err != nil {
		return nil, errTruncated("cmap", 0)
	}
	nGroups, err := r.U32()
	if err != nil {
		return nil, errTruncated("cmap", 12)
	}
	out := map[rune]uint16{}
	for g := uint32(0); g < nGroups; g++ {
		startCharCode, err := r.U32()
		if err != nil {
			return nil, errTruncated("cmap", uint32(r.Pos()))
		}
		endCharCode, err := r.U32()
		if err != nil {
			return nil, errTruncated("cmap", uint32(r.Pos()))
		}
		startGlyphID, err := r.U32()
		if err != nil {
			return nil, errTruncated("cmap", uint32(r.Pos()))
		}
		if endCharCode < startCharCode {
			return nil, errMalformed("cmap", "group endCharCode < startCharCode")
		}
		for c := startCharCode; c <= endCharCode; c++ {
			var gid uint32
			if constant {
				gid = startGlyphID
			} else {
				gid = startGlyphID + (c - startCharCode)
			}
			if gid != 0 && gid <= 0xffff {
				out[rune(c)] = uint16(gid)
			}
			if c == endCharCode { // guard against uint32 wraparound at 0xffffffff
				break
			}
		}
	}
	return out, nil
}
