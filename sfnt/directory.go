package sfnt

import "github.com/npillmayer/glyphatlas/reader"

// sfntTrueType is the only sfnt-version this decoder accepts.
const sfntTrueType = 0x00010000

// tableRecord is one entry of the SFNT table directory.
type tableRecord struct {
	tag    string
	offset uint32
	length uint32
}

// directory is the parsed SFNT offset-subtable and table-directory,
// exposing locate-by-tag.
type directory struct {
	records map[string]tableRecord
	order   []string // tags in directory order, for diagnostics only
}

func (d *directory) find(tag string) (tableRecord, bool) {
	rec, ok := d.records[tag]
	return rec, ok
}

// parseDirectory reads the 12-byte offset-subtable and the following
// numTables table-records from the whole font buffer.
func parseDirectory(buf []byte) (*directory, error) {
	r := reader.New(buf)

	version, err := r.U32()
	if err != nil {
		return nil, errTruncated("", 0)
	}
	if version != sfntTrueType {
		return nil, errUnsupportedContainer(version)
	}
	numTables, err := r.U16()
	if err != nil {
		return nil, errTruncated("", 4)
	}
	// searchRange, entrySelector, rangeShift: not verified.
	if _, err := r.Bytes(6); err != nil {
		return nil, errTruncated("", 6)
	}

	d := &directory{records: make(map[string]tableRecord, numTables)}
	for i := 0; i < int(numTables); i++ {
		tag, err := r.Tag()
		if err != nil {
			return nil, errTruncated("", uint32(r.Pos()))
		}
		// checksum: ignored.
		if _, err := r.Bytes(4); err != nil {
			return nil, errTruncated("", uint32(r.Pos()))
		}
		offset, err := r.U32()
		if err != nil {
			return nil, errTruncated("", uint32(r.Pos()))
		}
		length, err := r.U32()
		if err != nil {
			return nil, errTruncated("", uint32(r.Pos()))
		}
		if int(offset)+int(length) > len(buf) || offset > uint32(len(buf)) {
			return nil, errMalformed(tag, "table extends past end of buffer")
		}
		d.records[tag] = tableRecord{tag: tag, offset: offset, length: length}
		d.order = append(d.order, tag)
	}
	tracer().Debugf("sfnt directory: %d tables", numTables)
	return d, nil
}
