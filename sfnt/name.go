package sfnt

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/npillmayer/glyphatlas/reader"
)

// Name ids used by the Font Facade.
const (
	nameIDFamily = 1
	nameIDStyle  = 2
)

const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformWindows   = 3
)

// NameTable is the decoded 'name' table: family-name is the best of nameID
// 1, style-name is nameID 2.
type NameTable struct {
	Family string
	Style  string
}

type nameRecord struct {
	platformID, encodingID, languageID, nameID uint16
	length, offset                             uint16
}

// decodeName parses the 'name' table and resolves family/style strings,
// preferring Unicode > Microsoft > Macintosh records.
func decodeName(buf []byte) (*NameTable, error) {
	r := reader.New(buf)
	if _, err := r.U16(); err != nil { // format, accept 0 and 1 without distinction
		return nil, errTruncated("name", 0)
	}
	count, err := r.U16()
	if err != nil {
		return nil, errTruncated("name", 2)
	}
	stringOffset, err := r.U16()
	if err != nil {
		return nil, errTruncated("name", 4)
	}
	if int(stringOffset) > len(buf) {
		return nil, errMalformed("name", "string storage offset beyond table")
	}
	strbuf := buf[stringOffset:]

	var records []nameRecord
	for i := 0; i < int(count); i++ {
		pid, err := r.U16()
		if err != nil {
			return nil, errTruncated("name", uint32(r.Pos()))
		}
		eid, err := r.U16()
		if err != nil {
			return nil, errTruncated("name", uint32(r.Pos()))
		}
		lid, err := r.U16()
		if err != nil {
			return nil, errTruncated("name", uint32(r.Pos()))
		}
		nid, err := r.U16()
		if err != nil {
			return nil, errTruncated("name", uint32(r.Pos()))
		}
		length, err := r.U16()
		if err != nil {
			return nil, errTruncated("name", uint32(r.Pos()))
		}
		off, err := r.U16()
		if err != nil {
			return nil, errTruncated("name", uint32(r.Pos()))
		}
		records = append(records, nameRecord{pid, eid, lid, nid, length, off})
	}

	family := bestName(records, strbuf, nameIDFamily)
	style := bestName(records, strbuf, nameIDStyle)
	return &NameTable{Family: family, Style: style}, nil
}

// recordPreference ranks platform/encoding combinations: Unicode (0) beats
// Microsoft (1) beats Macintosh (2); anything else is unsupported.
func recordPreference(pid, eid uint16) int {
	switch {
	case pid == platformUnicode:
		return 0
	case pid == platformWindows && (eid == 1 || eid == 10):
		return 1
	case pid == platformMacintosh && eid == 0:
		return 2
	default:
		return -1
	}
}

func bestName(records []nameRecord, strbuf []byte, nameID uint16) string {
	best := -1
	var value string
	for _, rec := range records {
		if rec.nameID != nameID {
			continue
		}
		pref := recordPreference(rec.platformID, rec.encodingID)
		if pref < 0 {
			continue
		}
		if best >= 0 && pref >= best {
			continue
		}
		start, end := int(rec.offset), int(rec.offset)+int(rec.length)
		if start < 0 || end > len(strbuf) || start > end {
			continue
		}
		s, err := decodeNameString(rec.platformID, rec.encodingID, strbuf[start:end])
		if err != nil {
			tracer().Infof("name record %d: %v", nameID, err)
			continue
		}
		best = pref
		value = s
	}
	return value
}

var utf16beDecoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
var macRomanDecoder = charmap.Macintosh.NewDecoder()

func decodeNameString(platformID, encodingID uint16, raw []byte) (string, error) {
	switch {
	case platformID == platformUnicode:
		return utf16beDecoder.String(string(raw))
	case platformID == platformWindows && (encodingID == 1 || encodingID == 10):
		return utf16beDecoder.String(string(raw))
	case platformID == platformMacintosh && encodingID == 0:
		return macRomanDecoder.String(string(raw))
	default:
		return "", errUnsupportedFormat("name", int(platformID))
	}
}
