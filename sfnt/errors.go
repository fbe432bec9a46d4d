package sfnt

import "fmt"

// Kind is the closed set of reasons a font decode can fail.
type Kind int

const (
	// Truncated means a read ran past the end of the buffer or past a
	// table's declared boundary.
	Truncated Kind = iota
	// UnsupportedContainer means the sfnt-version is not TrueType
	// (0x00010000).
	UnsupportedContainer
	// MissingTable means a required table is absent from the font.
	MissingTable
	// UnsupportedFormat means a table variant exists but is outside the
	// implemented subset.
	UnsupportedFormat
	// Malformed means a value failed a domain check.
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Truncated:
		return "Truncated"
	case UnsupportedContainer:
		return "UnsupportedContainer"
	case MissingTable:
		return "MissingTable"
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case Malformed:
		return "Malformed"
	default:
		return "Unknown"
	}
}

// DecodeError is the single tagged error value returned by Decode.
// No partial Font is ever returned alongside a non-nil DecodeError.
type DecodeError struct {
	Kind   Kind
	Table  string // 4-byte table tag, empty if not table-specific
	Detail string // human-readable domain detail (e.g. the unsupported format number)
	Offset uint32 // byte offset in the source buffer, 0 if not applicable
}

func (e *DecodeError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	if e.Offset > 0 {
		return fmt.Sprintf("%s(%s) at offset %d: %s", e.Kind, e.Table, e.Offset, e.Detail)
	}
	return fmt.Sprintf("%s(%s): %s", e.Kind, e.Table, e.Detail)
}

func errTruncated(table string, offset uint32) error {
	return &DecodeError{Kind: Truncated, Table: table, Detail: "read past buffer or table bound", Offset: offset}
}

func errUnsupportedContainer(version uint32) error {
	return &DecodeError{Kind: UnsupportedContainer, Detail: fmt.Sprintf("sfnt version 0x%08x is not TrueType", version)}
}

func errMissingTable(tag string) error {
	return &DecodeError{Kind: MissingTable, Table: tag, Detail: "required table is absent"}
}

func errUnsupportedFormat(table string, format int) error {
	return &DecodeError{Kind: UnsupportedFormat, Table: table, Detail: fmt.Sprintf("format %d not implemented", format)}
}

func errMalformed(table, detail string) error {
	return &DecodeError{Kind: Malformed, Table: table, Detail: detail}
}

// ErrMalformed is the exported form of errMalformed, for use by packages
// downstream of sfnt (the composite resolver in package glyph reports
// cycles and depth overruns this way, since both are domain violations of
// 'glyf' rather than a new error kind).
func ErrMalformed(table, detail string) error {
	return errMalformed(table, detail)
}
