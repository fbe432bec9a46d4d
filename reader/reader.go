// Package reader implements a bounds-checked, big-endian cursor over an
// immutable byte slice, used by package sfnt to decode SFNT table data.
package reader

import "errors"

// ErrTruncated is returned whenever a read would run past the end of the
// underlying byte slice.
var ErrTruncated = errors.New("reader: truncated")

// ErrOutOfRange is returned by Seek when the target offset lies beyond the
// slice length.
var ErrOutOfRange = errors.New("reader: offset out of range")

// R is a cursor over an immutable byte slice. The zero value is not usable;
// construct with New. A failed read never moves the cursor.
type R struct {
	b   []byte
	pos int
}

// New wraps b in a cursor positioned at offset 0.
func New(b []byte) *R {
	return &R{b: b}
}

// Len returns the number of bytes in the underlying slice.
func (r *R) Len() int { return len(r.b) }

// Pos returns the current cursor position.
func (r *R) Pos() int { return r.pos }

// Seek moves the cursor to offset. It fails with ErrOutOfRange if offset
// exceeds the slice length; the cursor is left unchanged on failure.
func (r *R) Seek(offset int) error {
	if offset < 0 || offset > len(r.b) {
		return ErrOutOfRange
	}
	r.pos = offset
	return nil
}

func (r *R) bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.b) {
		return nil, ErrTruncated
	}
	out := r.b[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// U8 reads an unsigned 8-bit integer.
func (r *R) U8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 reads a signed 8-bit integer.
func (r *R) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

// U16 reads a big-endian unsigned 16-bit integer.
func (r *R) U16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// I16 reads a big-endian signed 16-bit integer.
func (r *R) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a big-endian unsigned 32-bit integer.
func (r *R) U32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// I32 reads a big-endian signed 32-bit integer.
func (r *R) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// Fixed reads a 16.16 fixed-point value, returned as a float64.
func (r *R) Fixed() (float64, error) {
	v, err := r.I32()
	if err != nil {
		return 0, err
	}
	return float64(v) / 65536.0, nil
}

// F2Dot14 reads a 2.14 fixed-point value, returned as a float64.
func (r *R) F2Dot14() (float64, error) {
	v, err := r.I16()
	if err != nil {
		return 0, err
	}
	return float64(v) / 16384.0, nil
}

// FWord reads a signed 16-bit font design unit value.
func (r *R) FWord() (int16, error) {
	return r.I16()
}

// UFWord reads an unsigned 16-bit font design unit value.
func (r *R) UFWord() (uint16, error) {
	return r.U16()
}

// Tag reads 4 raw bytes and returns them as a string.
func (r *R) Tag() (string, error) {
	b, err := r.bytes(4)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Bytes reads n raw bytes. The returned slice aliases the underlying data
// and must be treated as read-only by the caller.
func (r *R) Bytes(n int) ([]byte, error) {
	return r.bytes(n)
}
