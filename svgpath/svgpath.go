// Package svgpath walks a glyph's flattened contours and produces a
// minimal, deterministic SVG path using only M, L, Q and Z commands.
package svgpath

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/npillmayer/glyphatlas/glyph"
)

type point struct {
	x, y    int
	onCurve bool
}

// Emit walks contours and returns the `d` attribute value of an SVG path.
// An empty contour list yields the empty string.
func Emit(contours []glyph.Contour) string {
	var buf bytes.Buffer
	for _, c := range contours {
		emitContour(&buf, flip(c))
	}
	return buf.String()
}

// flip converts a contour to TrueType-y-up/SVG-y-down, negating y.
func flip(c glyph.Contour) []point {
	out := make([]point, len(c))
	for i, p := range c {
		out[i] = point{x: p.X, y: -p.Y, onCurve: p.OnCurve}
	}
	return out
}

func emitContour(buf *bytes.Buffer, pts []point) {
	if len(pts) == 0 {
		return
	}

	// Determine the start point: if the first point is off-curve, synthesize
	// an on-curve start at the midpoint of the last and first points, unless
	// the last point is already on-curve (in which case start there).
	ring := pts
	var start point
	if pts[0].onCurve {
		start = pts[0]
		ring = pts[1:]
	} else if pts[len(pts)-1].onCurve {
		start = pts[len(pts)-1]
		ring = pts[:len(pts)-1]
	} else {
		start = midpoint(pts[len(pts)-1], pts[0])
		// ring stays as pts: the synthesized start is not itself a ring
		// member, so every original point is still walked.
	}

	buf.WriteByte('M')
	writeCoord(buf, start.x, start.y)

	cur := start
	var buffered *point
	for i := 0; i <= len(ring); i++ {
		closing := i == len(ring)
		var next point
		if !closing {
			next = ring[i]
		} else {
			next = start
		}

		// The closing on-curve-to-on-curve segment is already drawn by the
		// trailing Z; emitting it again would duplicate the line.
		if closing && cur.onCurve && next.onCurve {
			break
		}

		switch {
		case cur.onCurve && next.onCurve:
			buf.WriteByte('L')
			writeCoord(buf, next.x, next.y)
		case cur.onCurve && !next.onCurve:
			buffered = &next
		case !cur.onCurve && next.onCurve:
			buf.WriteByte('Q')
			writeCoord(buf, buffered.x, buffered.y)
			buf.WriteByte(' ')
			writeCoord(buf, next.x, next.y)
			buffered = nil
		default: // both off-curve
			mid := midpoint(*buffered, next)
			buf.WriteByte('Q')
			writeCoord(buf, buffered.x, buffered.y)
			buf.WriteByte(' ')
			writeCoord(buf, mid.x, mid.y)
			buffered = &next
		}
		cur = next
	}
	buf.WriteByte('Z')
}

func midpoint(a, b point) point {
	return point{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2, onCurve: true}
}

// writeCoord writes "x y" with no leading space; callers write the command
// letter before the first pair and a single space between consecutive pairs.
// strconv's shortest exact decimal form produces no leading zeros and no
// trailing dot.
func writeCoord(buf *bytes.Buffer, x, y int) {
	buf.WriteString(strconv.Itoa(x))
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(y))
}

// WrapSVG wraps a path's `d` string in a minimal standalone SVG document
// sized to unitsPerEm, translating the y-flipped coordinate space back into
// view.
func WrapSVG(d string, unitsPerEm int) string {
	return fmt.Sprintf(
		`<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 %d %d'><g transform='translate(0 %d)'><path d='%s'/></g></svg>`,
		unitsPerEm, unitsPerEm, unitsPerEm, d,
	)
}

// PreviewDataURL deflates and base64-encodes a wrapped SVG document for
// inline use as a data URL (the "extended preview" capability).
func PreviewDataURL(d string, unitsPerEm int) (string, error) {
	doc := WrapSVG(d, unitsPerEm)

	var compressed bytes.Buffer
	w, err := flate.NewWriter(&compressed, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write([]byte(doc)); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(compressed.Bytes())
	return "data:image/svg+xml;flate;base64," + encoded, nil
}
