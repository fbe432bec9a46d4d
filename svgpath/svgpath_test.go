package svgpath

import (
	"testing"

	"github.com/npillmayer/glyphatlas/glyph"
)

func TestEmitTriangle(t *testing.T) {
	contours := []glyph.Contour{
		{
			{X: 0, Y: 0, OnCurve: true},
			{X: 100, Y: 0, OnCurve: true},
			{X: 50, Y: 100, OnCurve: true},
		},
	}
	got := Emit(contours)
	want := "M0 0L100 0L50 -100Z"
	if got != want {
		t.Fatalf("Emit() = %q; want %q", got, want)
	}
}

func TestEmitOffCurveEndpoints(t *testing.T) {
	contours := []glyph.Contour{
		{
			{X: 0, Y: 0, OnCurve: false},
			{X: 100, Y: 0, OnCurve: false},
		},
	}
	got := Emit(contours)
	want := "M50 0Q0 0 50 0Q100 0 50 0Z"
	if got != want {
		t.Fatalf("Emit() = %q; want %q", got, want)
	}
}

func TestEmitEmptyContours(t *testing.T) {
	if got := Emit(nil); got != "" {
		t.Fatalf("Emit(nil) = %q; want empty string", got)
	}
}

func TestWrapSVGContainsPath(t *testing.T) {
	doc := WrapSVG("M0 0Z", 1000)
	if !contains(doc, "<svg") || !contains(doc, "path d='M0 0Z'") {
		t.Fatalf("unexpected SVG document: %s", doc)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
