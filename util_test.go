package medial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// relDiff returns |a-b| / |b|.
func relDiff(a, b float64) float64 {
	return math.Abs(a-b) / math.Abs(b)
}

// rectPath returns a counter-clockwise rectangle.
func rectPath(x0, y0, x1, y1 float64) BezPath {
	return Rect{x0, y0, x1, y1}.Path()
}

// ringPath returns an annulus: a counter-clockwise outer circle with a
// clockwise hole.
func ringPath(center Point, outer, inner float64) BezPath {
	p := Circle{center, outer}.Path(0.1)
	return append(p, Circle{center, inner}.Reverse(0.1)...)
}

// lPath returns an L made of a vertical and a horizontal bar of width w
// meeting in the square [x0, x0+w]×[y0, y0+w].
func lPath(x0, y0, length, w float64) BezPath {
	var p BezPath
	p.MoveTo(Pt(x0, y0))
	p.LineTo(Pt(x0+length, y0))
	p.LineTo(Pt(x0+length, y0+w))
	p.LineTo(Pt(x0+w, y0+w))
	p.LineTo(Pt(x0+w, y0+length))
	p.LineTo(Pt(x0, y0+length))
	p.ClosePath()
	return p
}

func pathArea(p BezPath) float64 {
	return NewOutline(p, 0.1, NonZero).Area()
}
