package medial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func squareOutline() *Outline {
	return NewOutline(rectPath(0, 0, 10, 10), 0.1, NonZero)
}

func TestOutlineContains(t *testing.T) {
	o := squareOutline()
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0.001, 5), true},
		{Pt(0, 5), false},
		{Pt(10, 10), false},
		{Pt(-1, 5), false},
		{Pt(5, 11), false},
	}
	for _, tt := range tests {
		if got := o.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestOutlineWinding(t *testing.T) {
	o := squareOutline()
	if w := o.Winding(Pt(5, 5)); w != 1 {
		t.Errorf("got winding %d for a counter-clockwise square, want 1", w)
	}
	if w := o.Winding(Pt(15, 5)); w != 0 {
		t.Errorf("got winding %d outside, want 0", w)
	}

	// Two overlapping squares of the same orientation.
	p := append(rectPath(0, 0, 10, 10), rectPath(5, 0, 15, 10)...)
	nz := NewOutline(p, 0.1, NonZero)
	eo := NewOutline(p, 0.1, EvenOdd)
	if w := nz.Winding(Pt(7, 5)); w != 2 {
		t.Errorf("got winding %d in the overlap, want 2", w)
	}
	if !nz.Contains(Pt(7, 5)) {
		t.Error("non-zero rule doesn't fill the overlap")
	}
	if eo.Contains(Pt(7, 5)) {
		t.Error("even-odd rule fills the overlap")
	}
}

func TestOutlineHole(t *testing.T) {
	o := NewOutline(ringPath(Pt(0, 0), 300, 200), 0.1, NonZero)
	if o.Contains(Pt(0, 0)) {
		t.Error("hole is filled")
	}
	if !o.Contains(Pt(250, 0)) {
		t.Error("ring isn't filled")
	}
	want := math.Pi * (300*300 - 200*200)
	if a := o.Area(); relDiff(a, want) > 1e-3 {
		t.Errorf("got area %v, want %v", a, want)
	}
}

func TestOutlineDistance(t *testing.T) {
	o := squareOutline()
	pt, d := o.Nearest(Pt(3, 4))
	assertNear(t, pt, Pt(0, 4), 1e-12)
	if math.Abs(d-3) > 1e-12 {
		t.Errorf("got distance %v, want 3", d)
	}
	if d := o.Distance(Pt(13, 14)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	empty := OutlineFromContours(nil, NonZero)
	if d := empty.Distance(Pt(0, 0)); !math.IsInf(d, 1) {
		t.Errorf("got distance %v to an empty outline, want +Inf", d)
	}
	if !empty.IsEmpty() {
		t.Error("outline without contours isn't empty")
	}
}

func TestOutlineIntersectLine(t *testing.T) {
	o := NewOutline(append(rectPath(0, 0, 10, 10), rectPath(20, 0, 30, 10)...), 0.1, NonZero)
	l := Line{Pt(40, 5), Pt(-10, 5)}
	got := o.IntersectLine(l)
	want := []Point{Pt(30, 5), Pt(20, 5), Pt(10, 5), Pt(0, 5)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))

	d, ok := o.FirstHit(l)
	if !ok || math.Abs(d-10) > 1e-9 {
		t.Errorf("got first hit (%v, %t), want (10, true)", d, ok)
	}
	if _, ok := o.FirstHit(Line{Pt(40, 5), Pt(50, 5)}); ok {
		t.Error("got a hit for a segment that misses")
	}
}

func TestOutlineLengthAndPointAt(t *testing.T) {
	o := squareOutline()
	if l := o.Length(); l != 40 {
		t.Errorf("got length %v, want 40", l)
	}
	if l := o.ContourLength(0); l != 40 {
		t.Errorf("got contour length %v, want 40", l)
	}
	diff(t, Pt(5, 0), o.PointAt(0, 5))
	diff(t, Pt(10, 5), o.PointAt(0, 15))
	diff(t, Pt(0, 5), o.PointAt(0, 35))
	diff(t, Rect{0, 0, 10, 10}, o.Bounds())
}

func TestOutlineFromContoursDropsClosingPoint(t *testing.T) {
	ring := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0)}
	o := OutlineFromContours([][]Point{ring, nil}, NonZero)
	if len(o.Contours) != 1 || len(o.Contours[0]) != 3 {
		t.Fatalf("got contours %v", o.Contours)
	}
	// The input isn't modified.
	diff(t, Pt(0, 0), ring[3])
	diff(t, BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0)), LineTo(Pt(10, 10)), ClosePath()}, o.Path())
}
