package medial

import (
	"testing"
)

func barPath() BezPath {
	return rectPath(100, 470, 500, 530)
}

func TestExtractMedialAxisBar(t *testing.T) {
	o := NewOutline(barPath(), 0.25, NonZero)
	axis := ExtractMedialAxis(o, 10)
	if !axis.Connected() {
		t.Fatalf("axis of a bar isn't connected: %d points, %d segments", len(axis.Points), len(axis.Segments))
	}
	for _, pt := range axis.Points {
		if !o.Contains(pt) {
			t.Errorf("axis point %v outside the bar", pt)
		}
	}
	r := axis.BoundingBox()
	if r.X0 > 150 || r.X1 < 450 {
		t.Errorf("axis spans %v, want most of the bar's length", r)
	}
	// The center line is part of the axis.
	if d := axis.Distance(Pt(300, 500)); d > 1 {
		t.Errorf("axis is %g away from the bar's center", d)
	}
}

func TestExtractMedialAxisRing(t *testing.T) {
	center := Pt(400, 400)
	o := NewOutline(ringPath(center, 300, 200), 0.25, NonZero)
	axis := ExtractMedialAxis(o, 5)
	if !axis.Connected() {
		t.Fatalf("axis of a ring isn't connected: %d points, %d segments", len(axis.Points), len(axis.Segments))
	}
	// A single closed loop: every node has exactly two neighbours.
	for i, d := range axis.Degrees() {
		if d != 2 {
			t.Errorf("axis point %v has degree %d", axis.Points[i], d)
		}
	}
	if len(axis.Segments) != len(axis.Points) {
		t.Errorf("got %d segments for %d points, want a single cycle", len(axis.Segments), len(axis.Points))
	}
	for _, pt := range axis.Points {
		if d := pt.Distance(center); d < 210 || d > 290 {
			t.Errorf("axis point %v is %g from the center", pt, d)
		}
	}
}

func TestExtractMedialAxisThinBar(t *testing.T) {
	// Long runs of collinear samples on both sides.
	o := NewOutline(rectPath(0, 0, 300, 20), 0.25, NonZero)
	axis := ExtractMedialAxis(o, 5)
	if !axis.Connected() {
		t.Fatalf("axis of a thin bar isn't connected: %d points, %d segments", len(axis.Points), len(axis.Segments))
	}
	for _, x := range []float64{20, 150, 280} {
		if d := axis.Distance(Pt(x, 10)); d > 1 {
			t.Errorf("axis is %g away from the center line at x=%g", d, x)
		}
	}
}

func TestExtractMedialAxisCollinear(t *testing.T) {
	o := OutlineFromContours([][]Point{{Pt(0, 0), Pt(30, 0)}}, NonZero)
	axis := ExtractMedialAxis(o, 10)
	if len(axis.Points) != 0 || len(axis.Segments) != 0 {
		t.Errorf("got %v for collinear samples", axis)
	}
}

func TestExtractMedialAxisTooFewSamples(t *testing.T) {
	o := OutlineFromContours([][]Point{{Pt(3, 4)}}, NonZero)
	axis := ExtractMedialAxis(o, 10)
	if len(axis.Points) != 0 || len(axis.Segments) != 0 {
		t.Errorf("got %v for a single sample", axis)
	}
}

func TestExtractMedialAxisSegmentsInside(t *testing.T) {
	o := NewOutline(lPath(0, 0, 200, 40), 0.25, NonZero)
	axis := ExtractMedialAxis(o, 10)
	for _, s := range axis.Segments {
		a, b := axis.Points[s[0]], axis.Points[s[1]]
		if !o.Contains(a.Midpoint(b)) {
			t.Errorf("segment %v–%v leaves the shape", a, b)
		}
	}
	if !axis.Connected() {
		t.Error("axis of an L isn't connected")
	}
}

func BenchmarkExtractMedialAxis(b *testing.B) {
	o := NewOutline(ringPath(Pt(400, 400), 300, 200), 0.25, NonZero)
	b.ResetTimer()
	for range b.N {
		ExtractMedialAxis(o, 5)
	}
}
