package medial

import (
	"math"
	"testing"
)

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise()
	const epsilon = 1e-12
	const n = 10

	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, q.Eval(ts), c.Eval(ts), epsilon)
	}
}

func TestQuadBezSubdivide(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	q0, q1 := q.Subdivide()
	const epsilon = 1e-12
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, q0.Eval(ts), q.Eval(ts/2), epsilon)
		assertNear(t, q1.Eval(ts), q.Eval(0.5+ts/2), epsilon)
	}
}

func TestQuadbezSignedArea(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}

	// y = 1 - x^2
	q := QuadBez{Pt(1.0, 0.0), Pt(0.5, 1.0), Pt(0.0, 1.0)}
	if v := q.SignedArea(); !approxEqual(v, 2.0/3.0) {
		t.Errorf("got %v, want %v", v, 2.0/3.0)
	}
	if v := q.Transform(Translate(Vec(0.0, 1.0))).SignedArea(); !approxEqual(v, 3.5/3.0) {
		t.Errorf("got %v, want %v", v, 3.5/3.0)
	}
	if v := q.Transform(Translate(Vec(1.0, 0.0))).SignedArea(); !approxEqual(v, 3.5/3.0) {
		t.Errorf("got %v, want %v", v, 3.5/3.0)
	}
}

func TestQuadBezFlattenCount(t *testing.T) {
	straight := QuadBez{Pt(0, 0), Pt(5, 5), Pt(10, 10)}
	if n := straight.flattenCount(0.25); n != 1 {
		t.Errorf("got %d steps for a straight quad, want 1", n)
	}
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	coarse, fine := q.flattenCount(1), q.flattenCount(0.01)
	if coarse >= fine {
		t.Errorf("got %d steps at tolerance 1 and %d at 0.01", coarse, fine)
	}
	if n := q.flattenCount(0); n != 1 {
		t.Errorf("got %d steps for zero tolerance, want 1", n)
	}
}
