package medial

import "math"

// QuadBez is a quadratic Bézier segment, as found in TrueType glyph outlines.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) SignedArea() float64 {
	v := q.P0.X*(2.0*q.P1.Y+q.P2.Y) +
		2.0*(q.P1.X*(q.P2.Y-q.P0.Y)) -
		q.P2.X*(q.P0.Y+2.0*q.P1.Y)
	return v * (1.0 / 6.0)
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

// flattenCount returns the number of uniform parameter steps needed to keep
// the chord error below tolerance (Wang's formula for degree 2).
func (q QuadBez) flattenCount(tolerance float64) int {
	dd := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2)).Hypot()
	return wangCount(0.25*dd, tolerance)
}

func wangCount(bound, tolerance float64) int {
	if bound <= 0 || tolerance <= 0 {
		return 1
	}
	n := math.Ceil(math.Sqrt(bound / tolerance))
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	return int(min(n, maxFlattenSteps))
}

// maxFlattenSteps caps the subdivision of a single curve segment.
const maxFlattenSteps = 1000
