package medial

import "math"

// Line represents a line segment. Skeleton edges, rays and the edges of
// flattened outlines are all lines.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t ∈ [0, 1].
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the point halfway along the line.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Nearest returns the squared distance from pt to the closest point on the
// segment and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		return pt.Sub(l.Eval(t)).Hypot2(), t
	}
}

// Project returns the point on the segment closest to pt.
func (l Line) Project(pt Point) Point {
	_, t := l.Nearest(pt)
	return l.Eval(t)
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}

// Intersect reports where two segments cross. t is the parameter of the
// crossing on l, u the one on o. Collinear segments do not intersect.
func (l Line) Intersect(o Line) (at Point, t, u float64, ok bool) {
	const epsilon = 1e-12
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	det := ab.Cross(cd)
	if math.Abs(det) < epsilon*ab.Hypot()*cd.Hypot() || det == 0 {
		return Point{}, 0, 0, false
	}
	ac := o.P0.Sub(l.P0)
	t = ac.Cross(cd) / det
	u = ac.Cross(ab) / det
	const slack = 1e-9
	if t < -slack || t > 1+slack || u < -slack || u > 1+slack {
		return Point{}, 0, 0, false
	}
	return l.Eval(t), t, u, true
}
