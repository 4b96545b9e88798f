package medial

import (
	"iter"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle. It bounds outlines and clips Voronoi
// cells.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// emptyRect is the identity element of [Rect.UnionPoint].
var emptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle encloses no points at all, as is the
// case for the bounding box of an empty path.
func (r Rect) IsEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// an empty rectangle, yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

func (r Rect) Path() BezPath { return slices.Collect(r.PathElements()) }

// PathElements yields the rectangle as one closed contour, counter-clockwise
// in a y-up space.
func (r Rect) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}
