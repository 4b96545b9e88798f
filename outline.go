package medial

import (
	"math"
	"slices"
	"sort"
)

// boundaryEpsilon is the distance below which a point counts as lying on the
// boundary of an outline.
const boundaryEpsilon = 1e-9

// Outline is a flattened region: one or more closed polylines interpreted
// with a fill rule. All proximity and intersection queries of the pipeline
// run against an Outline rather than against curves.
type Outline struct {
	Contours [][]Point
	Rule     FillRule

	lengths []float64
	bounds  Rect
}

// NewOutline flattens p with the given tolerance. Every contour is treated
// as closed.
func NewOutline(p BezPath, tolerance float64, rule FillRule) *Outline {
	return OutlineFromContours(p.Flatten(tolerance), rule)
}

// OutlineFromContours builds an outline from closed polylines. A trailing
// point equal to the first one is dropped. Contours with fewer than two
// distinct points are kept for sampling but enclose nothing.
func OutlineFromContours(contours [][]Point, rule FillRule) *Outline {
	o := &Outline{
		Rule:   rule,
		bounds: emptyRect,
	}
	for _, c := range contours {
		if len(c) > 1 && c[len(c)-1] == c[0] {
			c = c[:len(c)-1]
		}
		if len(c) == 0 {
			continue
		}
		c = slices.Clone(c)
		var l float64
		for i, pt := range c {
			o.bounds = o.bounds.UnionPoint(pt)
			l += pt.Distance(c[(i+1)%len(c)])
		}
		o.Contours = append(o.Contours, c)
		o.lengths = append(o.lengths, l)
	}
	return o
}

// Bounds returns the bounding box of all contours.
func (o *Outline) Bounds() Rect { return o.bounds }

// IsEmpty reports whether the outline has no contours.
func (o *Outline) IsEmpty() bool { return len(o.Contours) == 0 }

// Length returns the total perimeter.
func (o *Outline) Length() float64 {
	var l float64
	for _, cl := range o.lengths {
		l += cl
	}
	return l
}

// ContourLength returns the perimeter of contour i.
func (o *Outline) ContourLength(i int) float64 { return o.lengths[i] }

// edges calls fn for every boundary edge until fn returns false.
func (o *Outline) edges(fn func(contour int, l Line) bool) {
	for ci, c := range o.Contours {
		for i, pt := range c {
			if !fn(ci, Line{pt, c[(i+1)%len(c)]}) {
				return
			}
		}
	}
}

// Winding returns the winding number of the contours around pt.
func (o *Outline) Winding(pt Point) int {
	var w int
	o.edges(func(_ int, l Line) bool {
		side := l.P1.Sub(l.P0).Cross(pt.Sub(l.P0))
		if l.P0.Y <= pt.Y {
			if l.P1.Y > pt.Y && side > 0 {
				w++
			}
		} else {
			if l.P1.Y <= pt.Y && side < 0 {
				w--
			}
		}
		return true
	})
	return w
}

// Contains reports whether pt lies strictly inside the outline. Points on
// the boundary are outside.
func (o *Outline) Contains(pt Point) bool {
	if !o.bounds.Contains(pt) || !o.Rule.Fills(o.Winding(pt)) {
		return false
	}
	return o.Distance(pt) > boundaryEpsilon
}

// Nearest returns the boundary point closest to pt and its distance. It
// returns pt and +Inf for an empty outline.
func (o *Outline) Nearest(pt Point) (Point, float64) {
	best := pt
	bestD := math.Inf(1)
	o.edges(func(_ int, l Line) bool {
		d, t := l.Nearest(pt)
		if d < bestD {
			bestD = d
			best = l.Eval(t)
		}
		return true
	})
	return best, math.Sqrt(bestD)
}

// Distance returns the distance from pt to the boundary.
func (o *Outline) Distance(pt Point) float64 {
	_, d := o.Nearest(pt)
	return d
}

// IntersectLine returns every point where the segment l crosses the
// boundary, ordered by distance from l.P0.
func (o *Outline) IntersectLine(l Line) []Point {
	type hit struct {
		pt Point
		t  float64
	}
	var hits []hit
	o.edges(func(_ int, e Line) bool {
		if at, t, _, ok := l.Intersect(e); ok {
			hits = append(hits, hit{at, t})
		}
		return true
	})
	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })
	out := make([]Point, len(hits))
	for i, h := range hits {
		out[i] = h.pt
	}
	return out
}

// FirstHit returns the distance from l.P0 to the closest boundary crossing
// along l.
func (o *Outline) FirstHit(l Line) (float64, bool) {
	best := math.Inf(1)
	o.edges(func(_ int, e Line) bool {
		if _, t, _, ok := l.Intersect(e); ok && t < best {
			best = t
		}
		return true
	})
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best * l.Length(), true
}

// SignedArea sums the signed areas of all contours.
func (o *Outline) SignedArea() float64 {
	var a float64
	for _, c := range o.Contours {
		a += ringSignedArea(c)
	}
	return a
}

// Area returns the enclosed area, assuming holes wind opposite to their
// outer contours.
func (o *Outline) Area() float64 {
	return math.Abs(o.SignedArea())
}

// PointAt returns the point at arc length offset along contour i, measured
// from the contour's first point.
func (o *Outline) PointAt(contour int, offset float64) Point {
	c := o.Contours[contour]
	if len(c) == 1 {
		return c[0]
	}
	for i, pt := range c {
		next := c[(i+1)%len(c)]
		l := pt.Distance(next)
		if offset <= l {
			if l == 0 {
				return pt
			}
			return pt.Lerp(next, offset/l)
		}
		offset -= l
	}
	return c[0]
}

// Path returns the outline as a path of straight segments.
func (o *Outline) Path() BezPath {
	var p BezPath
	for _, c := range o.Contours {
		p.MoveTo(c[0])
		for _, pt := range c[1:] {
			p.LineTo(pt)
		}
		p.ClosePath()
	}
	return p
}
