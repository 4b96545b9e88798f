package medial

import (
	"math"

	"github.com/ctessum/geom"
)

// Rings are closed polylines without a repeated closing point. Boolean
// operations on them go through github.com/ctessum/geom, which makes no
// promise about the orientation of its output; orientRings restores the
// outer-counter-clockwise convention.

const minRingArea = 1e-9

func ringSignedArea(r []Point) float64 {
	var a float64
	for i, pt := range r {
		a += Vec2(pt).Cross(Vec2(r[(i+1)%len(r)]))
	}
	return 0.5 * a
}

// ringContains is the even-odd point-in-polygon test for a single ring.
func ringContains(r []Point, pt Point) bool {
	in := false
	for i, a := range r {
		b := r[(i+1)%len(r)]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				in = !in
			}
		}
	}
	return in
}

func reverseRing(r []Point) []Point {
	out := make([]Point, len(r))
	for i, pt := range r {
		out[len(r)-1-i] = pt
	}
	return out
}

// orientRings drops degenerate rings and orients the rest by nesting depth:
// rings at even depth counter-clockwise, rings at odd depth clockwise.
func orientRings(rings [][]Point) [][]Point {
	var kept [][]Point
	for _, r := range rings {
		if len(r) >= 3 && math.Abs(ringSignedArea(r)) > minRingArea {
			kept = append(kept, r)
		}
	}
	out := make([][]Point, len(kept))
	for i, r := range kept {
		depth := 0
		inner := ringInteriorPoint(r)
		for j, o := range kept {
			if i != j && ringContains(o, inner) {
				depth++
			}
		}
		ccw := ringSignedArea(r) > 0
		if ccw != (depth%2 == 0) {
			r = reverseRing(r)
		}
		out[i] = r
	}
	return out
}

// ringInteriorPoint returns a point just inside the ring near its first
// edge, so that rings touching at a vertex don't confuse the nesting test.
func ringInteriorPoint(r []Point) Point {
	a, b := r[0], r[1]
	mid := a.Midpoint(b)
	n := b.Sub(a).Normalize()
	n = Vec(-n.Y, n.X)
	if ringSignedArea(r) < 0 {
		n = n.Negate()
	}
	const eps = 1e-6
	return mid.Translate(n.Mul(eps))
}

// ringsCentroid returns the area centroid of correctly oriented rings and
// their total area.
func ringsCentroid(rings [][]Point) (Point, float64) {
	var a, cx, cy float64
	for _, r := range rings {
		for i, p := range r {
			q := r[(i+1)%len(r)]
			cr := p.X*q.Y - q.X*p.Y
			a += cr
			cx += (p.X + q.X) * cr
			cy += (p.Y + q.Y) * cr
		}
	}
	a *= 0.5
	if math.Abs(a) < minRingArea {
		return Point{}, 0
	}
	return Pt(cx/(6*a), cy/(6*a)), a
}

func toGeomPolygon(rings [][]Point) geom.Polygon {
	poly := make(geom.Polygon, 0, len(rings))
	for _, r := range rings {
		path := make(geom.Path, len(r))
		for i, pt := range r {
			path[i] = geom.Point{X: pt.X, Y: pt.Y}
		}
		poly = append(poly, path)
	}
	return poly
}

func fromGeomPolygon(poly geom.Polygon) [][]Point {
	rings := make([][]Point, 0, len(poly))
	for _, path := range poly {
		r := make([]Point, 0, len(path))
		for _, pt := range path {
			p := Pt(pt.X, pt.Y)
			if len(r) > 0 && r[len(r)-1] == p {
				continue
			}
			r = append(r, p)
		}
		if len(r) > 1 && r[len(r)-1] == r[0] {
			r = r[:len(r)-1]
		}
		if len(r) >= 3 {
			rings = append(rings, r)
		}
	}
	return rings
}

// Polygon converts the outline for use with github.com/ctessum/geom boolean
// operations.
func (o *Outline) Polygon() geom.Polygon {
	return toGeomPolygon(orientRings(o.Contours))
}

// unionRings merges each group of rings into an accumulated region, one
// group at a time, and returns the oriented result.
func unionRings(groups [][][]Point) [][]Point {
	var acc geom.Polygon
	for _, g := range groups {
		g = orientRings(g)
		if len(g) == 0 {
			continue
		}
		if acc == nil {
			acc = toGeomPolygon(g)
			continue
		}
		acc = acc.Union(toGeomPolygon(g)).(geom.Polygon)
	}
	return orientRings(fromGeomPolygon(acc))
}

// intersectRings returns the oriented intersection of two regions.
func intersectRings(a [][]Point, b geom.Polygon) [][]Point {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	return orientRings(fromGeomPolygon(toGeomPolygon(a).Intersection(b).(geom.Polygon)))
}

// simplifyRings removes vertices within tolerance of the simplified outline
// with Douglas-Peucker. Rings that collapse are dropped.
func simplifyRings(rings [][]Point, tolerance float64) [][]Point {
	if tolerance <= 0 || len(rings) == 0 {
		return rings
	}
	s, ok := toGeomPolygon(rings).Simplify(tolerance).(geom.Polygon)
	if !ok {
		return rings
	}
	return orientRings(fromGeomPolygon(s))
}
