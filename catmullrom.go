package medial

import "math"

// CatmullRom converts a polyline into a smooth Bézier path through all of its
// points, using a Catmull-Rom spline with the given alpha (0.5 is the
// centripetal variant, which avoids cusps and self-intersections within a
// segment).
//
// If closed is set, the path wraps around and is closed; a trailing point
// equal to the first is ignored. An open path has straight tangents at its
// ends.
func CatmullRom(pts []Point, alpha float64, closed bool) BezPath {
	if closed && len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n == 0 {
		return nil
	}
	p := make(BezPath, 0, n+2)
	p.MoveTo(pts[0])
	if n == 1 {
		if closed {
			p.ClosePath()
		}
		return p
	}

	at := func(i int) Point {
		if closed {
			return pts[(i+n)%n]
		}
		return pts[max(0, min(n-1, i))]
	}
	// Handles relative to their anchor.
	in := make([]Vec2, n)
	out := make([]Vec2, n)
	for i := range n {
		p0, p1, p2 := at(i-1), at(i), at(i+1)
		d1 := math.Pow(p0.Distance(p1), alpha)
		d2 := math.Pow(p1.Distance(p2), alpha)
		d1s, d2s := d1*d1, d2*d2
		if closed || i > 0 {
			a := 2*d2s + 3*d2*d1 + d1s
			if den := 3 * d2 * (d2 + d1); den != 0 {
				in[i] = Vec2(p0).Mul(d2s).Add(Vec2(p1).Mul(a)).Sub(Vec2(p2).Mul(d1s)).Div(den).Sub(Vec2(p1))
			}
		}
		if closed || i < n-1 {
			a := 2*d1s + 3*d1*d2 + d2s
			if den := 3 * d1 * (d1 + d2); den != 0 {
				out[i] = Vec2(p2).Mul(d1s).Add(Vec2(p1).Mul(a)).Sub(Vec2(p0).Mul(d2s)).Div(den).Sub(Vec2(p1))
			}
		}
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		j := (i + 1) % n
		p.CubicTo(pts[i].Translate(out[i]), pts[j].Translate(in[j]), pts[j])
	}
	if closed {
		p.ClosePath()
	}
	return p
}
