package medial

// voronoiCell returns the Voronoi cell of sites[i] clipped to bounds, as a
// counter-clockwise polygon. Each other site cuts away the half-plane closer
// to it. The result is empty if the clip removes everything.
func voronoiCell(sites []Point, i int, bounds Rect) []Point {
	poly := []Point{
		Pt(bounds.X0, bounds.Y0),
		Pt(bounds.X1, bounds.Y0),
		Pt(bounds.X1, bounds.Y1),
		Pt(bounds.X0, bounds.Y1),
	}
	s := sites[i]
	var buf []Point
	for j, o := range sites {
		if j == i || o == s {
			continue
		}
		n := o.Sub(s)
		c := n.Dot(Vec2(s.Midpoint(o)))
		poly, buf = clipHalfPlane(poly, buf[:0], n, c), poly
		if len(poly) == 0 {
			return nil
		}
	}
	return poly
}

// clipHalfPlane keeps the part of poly where n·p <= c (Sutherland-Hodgman),
// writing into dst.
func clipHalfPlane(poly, dst []Point, n Vec2, c float64) []Point {
	for k, cur := range poly {
		prev := poly[(k+len(poly)-1)%len(poly)]
		dc := n.Dot(Vec2(cur)) - c
		dp := n.Dot(Vec2(prev)) - c
		if (dc <= 0) != (dp <= 0) {
			dst = append(dst, prev.Lerp(cur, dp/(dp-dc)))
		}
		if dc <= 0 {
			dst = append(dst, cur)
		}
	}
	if len(dst) < 3 {
		return dst[:0]
	}
	return dst
}

// circumcenter returns the center of the circle through a, b and c. It
// reports false for collinear points.
func circumcenter(a, b, c Point) (Point, bool) {
	ab, ac := b.Sub(a), c.Sub(a)
	d := 2 * ab.Cross(ac)
	if d == 0 {
		return Point{}, false
	}
	bl, cl := ab.Hypot2(), ac.Hypot2()
	return Pt(a.X+(ac.Y*bl-ab.Y*cl)/d, a.Y+(ab.X*cl-ac.X*bl)/d), true
}
