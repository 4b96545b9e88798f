package medial

import (
	"github.com/fogleman/delaunay"
)

// axisPadding is how far the Voronoi diagram extends past the outline's
// bounding box.
const axisPadding = 10

// ExtractMedialAxis approximates the medial axis of o by the interior
// Voronoi edges of boundary samples taken every spacing units.
//
// A Voronoi edge is kept if both of its endpoints and its midpoint lie
// strictly inside o, and if the two samples it separates are not neighbours
// on the same contour. Neighbouring samples only produce short spurs that
// run towards the boundary.
func ExtractMedialAxis(o *Outline, spacing float64) *MedialAxisGraph {
	g := &MedialAxisGraph{}
	samples := SampleBoundary(o, spacing)
	if len(samples) < 3 {
		return g
	}

	// Samples per contour. Indices within one contour are consecutive, so
	// their difference is the distance along the contour.
	count := make([]int, len(o.Contours))
	for _, s := range samples {
		count[s.Contour]++
	}
	adjacent := func(a, b BoundarySample) bool {
		if a.Contour != b.Contour {
			return false
		}
		n := count[a.Contour]
		diff := a.Index - b.Index
		if diff < 0 {
			diff = -diff
		}
		if n <= 6 {
			return diff == 1 || diff == n-1
		}
		return diff == 1 || diff > n-5
	}

	pts := make([]delaunay.Point, len(samples))
	for i, s := range samples {
		pts[i] = delaunay.Point{X: s.Point.X, Y: s.Point.Y}
	}
	tr, err := delaunay.Triangulate(pts)
	if err != nil {
		// All samples collinear or coincident.
		Logger().Debug("no triangulation of boundary samples", "samples", len(samples), "error", err)
		return g
	}

	// Triangle t owns half-edges 3t, 3t+1 and 3t+2; half-edge e runs from
	// sample Triangles[e] to the start of the next half-edge in its triangle.
	ntri := len(tr.Triangles) / 3
	centers := make([]Point, ntri)
	valid := make([]bool, ntri)
	for t := range ntri {
		centers[t], valid[t] = circumcenter(
			samples[tr.Triangles[3*t]].Point,
			samples[tr.Triangles[3*t+1]].Point,
			samples[tr.Triangles[3*t+2]].Point)
	}

	bounds := o.Bounds().Inflate(axisPadding, axisPadding)
	node := make(map[int]int)
	nodeFor := func(t int) int {
		if i, ok := node[t]; ok {
			return i
		}
		node[t] = len(g.Points)
		g.Points = append(g.Points, centers[t])
		return node[t]
	}

	for e, opp := range tr.Halfedges {
		if e >= opp {
			// Hull edges have opp == -1; interior edges are visited once.
			continue
		}
		t1, t2 := e/3, opp/3
		if !valid[t1] || !valid[t2] {
			continue
		}
		start, end := centers[t1], centers[t2]
		if !bounds.Contains(start) || !bounds.Contains(end) {
			continue
		}
		if !o.Contains(start.Midpoint(end)) || !o.Contains(start) || !o.Contains(end) {
			continue
		}
		a, b := samples[tr.Triangles[e]], samples[tr.Triangles[nextHalfedge(e)]]
		if adjacent(a, b) {
			continue
		}
		g.Segments = append(g.Segments, [2]int{nodeFor(t1), nodeFor(t2)})
	}

	Logger().Debug("medial axis extracted",
		"samples", len(samples),
		"triangles", ntri,
		"points", len(g.Points),
		"segments", len(g.Segments))
	return g
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}
