package medial

import (
	"math"
	"math/rand/v2"

	"github.com/ctessum/geom"
)

// SelectSkeletonPoints chooses a sparse set of points on the medial axis
// that together cover o.
//
// Starting from two random axis points, it alternates centroidal relaxation
// and a coverage test. During relaxation every point moves to the centroid
// of its Voronoi cell restricted to o and is projected back onto the axis. A
// boundary sample is covered if its nearest point can see it and is no more
// than opts.Tolerance times its own distance to the boundary away from it.
// The point added for uncovered samples is the projection of the uncovered
// sample farthest from all current points.
//
// Selection never fails. It returns nil for an empty axis and stops early
// when the shape is covered, when a new point would duplicate an existing
// one, or after opts.MaxIterations additions.
func SelectSkeletonPoints(axis *MedialAxisGraph, o *Outline, opts SelectOptions) []Point {
	opts = opts.withDefaults()
	log := Logger()

	seeds := initialSeeds(axis, opts.rand(), opts)
	if len(seeds) == 0 {
		return nil
	}

	coverage := samplePoints(SampleBoundary(o, opts.CoverageSpacing))
	shape := o.Polygon()
	bounds := o.Bounds()

	covered := false
	iter := 0
	for ; iter < opts.MaxIterations; iter++ {
		for range opts.RelaxSteps {
			seeds = relaxSeeds(seeds, axis, shape, bounds)
		}

		uncovered := uncoveredSamples(seeds, o, coverage, opts)
		log.Debug("skeleton point selection",
			"iteration", iter,
			"points", len(seeds),
			"uncovered", len(uncovered))
		if len(uncovered) == 0 {
			covered = true
			break
		}

		next := axis.Project(farthestPoint(uncovered, seeds))
		if isDuplicate(next, seeds, opts.DuplicateDistance) {
			break
		}
		seeds = append(seeds, next)
	}
	if !covered && iter == opts.MaxIterations {
		log.Warn("skeleton point selection stopped before covering the shape",
			"iterations", iter,
			"points", len(seeds))
	}
	return seeds
}

func initialSeeds(axis *MedialAxisGraph, r *rand.Rand, opts SelectOptions) []Point {
	switch len(axis.Segments) {
	case 0:
		return nil
	case 1:
		s := axis.Segments[0]
		return []Point{axis.Points[s[0]], axis.Points[s[1]]}
	}
	random := func() Point {
		s := axis.Segments[r.IntN(len(axis.Segments))]
		return axis.Points[s[r.IntN(2)]]
	}
	p1 := random()
	p2 := random()
	for attempt := 0; p1.Distance(p2) < opts.DuplicateDistance && attempt < opts.SeedAttempts; attempt++ {
		p2 = random()
	}
	return []Point{p1, p2}
}

// relaxSeeds performs one Lloyd step: each seed moves to the area centroid of
// its Voronoi cell intersected with the shape, projected onto the axis.
// Seeds with empty restricted cells stay put.
func relaxSeeds(seeds []Point, axis *MedialAxisGraph, shape geom.Polygon, bounds Rect) []Point {
	out := make([]Point, len(seeds))
	for i := range seeds {
		out[i] = seeds[i]
		cell := voronoiCell(seeds, i, bounds)
		if len(cell) < 3 {
			continue
		}
		rvc := intersectRings([][]Point{cell}, shape)
		c, area := ringsCentroid(rvc)
		if area <= 0 {
			continue
		}
		out[i] = axis.Project(c)
	}
	return out
}

// uncoveredSamples returns the samples not covered by their nearest seed.
func uncoveredSamples(seeds []Point, o *Outline, samples []Point, opts SelectOptions) []Point {
	radii := make([]float64, len(seeds))
	for i, s := range seeds {
		radii[i] = o.Distance(s)
	}
	var out []Point
	for _, sample := range samples {
		best := nearestPoint(sample, seeds)
		if best == -1 {
			out = append(out, sample)
			continue
		}
		ratio := sample.Distance(seeds[best]) / (radii[best] + 0.001)
		if ratio > opts.Tolerance || !visible(seeds[best], sample, o, opts.VisibilitySlack) {
			out = append(out, sample)
		}
	}
	return out
}

// visible reports whether the segment from a seed to a boundary sample stays
// inside o, ignoring crossings within slack of the sample itself.
func visible(from, sample Point, o *Outline, slack float64) bool {
	for _, hit := range o.IntersectLine(Line{from, sample}) {
		if hit.Distance(sample) > slack {
			return false
		}
	}
	return true
}

// farthestPoint returns the candidate whose nearest reference is farthest
// away.
func farthestPoint(candidates, refs []Point) Point {
	best := candidates[0]
	bestD := -1.0
	for _, c := range candidates {
		d := math.Inf(1)
		for _, r := range refs {
			d = min(d, c.Distance(r))
		}
		if d > bestD {
			bestD = d
			best = c
		}
	}
	return best
}

func isDuplicate(pt Point, pts []Point, dist float64) bool {
	for _, p := range pts {
		if p.Distance(pt) < dist {
			return true
		}
	}
	return false
}
