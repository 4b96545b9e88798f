package medial

// Reconstruct turns fitted primitives back into an outline: each primitive's
// boundary is smoothed into a closed curve, all of them are unioned, and the
// union is simplified and smoothed once more. It fails with ErrNoPrimitives
// if there is nothing to reconstruct from.
func Reconstruct(fs *FittedSkeleton, opts ReconstructOptions) (BezPath, error) {
	if fs == nil || len(fs.Primitives) == 0 {
		return nil, stageErrorf("reconstruct", ErrNoPrimitives, "fit primitives before reconstructing")
	}
	polys := make([][]Point, len(fs.Primitives))
	for i, p := range fs.Primitives {
		polys[i] = p.Boundary(0)
	}
	return unionSmoothed(polys, opts.withDefaults())
}

// unionSmoothed smooths every polygon with a closed Catmull-Rom spline,
// unions the results and returns the simplified, smoothed union. Holes wind
// clockwise, outer contours counter-clockwise.
func unionSmoothed(polys [][]Point, opts ReconstructOptions) (BezPath, error) {
	groups := make([][][]Point, 0, len(polys))
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		groups = append(groups, CatmullRom(poly, opts.Smoothing, true).Flatten(opts.FlattenTolerance))
	}
	union := unionRings(groups)
	simplified := simplifyRings(union, opts.SimplifyTolerance)

	Logger().Debug("primitives unioned",
		"primitives", len(polys),
		"rings", len(union),
		"simplified rings", len(simplified))
	if len(simplified) == 0 {
		return nil, stageErrorf("reconstruct", ErrEmptyPath, "union of %d primitives is empty", len(polys))
	}

	var out BezPath
	for _, r := range simplified {
		out = append(out, CatmullRom(r, opts.Smoothing, true)...)
	}
	return out, nil
}
