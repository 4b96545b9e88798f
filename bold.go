package medial

import (
	"math"
)

// blendWeight maps a scale factor to the weight of the regular profile:
// 1 keeps the fitted radii, 0 uses the bold ones.
func blendWeight(scale, b, alpha float64) float64 {
	q := (math.Pow(scale, alpha-1) - b) / (1 - b)
	return max(0, min(1, q))
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := max(0, min(1, (x-edge0)/(edge1-edge0)))
	return t * t * (3 - 2*t)
}

// Embolden computes the outline of a fitted skeleton whose strokes are
// adjusted for a scale of (sx, sy). Per axis, every boundary point is
// blended between the fitted primitive and a bold variant whose radii are
// opts.Offset larger; scaling a glyph down makes its strokes relatively
// bolder so that they keep their visual weight.
//
// Points far from their origin but close to another part of the skeleton
// are pulled back towards the origin by up to opts.Guard of their distance,
// which keeps thickened strokes from running into each other. Closeness is
// measured to the sparse skeleton fs.MedialAxisGraph, not to the raw axis
// in fs.Axis.
func Embolden(fs *FittedSkeleton, sx, sy float64, opts BoldOptions) (BezPath, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !(sx > 0) || !(sy > 0) || math.IsInf(sx, 0) || math.IsInf(sy, 0) {
		return nil, stageErrorf("embolden", ErrInvalidOptions, "scale (%g, %g)", sx, sy)
	}
	if fs == nil || len(fs.Primitives) == 0 {
		return nil, stageErrorf("embolden", ErrNoPrimitives, "fit primitives before emboldening")
	}

	qx := blendWeight(sx, opts.B, opts.Alpha)
	qy := blendWeight(sy, opts.B, opts.Alpha)
	Logger().Debug("emboldening", "sx", sx, "sy", sy, "qx", qx, "qy", qy, "options", opts)

	polys := make([][]Point, len(fs.Primitives))
	for i, prim := range fs.Primitives {
		reg := prim.Boundary(0)
		bold := prim.Boundary(opts.Offset)
		poly := make([]Point, len(reg))
		for j := range reg {
			blended := Pt(
				qx*reg[j].X+(1-qx)*bold[j].X,
				qy*reg[j].Y+(1-qy)*bold[j].Y,
			)
			origin := prim.Origins[j]
			v := blended.Sub(origin)
			r := v.Hypot()
			if r == 0 {
				poly[j] = blended
				continue
			}
			minDist := fs.MedialAxisGraph.Distance(blended)
			shrink := smoothstep(0, 1, (r-minDist)/r) * opts.Guard
			poly[j] = origin.Translate(v.Div(r).Mul(r - r*shrink))
		}
		polys[i] = poly
	}
	return unionSmoothed(polys, opts.Reconstruct)
}

// Embolden replaces subpath i with its emboldened outline for a scale of
// (sx, sy); see the package-level Embolden. On error the subpath is left
// unchanged.
func (s *Shape) Embolden(i int, sx, sy float64, opts BoldOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, err := s.skeleton(i)
	if err != nil {
		return err
	}
	p, err := Embolden(fs, sx, sy, opts)
	if err != nil {
		return err
	}
	s.replace(i, p)
	return nil
}

// ScaleSubpath resizes subpath i by (sx, sy) about the center of its
// bounding box and then adjusts its stroke weight for that scale with
// Embolden. On error the subpath is left unchanged.
func (s *Shape) ScaleSubpath(i int, sx, sy float64, opts BoldOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if !(sx > 0) || !(sy > 0) {
		return stageErrorf("scale", ErrInvalidOptions, "scale (%g, %g)", sx, sy)
	}
	p := s.subpaths[i]
	scaled := p.Transform(ScaleAbout(sx, sy, p.BoundingBox().Center()))
	fs, err := Skeletonize(scaled, s.opts)
	if err != nil {
		return err
	}
	out, err := Embolden(fs, sx, sy, opts)
	if err != nil {
		return err
	}
	s.replace(i, out)
	return nil
}
