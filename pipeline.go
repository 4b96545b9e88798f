package medial

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Skeletonize runs the whole analysis on one subpath: it flattens p,
// extracts the raw medial axis, selects skeleton vertices, connects them and
// fits primitives. The returned skeleton's Axis field holds the raw axis.
//
// Errors wrap ErrInvalidOptions, ErrEmptyPath, or ErrDisconnected for shapes
// whose sampled medial axis falls apart (for example strokes pinched thinner
// than the sampling distance).
func Skeletonize(p BezPath, opts Options) (*FittedSkeleton, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	o := NewOutline(p, opts.FlattenTolerance, opts.Rule)
	if !enclosesArea(o) {
		return nil, stageErrorf("outline", ErrEmptyPath, "%d contours", len(o.Contours))
	}
	return skeletonize(o, opts)
}

func skeletonize(o *Outline, opts Options) (*FittedSkeleton, error) {
	axis := ExtractMedialAxis(o, opts.AxisSpacing)
	if !axis.Connected() {
		// Fail before the comparatively expensive selection.
		return nil, stageErrorf("skeleton", ErrDisconnected, "%d points in %d components", len(axis.Points), axis.components())
	}
	vertices := SelectSkeletonPoints(axis, o, opts.Select)
	sk, err := BuildSkeleton(axis, vertices, o)
	if err != nil {
		return nil, err
	}
	fs := FitPrimitives(sk, o, opts.Fit)
	fs.Axis = axis
	return fs, nil
}

func enclosesArea(o *Outline) bool {
	for _, c := range o.Contours {
		if len(c) >= 3 && math.Abs(ringSignedArea(c)) > minRingArea {
			return true
		}
	}
	return false
}

// SkeletonizeAll skeletonizes independent paths on up to workers goroutines.
// A non-positive workers uses GOMAXPROCS. Every path gets its own random
// source seeded with opts.Select.Seed plus its index, so results don't depend
// on scheduling; opts.Select.Rand is ignored.
//
// The first error cancels the remaining work and is returned. Results are in
// the order of paths.
func SkeletonizeAll(ctx context.Context, paths []BezPath, opts Options, workers int) ([]*FittedSkeleton, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*FittedSkeleton, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := opts
			o.Select.Seed += uint64(i)
			o.Select.Rand = nil
			fs, err := Skeletonize(p, o)
			if err != nil {
				return fmt.Errorf("path %d: %w", i, err)
			}
			out[i] = fs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
