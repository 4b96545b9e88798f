package medial

import (
	"slices"
	"sync"
)

// Shape is a glyph outline made of independent subpaths. Each subpath is a
// compound path: an outer contour together with the holes (and islands in
// holes) nested inside it.
//
// A Shape caches the fitted skeleton of every subpath. The cache entry of a
// subpath is dropped whenever that subpath changes. A Shape is safe for
// concurrent use; operations on one Shape are serialised.
type Shape struct {
	opts Options

	mu        sync.Mutex
	subpaths  []BezPath
	skeletons []*FittedSkeleton
}

// NewShape splits p into subpaths with SplitSubpaths. opts configures the
// skeletons computed for the shape.
func NewShape(p BezPath, opts Options) *Shape {
	opts = opts.withDefaults()
	return NewShapeFromSubpaths(SplitSubpaths(p, opts.FlattenTolerance, opts.Rule), opts)
}

// NewShapeFromSubpaths creates a shape from subpaths that are already split.
func NewShapeFromSubpaths(subpaths []BezPath, opts Options) *Shape {
	s := &Shape{
		opts:      opts.withDefaults(),
		subpaths:  make([]BezPath, len(subpaths)),
		skeletons: make([]*FittedSkeleton, len(subpaths)),
	}
	for i, p := range subpaths {
		s.subpaths[i] = slices.Clone(p)
	}
	return s
}

// SplitSubpaths groups the contours of p into compound subpaths. A contour
// whose first point lies inside another contour is nested in the innermost
// such contour; every top-level contour forms one subpath together with all
// contours nested in it, at any depth. Contours are assumed not to overlap.
func SplitSubpaths(p BezPath, tolerance float64, rule FillRule) []BezPath {
	contours := p.Contours()
	outlines := make([]*Outline, len(contours))
	firsts := make([]Point, len(contours))
	for i, c := range contours {
		outlines[i] = NewOutline(c, tolerance, rule)
		firsts[i], _ = c.FirstPoint()
	}

	parent := make([]int, len(contours))
	for i := range contours {
		parent[i] = -1
		for j := range contours {
			if i == j || !outlines[j].Contains(firsts[i]) {
				continue
			}
			if parent[i] == -1 || outlines[parent[i]].Contains(firsts[j]) {
				parent[i] = j
			}
		}
	}
	children := make([][]int, len(contours))
	var roots []int
	for i, pi := range parent {
		if pi == -1 {
			roots = append(roots, i)
		} else {
			children[pi] = append(children[pi], i)
		}
	}

	out := make([]BezPath, 0, len(roots))
	var stack []int
	for _, root := range roots {
		var sub BezPath
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			sub = append(sub, contours[n]...)
			// Push in reverse so children come out in order.
			for k := len(children[n]) - 1; k >= 0; k-- {
				stack = append(stack, children[n][k])
			}
		}
		out = append(out, sub)
	}
	return out
}

// Len returns the number of subpaths.
func (s *Shape) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subpaths)
}

func (s *Shape) checkIndex(i int) error {
	if i < 0 || i >= len(s.subpaths) {
		return stageErrorf("shape", ErrIndexOutOfRange, "index %d, %d subpaths", i, len(s.subpaths))
	}
	return nil
}

// Subpath returns a copy of subpath i.
func (s *Shape) Subpath(i int) (BezPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	return slices.Clone(s.subpaths[i]), nil
}

// Subpaths returns copies of all subpaths.
func (s *Shape) Subpaths() []BezPath {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]BezPath, len(s.subpaths))
	for i, p := range s.subpaths {
		out[i] = slices.Clone(p)
	}
	return out
}

// Path returns all subpaths concatenated into one path.
func (s *Shape) Path() BezPath {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out BezPath
	for _, p := range s.subpaths {
		out = append(out, p...)
	}
	return out
}

// Clone returns an independent copy of the shape. Cached skeletons are
// shared, as they are never modified.
func (s *Shape) Clone() *Shape {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := NewShapeFromSubpaths(s.subpaths, s.opts)
	copy(c.skeletons, s.skeletons)
	return c
}

// ReplaceSubpath replaces subpath i with p and drops its cached skeleton.
func (s *Shape) ReplaceSubpath(i int, p BezPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.replace(i, slices.Clone(p))
	return nil
}

func (s *Shape) replace(i int, p BezPath) {
	s.subpaths[i] = p
	s.skeletons[i] = nil
}

// TransformSubpath applies aff to subpath i, as an editor does when a
// subpath is moved or resized.
func (s *Shape) TransformSubpath(i int, aff Affine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.replace(i, s.subpaths[i].Transform(aff))
	return nil
}

// Filter keeps only the subpaths for which keep returns true. Kept subpaths
// keep their cached skeletons.
func (s *Shape) Filter(keep func(i int, p BezPath) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var paths []BezPath
	var skels []*FittedSkeleton
	for i, p := range s.subpaths {
		if keep(i, p) {
			paths = append(paths, p)
			skels = append(skels, s.skeletons[i])
		}
	}
	s.subpaths = paths
	s.skeletons = skels
}

// Skeleton returns the fitted skeleton of subpath i, computing it if it
// isn't cached.
func (s *Shape) Skeleton(i int) (*FittedSkeleton, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skeleton(i)
}

func (s *Shape) skeleton(i int) (*FittedSkeleton, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	if fs := s.skeletons[i]; fs != nil {
		return fs, nil
	}
	fs, err := Skeletonize(s.subpaths[i], s.opts)
	if err != nil {
		return nil, err
	}
	s.skeletons[i] = fs
	return fs, nil
}

// Reconstruct rebuilds subpath i from its fitted skeleton without modifying
// the shape.
func (s *Shape) Reconstruct(i int, opts ReconstructOptions) (BezPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fs, err := s.skeleton(i)
	if err != nil {
		return nil, err
	}
	return Reconstruct(fs, opts)
}
