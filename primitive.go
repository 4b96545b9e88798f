package medial

import (
	"fmt"
	"math"
	"slices"
)

type PrimitiveKind int

const (
	// A VertexPrimitive is a star-shaped profile around one skeleton vertex.
	VertexPrimitive PrimitiveKind = iota + 1
	// An EdgePrimitive is a capsule-shaped profile around one skeleton
	// segment.
	EdgePrimitive
)

func (k PrimitiveKind) String() string {
	switch k {
	case VertexPrimitive:
		return "vertex"
	case EdgePrimitive:
		return "edge"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", int(k))
	}
}

// Primitive is a radius profile fitted around one skeleton element. Sample i
// describes the boundary point Origins[i] + Directions[i]·Radii[i]. The
// samples go around the element in order, so consecutive boundary points are
// neighbours.
type Primitive struct {
	Kind PrimitiveKind
	// Element is the index of the vertex or segment in the skeleton.
	Element    int
	Origins    []Point
	Directions []Vec2
	Radii      []float64
}

// Boundary returns the primitive's boundary with every radius grown by
// offset.
func (p Primitive) Boundary(offset float64) []Point {
	out := make([]Point, len(p.Radii))
	for i, r := range p.Radii {
		out[i] = p.Origins[i].Translate(p.Directions[i].Mul(r + offset))
	}
	return out
}

// FittedSkeleton is a sparse skeleton together with the primitives fitted
// around its elements.
type FittedSkeleton struct {
	MedialAxisGraph
	// Axis is the raw medial axis the skeleton was built from, if known.
	Axis       *MedialAxisGraph
	Primitives []Primitive
}

// FitPrimitives fits one primitive around every skeleton vertex and, unless
// opts.VerticesOnly is set, one capsule around every skeleton segment.
//
// Each primitive casts opts.Directions rays and grows its radii towards a
// target that increases by opts.ExpansionRate per progression, while a
// penalty keeps every radius at or below the distance at which its ray
// leaves o. Neighbouring radii are coupled, which keeps the profile smooth.
//
// FitPrimitives panics if opts.Directions is less than 3.
func FitPrimitives(sk *MedialAxisGraph, o *Outline, opts FitOptions) *FittedSkeleton {
	opts = opts.withDefaults()
	fs := &FittedSkeleton{MedialAxisGraph: *sk}
	ws := NewWorkspace(opts.Directions)
	b := o.Bounds()
	rayLength := 2*max(b.Width(), b.Height()) + 1000

	dirs := uniformDirections(opts.Directions)
	for i, v := range sk.Points {
		origins := make([]Point, len(dirs))
		for j := range origins {
			origins[j] = v
		}
		fs.Primitives = append(fs.Primitives, Primitive{
			Kind:       VertexPrimitive,
			Element:    i,
			Origins:    origins,
			Directions: dirs,
			Radii:      fitRadii(origins, dirs, o, rayLength, opts, ws),
		})
	}
	if !opts.VerticesOnly {
		for i, s := range sk.Segments {
			origins, cdirs := capsuleSamples(sk.Points[s[0]], sk.Points[s[1]], opts.Directions)
			fs.Primitives = append(fs.Primitives, Primitive{
				Kind:       EdgePrimitive,
				Element:    i,
				Origins:    origins,
				Directions: cdirs,
				Radii:      fitRadii(origins, cdirs, o, rayLength, opts, ws),
			})
		}
	}

	Logger().Debug("primitives fitted",
		"vertices", len(sk.Points),
		"segments", len(sk.Segments),
		"primitives", len(fs.Primitives),
		"directions", opts.Directions)
	return fs
}

func uniformDirections(n int) []Vec2 {
	out := make([]Vec2, n)
	for i := range out {
		out[i] = VecFromAngle(float64(i) / float64(n) * 2 * math.Pi)
	}
	return out
}

// capsuleSamples distributes n rays around the segment ab: one side, the cap
// at b, the other side and the cap at a, in that order.
func capsuleSamples(a, b Point, n int) ([]Point, []Vec2) {
	bone := b.Sub(a)
	base := bone.Angle()
	normal := VecFromAngle(base + math.Pi/2)

	quarter := n / 4
	rem := n - 4*quarter
	nSide := quarter + rem/2
	capA, capB := quarter, quarter+rem%2

	origins := make([]Point, 0, n)
	dirs := make([]Vec2, 0, n)
	side := func(from Point, d Vec2, along Vec2) {
		for i := range nSide {
			t := float64(i) / float64(max(nSide-1, 1))
			origins = append(origins, from.Translate(along.Mul(t)))
			dirs = append(dirs, d)
		}
	}
	fan := func(at Point, count int, start float64) {
		for i := range count {
			t := float64(i+1) / float64(count+1)
			origins = append(origins, at)
			dirs = append(dirs, VecFromAngle(start-t*math.Pi))
		}
	}
	side(a, normal, bone)
	fan(b, capB, base+math.Pi/2)
	side(b, normal.Negate(), bone.Negate())
	fan(a, capA, base-math.Pi/2)
	return origins, dirs
}

// fitRadii runs the progressive expansion for one primitive.
func fitRadii(origins []Point, dirs []Vec2, o *Outline, rayLength float64, opts FitOptions, ws *Workspace) []float64 {
	n := len(dirs)
	rmax := make([]float64, n)
	for i, d := range dirs {
		ray := Line{origins[i], origins[i].Translate(d.Mul(rayLength))}
		if hit, ok := o.FirstHit(ray); ok {
			rmax[i] = hit
		} else {
			rmax[i] = 1e-4
		}
	}

	initial := 1e-3
	if m := slices.Min(rmax); m > 1e-4 {
		initial = 0.99 * m
	}
	r := make([]float64, n)
	target := make([]float64, n)
	for i := range r {
		r[i] = initial
		target[i] = initial
	}

	w, p := opts.ExpansionWeight, opts.PenaltyWeight
	for range opts.Progressions {
		for i := range target {
			target[i] *= opts.ExpansionRate
		}
		for range opts.AlternatingIterations {
			active := false
			for j := range n {
				ws.d[j] = 2 + w
				ws.rhs[j] = w * target[j]
				if r[j] > rmax[j] {
					active = true
					ws.d[j] += p
					ws.rhs[j] += p * rmax[j]
				}
			}
			ws.SolveCyclic(ws.d, -1, -1, ws.rhs, r)
			if !active {
				break
			}
		}
	}
	return r
}
