package medial

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// contour.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the contour.
	ClosePathKind
)

// PathElement is one command of a Bézier path.
//
// A valid path has a MoveTo at the beginning of each contour.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	default:
		return el
	}
}

// EndPoint returns the point the pen rests on after the element, if the
// element has one.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	LineKind PathSegmentKind = iota + 1
	QuadKind
	CubicKind
)

// PathSegment is a self-contained piece of a path with an explicit start
// point.
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the segment as a cubic Bézier, raising lines and quadratics.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0.Lerp(seg.P1, 1.0/3.0), seg.P0.Lerp(seg.P1, 2.0/3.0), seg.P1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
}

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
}

// flatten appends the points of the segment, excluding its start point, to
// dst.
func (seg PathSegment) flatten(dst []Point, tolerance float64) []Point {
	var n int
	switch seg.Kind {
	case LineKind:
		return append(dst, seg.P1)
	case QuadKind:
		n = seg.Quad().flattenCount(tolerance)
	case CubicKind:
		n = seg.Cubic().flattenCount(tolerance)
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
	for i := 1; i < n; i++ {
		dst = append(dst, seg.Eval(float64(i)/float64(n)))
	}
	return append(dst, seg.End())
}

// BezPath is a list of path elements: the move/line/quad/cubic/close command
// lists that glyph outlines are exchanged in.
type BezPath []PathElement

func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// Push appends a path element.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a MoveTo element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a LineTo element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a QuadTo element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a CubicTo element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a ClosePath element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments. Every contour is
// treated as closed: a contour that doesn't end in ClosePath still gets the
// closing line back to its start.
func (p BezPath) Segments() iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, last Point
		open := false
		closeContour := func() bool {
			open = false
			if last != start {
				return yield(Line{last, start}.Seg())
			}
			return true
		}
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				if open && !closeContour() {
					return
				}
				start, last = el.P0, el.P0
				open = true
			case LineToKind:
				p0 := last
				last = el.P0
				if !yield(Line{p0, el.P0}.Seg()) {
					return
				}
			case QuadToKind:
				p0 := last
				last = el.P1
				if !yield(QuadBez{p0, el.P0, el.P1}.Seg()) {
					return
				}
			case CubicToKind:
				p0 := last
				last = el.P2
				if !yield(CubicBez{p0, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if open && !closeContour() {
					return
				}
				last = start
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
		if open {
			closeContour()
		}
	}
}

// Contours splits the path at every MoveTo. Each returned path holds exactly
// one contour.
func (p BezPath) Contours() []BezPath {
	var out []BezPath
	var cur BezPath
	for _, el := range p {
		if el.Kind == MoveToKind && len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
		cur = append(cur, el)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// FirstPoint returns the start point of the path's first contour.
func (p BezPath) FirstPoint() (Point, bool) {
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// SignedArea returns the signed area enclosed by the path, treating every
// contour as closed. Contours oriented counter-clockwise (in a y-up space)
// contribute positively.
func (p BezPath) SignedArea() float64 {
	var a float64
	for seg := range p.Segments() {
		a += seg.SignedArea()
	}
	return a
}

// Area returns the absolute enclosed area. Holes must be oriented opposite to
// their outer contour for the result to be meaningful.
func (p BezPath) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Flatten approximates every contour with a closed polyline whose chord
// error is at most tolerance. The closing point is not repeated.
func (p BezPath) Flatten(tolerance float64) [][]Point {
	var out [][]Point
	var cur []Point
	flush := func() {
		if len(cur) > 1 && cur[len(cur)-1] == cur[0] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, contour := range p.Contours() {
		for seg := range contour.Segments() {
			if len(cur) == 0 {
				cur = append(cur, seg.Start())
			}
			cur = seg.flatten(cur, tolerance)
		}
		if len(cur) == 0 {
			if pt, ok := contour.FirstPoint(); ok {
				cur = append(cur, pt)
			}
		}
		flush()
	}
	return out
}

// BoundingBox returns the bounding box of the path, computed on a fine
// flattening of its curves.
func (p BezPath) BoundingBox() Rect {
	r := emptyRect
	for _, c := range p.Flatten(0.01) {
		for _, pt := range c {
			r = r.UnionPoint(pt)
		}
	}
	return r
}

func (p BezPath) IsNaN() bool {
	for _, el := range p {
		if el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN() {
			return true
		}
	}
	return false
}
