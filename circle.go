package medial

import (
	"iter"
	"math"
	"slices"
)

// Circle is a full circle. It is mostly useful for building round outlines.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Path(tolerance float64) BezPath { return slices.Collect(c.PathElements(tolerance)) }

// PathElements approximates the circle with cubic Béziers, counter-clockwise
// in a y-up space.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		scaledError := math.Abs(c.Radius) / tolerance
		var n int
		var armLength float64
		if scaledError < 1.0/1.9608e-4 {
			// Solution from http://spencermortensen.com/articles/bezier-circle/
			n = 4
			armLength = 0.551915024494
		} else {
			// Empirically within tolerance.
			n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
		}

		x, y := c.Center.X, c.Center.Y
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Reverse returns the circle's path traversed clockwise, as needed for a
// hole under the non-zero rule.
func (c Circle) Reverse(tolerance float64) BezPath {
	return c.Path(tolerance).Transform(Scale(1, -1).ThenTranslate(Vec(0, 2*c.Center.Y)))
}
