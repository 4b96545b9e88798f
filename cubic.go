package medial

// CubicBez is a cubic Bézier segment. Smoothed primitives and reconstructed
// outlines consist of cubics.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

func (c CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// flattenCount returns the number of uniform parameter steps needed to keep
// the chord error below tolerance (Wang's formula for degree 3).
func (c CubicBez) flattenCount(tolerance float64) int {
	d0 := Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2)).Hypot()
	d1 := Vec2(c.P1).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3)).Hypot()
	return wangCount(0.75*max(d0, d1), tolerance)
}
