package medial

import (
	"iter"
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// (A * B) * v == A * (B * v).
//
// Editing applications hand subpath moves and resizes to [Shape.TransformSubpath]
// as affine transforms.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// ScaleAbout creates a non-uniform scale that keeps center fixed.
func ScaleAbout(x, y float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenScale(x, y).ThenTranslate(c)
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant returns the determinant of the linear part. A zero determinant
// collapses subpaths onto a line or point.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.N0, 0) || math.IsInf(aff.N1, 0) ||
		math.IsInf(aff.N2, 0) || math.IsInf(aff.N3, 0) ||
		math.IsInf(aff.N4, 0) || math.IsInf(aff.N5, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) || math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) || math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) || math.IsNaN(aff.N5)
}

// Transform applies aff to every element of seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				return
			}
		}
	}
}
