package medial

import "math"

// BoundarySample is a point on an outline's boundary.
type BoundarySample struct {
	Point Point
	// Contour is the index of the contour the sample lies on.
	Contour int
	// Index is the sample's position in the sequence of all samples.
	Index int
}

// SampleBoundary places samples along every contour of o at arc length
// offsets i·length/count, with count = ceil(length/spacing). Samples are in
// traversal order and their indices run on across contours. A contour of
// zero length contributes a single sample.
func SampleBoundary(o *Outline, spacing float64) []BoundarySample {
	var out []BoundarySample
	for ci, c := range o.Contours {
		length := o.ContourLength(ci)
		count := int(math.Ceil(length / spacing))
		if count < 1 || length == 0 {
			out = append(out, BoundarySample{Point: c[0], Contour: ci, Index: len(out)})
			continue
		}
		// Walk the polyline once rather than searching for every offset.
		seg, segStart := 0, 0.0
		for i := range count {
			offset := float64(i) / float64(count) * length
			for seg < len(c)-1 {
				l := c[seg].Distance(c[(seg+1)%len(c)])
				if segStart+l >= offset {
					break
				}
				segStart += l
				seg++
			}
			a, b := c[seg], c[(seg+1)%len(c)]
			pt := a
			if l := a.Distance(b); l > 0 {
				pt = a.Lerp(b, min(1, (offset-segStart)/l))
			}
			out = append(out, BoundarySample{Point: pt, Contour: ci, Index: len(out)})
		}
	}
	return out
}

func samplePoints(samples []BoundarySample) []Point {
	out := make([]Point, len(samples))
	for i, s := range samples {
		out[i] = s.Point
	}
	return out
}
