package medial

import (
	"errors"
	"testing"
)

// polyline returns points every step units from a to b, both included.
func polyline(a, b Point, step float64) []Point {
	n := int(a.Distance(b)/step + 0.5)
	pts := make([]Point, n+1)
	for i := range pts {
		pts[i] = a.Lerp(b, float64(i)/float64(n))
	}
	return pts
}

func TestBuildSkeletonStraight(t *testing.T) {
	o := NewOutline(barPath(), 0.25, NonZero)
	axis := pathGraph(polyline(Pt(130, 500), Pt(470, 500), 10)...)
	sk, err := BuildSkeleton(axis, []Point{Pt(150, 500), Pt(450, 500)}, o)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, &MedialAxisGraph{
		Points:   []Point{Pt(150, 500), Pt(450, 500)},
		Segments: [][2]int{{0, 1}},
	}, sk)
}

func TestBuildSkeletonRoutesAroundCorner(t *testing.T) {
	o := NewOutline(lPath(0, 0, 100, 20), 0.25, NonZero)
	pts := polyline(Pt(90, 10), Pt(10, 10), 10)
	pts = append(pts, polyline(Pt(10, 10), Pt(10, 90), 10)[1:]...)
	axis := pathGraph(pts...)

	sk, err := BuildSkeleton(axis, []Point{Pt(90, 10), Pt(10, 90)}, o)
	if err != nil {
		t.Fatal(err)
	}
	if len(sk.Points) != 3 || len(sk.Segments) != 2 {
		t.Fatalf("got %d points and %d segments, want 3 and 2", len(sk.Points), len(sk.Segments))
	}
	diff(t, []Point{Pt(90, 10), Pt(10, 90)}, sk.Points[:2])
	if d := sk.Points[2].Distance(Pt(10, 10)); d > 6 {
		t.Errorf("extra point %v isn't at the corner", sk.Points[2])
	}
	for _, s := range sk.Segments {
		if !segmentInside(sk.Points[s[0]], sk.Points[s[1]], o) {
			t.Errorf("segment %v leaves the shape", s)
		}
	}
}

func TestBuildSkeletonErrors(t *testing.T) {
	o := NewOutline(barPath(), 0.25, NonZero)
	axis := pathGraph(polyline(Pt(130, 500), Pt(470, 500), 10)...)

	if _, err := BuildSkeleton(axis, nil, o); !errors.Is(err, ErrNoVertices) {
		t.Errorf("got error %v, want ErrNoVertices", err)
	}

	split := pathGraph(Pt(130, 500), Pt(200, 500))
	split.Points = append(split.Points, Pt(400, 500), Pt(470, 500))
	split.Segments = append(split.Segments, [2]int{2, 3})
	if _, err := BuildSkeleton(split, []Point{Pt(150, 500)}, o); !errors.Is(err, ErrDisconnected) {
		t.Errorf("got error %v, want ErrDisconnected", err)
	}
	if _, err := BuildSkeleton(&MedialAxisGraph{}, []Point{Pt(150, 500)}, o); !errors.Is(err, ErrDisconnected) {
		t.Errorf("got error %v for an empty axis, want ErrDisconnected", err)
	}
}

func TestPartitionAxis(t *testing.T) {
	axis := pathGraph(polyline(Pt(0, 0), Pt(100, 0), 10)...)
	owner := partitionAxis(axis, []Point{Pt(0, 1), Pt(71, -1)})
	want := []int{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1}
	diff(t, want, owner)
}

func TestPartitionAxisSharedNode(t *testing.T) {
	axis := pathGraph(polyline(Pt(0, 0), Pt(100, 0), 10)...)
	owner := partitionAxis(axis, []Point{Pt(50, 1), Pt(50, -1)})
	want := []int{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0}
	diff(t, want, owner)

	o := NewOutline(barPath(), 0.25, NonZero)
	axis = pathGraph(polyline(Pt(130, 500), Pt(470, 500), 10)...)
	sk, err := BuildSkeleton(axis, []Point{Pt(300, 501), Pt(300, 499)}, o)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [][2]int{{0, 1}}, sk.Segments)
}

func TestSegmentInside(t *testing.T) {
	o := NewOutline(lPath(0, 0, 100, 20), 0.25, NonZero)
	if !segmentInside(Pt(10, 10), Pt(90, 10), o) {
		t.Error("segment along the bar is outside")
	}
	if segmentInside(Pt(90, 10), Pt(10, 90), o) {
		t.Error("segment across the corner is inside")
	}
}
