package medial

import (
	"errors"
	"testing"
)

func skeletonizeBar(t *testing.T) *FittedSkeleton {
	t.Helper()
	fs, err := Skeletonize(barPath(), Options{Select: SelectOptions{Seed: 1}})
	if err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestReconstructRoundTrip(t *testing.T) {
	fs := skeletonizeBar(t)
	p, err := Reconstruct(fs, ReconstructOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := pathArea(barPath())
	if got := pathArea(p); relDiff(got, want) > 0.05 {
		t.Errorf("got area %v, want about %v", got, want)
	}
	if len(p.Contours()) != 1 {
		t.Errorf("got %d contours, want 1", len(p.Contours()))
	}
	if a := p.SignedArea(); a <= 0 {
		t.Errorf("got signed area %v, want a counter-clockwise outline", a)
	}
}

func TestReconstructIdempotent(t *testing.T) {
	p1, err := Reconstruct(skeletonizeBar(t), ReconstructOptions{})
	if err != nil {
		t.Fatal(err)
	}
	fs, err := Skeletonize(p1, Options{Select: SelectOptions{Seed: 1}})
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Reconstruct(fs, ReconstructOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if a1, a2 := pathArea(p1), pathArea(p2); relDiff(a2, a1) > 0.05 {
		t.Errorf("area went from %v to %v", a1, a2)
	}
}

func TestReconstructNoPrimitives(t *testing.T) {
	if _, err := Reconstruct(&FittedSkeleton{}, ReconstructOptions{}); !errors.Is(err, ErrNoPrimitives) {
		t.Errorf("got error %v, want ErrNoPrimitives", err)
	}
	if _, err := Reconstruct(nil, ReconstructOptions{}); !errors.Is(err, ErrNoPrimitives) {
		t.Errorf("got error %v for nil, want ErrNoPrimitives", err)
	}
}

func TestUnionSmoothedDisjoint(t *testing.T) {
	p, err := unionSmoothed([][]Point{square(0, 0, 10), square(50, 0, 10), {Pt(0, 0), Pt(1, 1)}}, DefaultReconstructOptions)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(p.Contours()); n != 2 {
		t.Errorf("got %d contours, want 2", n)
	}
	if _, err := unionSmoothed(nil, DefaultReconstructOptions); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got error %v, want ErrEmptyPath", err)
	}
}
