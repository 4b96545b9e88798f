package medial

import (
	"errors"
	"testing"
)

func TestOptionsDefaults(t *testing.T) {
	diff(t, DefaultOptions, Options{}.withDefaults())
	diff(t, DefaultBoldOptions, BoldOptions{}.withDefaults())

	// A negative guard disables the pull.
	if g := (BoldOptions{Guard: -1}).withDefaults().Guard; g != 0 {
		t.Errorf("got guard %v, want 0", g)
	}
	// Set fields are kept.
	opts := Options{AxisSpacing: 5, Fit: FitOptions{Directions: 16, VerticesOnly: true}}.withDefaults()
	if opts.AxisSpacing != 5 || opts.Fit.Directions != 16 || !opts.Fit.VerticesOnly {
		t.Errorf("got %+v", opts)
	}
	if opts.Fit.Progressions != DefaultFitOptions.Progressions {
		t.Errorf("got %d progressions, want the default", opts.Fit.Progressions)
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions.validate(); err != nil {
		t.Errorf("default options are invalid: %s", err)
	}
	if err := (FitOptions{Directions: 3, VerticesOnly: true}).withDefaults().validate(); err != nil {
		t.Errorf("three directions without capsules are invalid: %s", err)
	}
	if err := (FitOptions{Directions: 3}).withDefaults().validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("got error %v for capsules with three directions", err)
	}
	if err := (BoldOptions{B: 1}).withDefaults().validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("got error %v for b of 1", err)
	}
}

func TestSelectOptionsRand(t *testing.T) {
	a := SelectOptions{Seed: 5}.rand()
	b := SelectOptions{Seed: 5}.rand()
	for range 10 {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("same seed gave %d and %d", x, y)
		}
	}
}
