package medial

import (
	"fmt"
	"math/rand/v2"
)

// Options configures the whole skeletonization pipeline. Zero fields take
// their value from DefaultOptions.
type Options struct {
	// FlattenTolerance is the maximum chord error when curves are turned
	// into polylines.
	FlattenTolerance float64
	// Rule decides which regions of multi-contour paths are inside.
	Rule FillRule
	// AxisSpacing is the boundary sampling distance for the medial axis.
	AxisSpacing float64
	Select      SelectOptions
	Fit         FitOptions
}

var DefaultOptions = Options{
	FlattenTolerance: 0.25,
	Rule:             NonZero,
	AxisSpacing:      10,
	Select:           DefaultSelectOptions,
	Fit:              DefaultFitOptions,
}

func (opts Options) withDefaults() Options {
	def := DefaultOptions
	if opts.FlattenTolerance == 0 {
		opts.FlattenTolerance = def.FlattenTolerance
	}
	if opts.AxisSpacing == 0 {
		opts.AxisSpacing = def.AxisSpacing
	}
	opts.Select = opts.Select.withDefaults()
	opts.Fit = opts.Fit.withDefaults()
	return opts
}

func (opts Options) validate() error {
	switch {
	case opts.FlattenTolerance < 0:
		return stageErrorf("options", ErrInvalidOptions, "negative flatten tolerance %g", opts.FlattenTolerance)
	case opts.AxisSpacing < 0:
		return stageErrorf("options", ErrInvalidOptions, "negative axis spacing %g", opts.AxisSpacing)
	case opts.Rule != NonZero && opts.Rule != EvenOdd:
		return stageErrorf("options", ErrInvalidOptions, "unknown fill rule %d", int(opts.Rule))
	}
	if err := opts.Select.validate(); err != nil {
		return err
	}
	return opts.Fit.validate()
}

// SelectOptions configures skeleton point selection.
type SelectOptions struct {
	// Tolerance is the largest accepted ratio between the distance from a
	// boundary sample to its nearest seed and the sample's inscribed radius.
	Tolerance float64
	// CoverageSpacing is the sampling distance of the coverage test.
	CoverageSpacing float64
	// MaxIterations caps the number of seeds added after the initial two.
	MaxIterations int
	// RelaxSteps is the number of centroidal relaxation steps per iteration.
	RelaxSteps int
	// DuplicateDistance is the distance below which two seeds are the same.
	DuplicateDistance float64
	// SeedAttempts is the number of draws for two distinct initial seeds.
	SeedAttempts int
	// VisibilitySlack is how far behind a boundary sample an occluding
	// boundary crossing may lie.
	VisibilitySlack float64

	// Seed seeds the PCG source used when Rand is nil.
	Seed uint64
	// Rand, if set, is used for all random choices. It must not be shared
	// between concurrent calls.
	Rand *rand.Rand
}

var DefaultSelectOptions = SelectOptions{
	Tolerance:         100,
	CoverageSpacing:   10,
	MaxIterations:     20,
	RelaxSteps:        5,
	DuplicateDistance: 1,
	SeedAttempts:      10,
	VisibilitySlack:   1,
}

func (opts SelectOptions) withDefaults() SelectOptions {
	def := DefaultSelectOptions
	if opts.Tolerance == 0 {
		opts.Tolerance = def.Tolerance
	}
	if opts.CoverageSpacing == 0 {
		opts.CoverageSpacing = def.CoverageSpacing
	}
	if opts.MaxIterations == 0 {
		opts.MaxIterations = def.MaxIterations
	}
	if opts.RelaxSteps == 0 {
		opts.RelaxSteps = def.RelaxSteps
	}
	if opts.DuplicateDistance == 0 {
		opts.DuplicateDistance = def.DuplicateDistance
	}
	if opts.SeedAttempts == 0 {
		opts.SeedAttempts = def.SeedAttempts
	}
	if opts.VisibilitySlack == 0 {
		opts.VisibilitySlack = def.VisibilitySlack
	}
	return opts
}

func (opts SelectOptions) validate() error {
	if opts.Tolerance < 0 || opts.CoverageSpacing < 0 || opts.MaxIterations < 0 ||
		opts.RelaxSteps < 0 || opts.DuplicateDistance < 0 || opts.SeedAttempts < 0 {
		return stageErrorf("options", ErrInvalidOptions, "negative selection parameter in %+v", opts)
	}
	return nil
}

func (opts SelectOptions) rand() *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}
	return rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
}

// FitOptions configures local primitive fitting.
type FitOptions struct {
	// Directions is the number of rays per primitive. At least 3.
	Directions int
	// ExpansionWeight pulls radii toward the current target radius.
	ExpansionWeight float64
	// PenaltyWeight pushes radii back inside the shape.
	PenaltyWeight float64
	// Progressions is the number of times the target radius grows.
	Progressions int
	// ExpansionRate multiplies the target radius on every progression.
	ExpansionRate float64
	// AlternatingIterations caps the solve/constrain loop per progression.
	AlternatingIterations int
	// VerticesOnly skips the capsule primitives fitted along skeleton
	// edges, leaving one primitive per vertex.
	VerticesOnly bool
}

var DefaultFitOptions = FitOptions{
	Directions:            128,
	ExpansionWeight:       10,
	PenaltyWeight:         10000,
	Progressions:          25,
	ExpansionRate:         1.1,
	AlternatingIterations: 15,
}

func (opts FitOptions) withDefaults() FitOptions {
	def := DefaultFitOptions
	if opts.Directions == 0 {
		opts.Directions = def.Directions
	}
	if opts.ExpansionWeight == 0 {
		opts.ExpansionWeight = def.ExpansionWeight
	}
	if opts.PenaltyWeight == 0 {
		opts.PenaltyWeight = def.PenaltyWeight
	}
	if opts.Progressions == 0 {
		opts.Progressions = def.Progressions
	}
	if opts.ExpansionRate == 0 {
		opts.ExpansionRate = def.ExpansionRate
	}
	if opts.AlternatingIterations == 0 {
		opts.AlternatingIterations = def.AlternatingIterations
	}
	return opts
}

func (opts FitOptions) validate() error {
	if opts.Directions < 3 {
		return stageErrorf("options", ErrInvalidOptions, "need at least 3 directions, got %d", opts.Directions)
	}
	if !opts.VerticesOnly && opts.Directions < 4 {
		return stageErrorf("options", ErrInvalidOptions, "capsules need at least 4 directions, got %d", opts.Directions)
	}
	if opts.ExpansionWeight < 0 || opts.PenaltyWeight < 0 || opts.ExpansionRate <= 0 {
		return stageErrorf("options", ErrInvalidOptions, "invalid weights in %+v", opts)
	}
	return nil
}

// ReconstructOptions configures turning primitives back into an outline.
type ReconstructOptions struct {
	// Smoothing is the Catmull-Rom alpha used for every emitted contour.
	Smoothing float64
	// FlattenTolerance is the chord error when smoothed primitives are
	// flattened for the union.
	FlattenTolerance float64
	// SimplifyTolerance is the Douglas-Peucker tolerance applied to the
	// union.
	SimplifyTolerance float64
}

var DefaultReconstructOptions = ReconstructOptions{
	Smoothing:         0.5,
	FlattenTolerance:  0.25,
	SimplifyTolerance: 0.5,
}

func (opts ReconstructOptions) withDefaults() ReconstructOptions {
	def := DefaultReconstructOptions
	if opts.Smoothing == 0 {
		opts.Smoothing = def.Smoothing
	}
	if opts.FlattenTolerance == 0 {
		opts.FlattenTolerance = def.FlattenTolerance
	}
	if opts.SimplifyTolerance == 0 {
		opts.SimplifyTolerance = def.SimplifyTolerance
	}
	return opts
}

// BoldOptions configures the boldness transform.
type BoldOptions struct {
	// Offset is how far the bold variant of each primitive reaches past
	// its fitted radius.
	Offset float64
	// B and Alpha shape the response curve from scale factor to blend
	// weight. B must not be 1.
	B     float64
	Alpha float64
	// Guard is the largest fraction by which a boundary point is pulled
	// back toward its origin when the skeleton lies close to it. A negative
	// Guard disables the pull.
	Guard       float64
	Reconstruct ReconstructOptions
}

var DefaultBoldOptions = BoldOptions{
	Offset:      10,
	B:           1.5,
	Alpha:       0,
	Guard:       0.3,
	Reconstruct: DefaultReconstructOptions,
}

func (opts BoldOptions) withDefaults() BoldOptions {
	def := DefaultBoldOptions
	if opts.Offset == 0 {
		opts.Offset = def.Offset
	}
	if opts.B == 0 {
		opts.B = def.B
	}
	if opts.Guard == 0 {
		opts.Guard = def.Guard
	} else if opts.Guard < 0 {
		opts.Guard = 0
	}
	opts.Reconstruct = opts.Reconstruct.withDefaults()
	return opts
}

func (opts BoldOptions) validate() error {
	if opts.B == 1 {
		return stageErrorf("embolden", ErrInvalidOptions, "b must not be 1")
	}
	if opts.Offset < 0 {
		return stageErrorf("embolden", ErrInvalidOptions, "negative offset %g", opts.Offset)
	}
	return nil
}

func (opts BoldOptions) String() string {
	return fmt.Sprintf("BoldOptions{Offset: %g, B: %g, Alpha: %g, Guard: %g}", opts.Offset, opts.B, opts.Alpha, opts.Guard)
}
