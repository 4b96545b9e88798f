package medial_test

import (
	"fmt"
	"log"

	"honnef.co/go/medial"
)

func ExampleShape_ScaleSubpath() {
	// A lowercase "i": a stem and a dot, which become two subpaths.
	var p medial.BezPath
	p.MoveTo(medial.Pt(100, 0))
	p.LineTo(medial.Pt(160, 0))
	p.LineTo(medial.Pt(160, 400))
	p.LineTo(medial.Pt(100, 400))
	p.ClosePath()
	p = append(p, medial.Circle{Center: medial.Pt(130, 480), Radius: 40}.Path(0.1)...)

	shape := medial.NewShape(p, medial.DefaultOptions)
	fmt.Println("subpaths:", shape.Len())

	// Shrink the stem to half its size while keeping its strokes legible.
	if err := shape.ScaleSubpath(0, 0.5, 0.5, medial.DefaultBoldOptions); err != nil {
		log.Fatal(err)
	}
	stem, _ := shape.Subpath(0)
	fmt.Printf("stem area: %.0f\n", stem.Area())
}

func ExampleSkeletonize() {
	var p medial.BezPath
	p.MoveTo(medial.Pt(100, 470))
	p.LineTo(medial.Pt(500, 470))
	p.LineTo(medial.Pt(500, 530))
	p.LineTo(medial.Pt(100, 530))
	p.ClosePath()

	fs, err := medial.Skeletonize(p, medial.DefaultOptions)
	if err != nil {
		log.Fatal(err)
	}
	for _, prim := range fs.Primitives {
		fmt.Println(prim.Kind, len(prim.Radii))
	}
}
