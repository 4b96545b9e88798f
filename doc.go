// Package medial adjusts the stroke weight of glyph outlines by way of their
// medial skeletons. Scaling a glyph component down in an editor normally
// makes its strokes thinner; [Shape.ScaleSubpath] scales it and then
// re-thickens the strokes so that the component keeps its visual weight.
//
// # Pipeline
//
// Every subpath of a [Shape] goes through the same stages, which are also
// available individually:
//
//   - [NewOutline] flattens the subpath into polylines.
//   - [SampleBoundary] places samples along the boundary.
//   - [ExtractMedialAxis] approximates the medial axis by the interior edges
//     of the samples' Voronoi diagram.
//   - [SelectSkeletonPoints] picks a few points on that axis that together
//     cover the shape.
//   - [BuildSkeleton] connects them into a sparse skeleton that follows the
//     axis.
//   - [FitPrimitives] fits a radius profile around every skeleton element.
//   - [Reconstruct] unions the profiles back into an outline, and [Embolden]
//     does the same after blending them with thicker variants.
//
// [Skeletonize] runs the analysis stages in one call, and [SkeletonizeAll]
// runs them for many independent paths in parallel. A [Shape] caches the
// result per subpath until the subpath changes.
//
// # Geometry
//
// Paths are lists of [PathElement]s, as produced by font and SVG parsers, in a
// y-up coordinate space. Outer contours wind counter-clockwise and holes
// clockwise in everything this package produces. Curves are flattened before
// any analysis; boolean operations on the flattened polygons use
// github.com/ctessum/geom.
//
// # Logging
//
// The package logs through [log/slog]. It is silent until [SetLogger] is
// called.
//
// # Literature
//
//   - Medial Skeletal Diagram: A Generalized Medial Axis Approach for Compact
//     3D Shape Representation, by Guo et al.
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [On the parameterization of Catmull-Rom curves] by Yuksel et al.
//
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [On the parameterization of Catmull-Rom curves]: https://www.cemyuksel.com/research/catmullrom_param/
package medial
