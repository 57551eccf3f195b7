// Package geom2d provides a small planar geometry kernel.
//
// # Overview
//
// The package offers immutable points and vectors, infinite lines and
// bounded segments with membership tests, and integer "areas"
// (axis-aligned rectangles and ellipses) that enumerate the lattice
// points they contain.
//
// # Quick Start
//
//	l, err := geom2d.NewLine(geom2d.Pt(0, 0), geom2d.Pt(1, 1))
//	if err != nil {
//	    return err
//	}
//	l.Contains(geom2d.Pt(5, 5))             // true
//	l.ContainsOnSide(geom2d.Pt(-1, -1), true) // false
//
//	e := geom2d.NewEllipseArea(-2, -2, 4, 4)
//	for p := range e.Points() {
//	    fmt.Println(p)
//	}
//
// # Exactness
//
// Equality and all membership predicates compare float64 values exactly.
// No epsilon is applied: a point lies on a line only if the cross product
// evaluates to exactly zero. Axis-aligned lines have directions whose
// components are exactly 0 or ±1, so stepping along them yields exact
// lattice points.
//
// # Coordinate System
//
// Areas use integer bounding boxes (x, y, width, height). Lattice points
// are enumerated row by row: increasing y, then increasing x.
//
// # Concurrency
//
// Point, Line and Segment are immutable values and safe to share. Area
// implementations are mutated by SetBounds and Scale and assume a single
// writer per instance.
package geom2d
