package geom2d

import (
	"fmt"
	"iter"
	"math"
)

// EllipseArea is the axis-aligned ellipse inscribed in its bounding box.
//
// For a box (x, y, w, h) the center is (x + w/2, y + h/2) and the
// semi-axes are a = w/2 and b = h/2, computed in floating point. A lattice
// point (i, j) is interior iff ((i-cx)/a)² + ((j-cy)/b)² < 1.
// A box with a zero or negative semi-axis has no interior points.
type EllipseArea struct {
	box
}

var _ Area = (*EllipseArea)(nil)

// NewEllipseArea creates an ellipse inscribed in the given bounding box.
func NewEllipseArea(x, y, width, height int) *EllipseArea {
	return &EllipseArea{box: newBox(x, y, width, height)}
}

// ellipse is the conic derived from a bounding box.
type ellipse struct {
	cx, cy float64
	a, b   float64
}

// geometry returns the ellipse of the current box. ok is false when a
// semi-axis is not positive.
func (e *EllipseArea) geometry() (g ellipse, ok bool) {
	bx := e.cur
	g.a = float64(bx.Width) / 2
	g.b = float64(bx.Height) / 2
	if !(g.a > 0 && g.b > 0) {
		return g, false
	}
	g.cx = float64(bx.X) + g.a
	g.cy = float64(bx.Y) + g.b
	return g, true
}

// eval returns the left-hand side of the ellipse equation at (x, y).
func (g ellipse) eval(x, y float64) float64 {
	u := (x - g.cx) / g.a
	v := (y - g.cy) / g.b
	return u*u + v*v
}

// Points returns the interior lattice points by increasing row, then
// increasing column. Boundary points are excluded.
//
// The scan never leaves the strict interior of the current box, so it
// stays finite for boxes anchored near the int limits.
func (e *EllipseArea) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		g, ok := e.geometry()
		if !ok {
			return
		}
		bx := e.cur
		rowLo, rowHi, ok := interior(bx.Y, bx.Height)
		if !ok {
			return
		}
		colLo, colHi, ok := interior(bx.X, bx.Width)
		if !ok {
			return
		}
		// Rows strictly inside (cy-b, cy+b).
		j0 := max(truncate(math.Floor(g.cy-g.b)+1), rowLo)
		j1 := min(truncate(math.Ceil(g.cy+g.b)-1), rowHi)
		if j0 > j1 {
			return
		}
		for j := j0; ; j++ {
			t := (float64(j) - g.cy) / g.b
			if r := 1 - t*t; r > 0 {
				// The chord half-width only bounds the scan; membership is
				// decided by eval so that sqrt rounding cannot change results.
				dx := g.a * math.Sqrt(r)
				i0 := max(truncate(math.Floor(g.cx-dx)), colLo)
				i1 := min(truncate(math.Ceil(g.cx+dx)), colHi)
				if !scanRow(g, j, i0, i1, yield) {
					return
				}
			}
			if j == j1 {
				return
			}
		}
	}
}

// scanRow yields the interior points of row j with columns in [i0, i1].
// It returns false if yield asked to stop.
func scanRow(g ellipse, j, i0, i1 int, yield func(Point) bool) bool {
	if i0 > i1 {
		return true
	}
	for i := i0; ; i++ {
		if g.eval(float64(i), float64(j)) < 1 && !yield(PtOf(i, j)) {
			return false
		}
		if i == i1 {
			return true
		}
	}
}

// OnBoundaries reports whether the ellipse equation evaluates to exactly 1
// at (x, y). Degenerate ellipses have no boundary.
func (e *EllipseArea) OnBoundaries(x, y int) bool {
	g, ok := e.geometry()
	if !ok {
		return false
	}
	return g.eval(float64(x), float64(y)) == 1
}

// String implements fmt.Stringer.
func (e *EllipseArea) String() string {
	return fmt.Sprintf("EllipseArea%v", e.cur)
}
