package geom2d

import (
	"fmt"
	"iter"
)

// RectangleArea is an axis-aligned rectangle.
//
// Its interior is the half-open box [x, x+width) x [y, y+height), which
// holds exactly width*height lattice points. Its perimeter is the closed
// box edge, one unit further out on the right and bottom sides.
//
// The zero value is the degenerate box (0, 0, 0, 0) and is ready to use.
type RectangleArea struct {
	box
}

var _ Area = (*RectangleArea)(nil)

// NewRectangleArea creates a rectangle with the given bounding box.
func NewRectangleArea(x, y, width, height int) *RectangleArea {
	return &RectangleArea{box: newBox(x, y, width, height)}
}

// Points returns the lattice points of the half-open box in row-major order.
// Points past math.MaxInt are not representable and are left out.
func (r *RectangleArea) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		b := r.cur
		if b.Empty() {
			return
		}
		rows, cols := extent(b.Y, b.Height), extent(b.X, b.Width)
		for dy := 0; dy < rows; dy++ {
			for dx := 0; dx < cols; dx++ {
				if !yield(PtOf(b.X+dx, b.Y+dy)) {
					return
				}
			}
		}
	}
}

// OnBoundaries reports whether (x, y) lies on the closed perimeter:
// x in {rx, rx+width} with y in [ry, ry+height], or y in {ry, ry+height}
// with x in [rx, rx+width]. Edges past the int limits are compared exactly
// rather than wrapped.
func (r *RectangleArea) OnBoundaries(x, y int) bool {
	b := r.cur
	dx, okx := offset(x, b.X)
	dy, oky := offset(y, b.Y)
	if !okx || !oky {
		return false
	}
	if (dx == 0 || dx == b.Width) && dy >= 0 && dy <= b.Height {
		return true
	}
	return (dy == 0 || dy == b.Height) && dx >= 0 && dx <= b.Width
}

// String implements fmt.Stringer.
func (r *RectangleArea) String() string {
	return fmt.Sprintf("RectangleArea%v", r.cur)
}
