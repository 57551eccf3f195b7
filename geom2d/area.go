package geom2d

import (
	"fmt"
	"iter"
	"slices"
)

// Area is a shape bounded by an integer box that can enumerate the lattice
// points it contains.
//
// Every Area keeps a reference box, set by its constructor or SetBounds,
// and a current box derived from it by the last call to Scale. Scaling is
// never cumulative: each call starts again from the reference box.
type Area interface {
	// Bounds returns the current bounding box.
	Bounds() Bounds

	// SetBounds replaces both the reference and the current box.
	SetBounds(x, y, width, height int)

	// Scale sets the current box to the reference box scaled by factor.
	Scale(factor float64)

	// Points returns the interior lattice points ordered by increasing y,
	// then increasing x. The sequence reads the current box each time it
	// is iterated, so it reflects later SetBounds and Scale calls.
	Points() iter.Seq[Point]

	// OnBoundaries reports whether (x, y) lies exactly on the perimeter.
	OnBoundaries(x, y int) bool
}

// CollectPoints returns the lattice points of a as a slice.
func CollectPoints(a Area) ([]Point, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: area", ErrNullOperand)
	}
	return slices.Collect(a.Points()), nil
}

// CountPoints returns the number of lattice points of a without
// materializing them.
func CountPoints(a Area) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: area", ErrNullOperand)
	}
	n := 0
	for range a.Points() {
		n++
	}
	return n, nil
}

// box holds the reference/current bounding box pair shared by all areas.
type box struct {
	ref Bounds
	cur Bounds
}

func newBox(x, y, width, height int) box {
	b := Bounds{X: x, Y: y, Width: width, Height: height}
	return box{ref: b, cur: b}
}

// Bounds returns the current bounding box.
func (b *box) Bounds() Bounds {
	return b.cur
}

// SetBounds replaces both the reference and the current box.
func (b *box) SetBounds(x, y, width, height int) {
	b.ref = Bounds{X: x, Y: y, Width: width, Height: height}
	b.cur = b.ref
	Logger().Debug("geom2d: area bounds set", "bounds", b.ref)
}

// Scale sets the current box to the reference box scaled by factor.
func (b *box) Scale(factor float64) {
	b.cur = b.ref.Scale(factor)
	Logger().Debug("geom2d: area scaled", "factor", factor, "reference", b.ref, "bounds", b.cur)
}
