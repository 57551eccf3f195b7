package geom2d

import (
	"fmt"
	"image"
	"math"
)

// Bounds is an integer bounding box anchored at (X, Y).
//
// Width and Height are not validated: zero or negative sizes are allowed
// and simply yield empty areas.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Scale returns the box with every field multiplied by factor and
// truncated toward zero.
func (b Bounds) Scale(factor float64) Bounds {
	return Bounds{
		X:      truncate(float64(b.X) * factor),
		Y:      truncate(float64(b.Y) * factor),
		Width:  truncate(float64(b.Width) * factor),
		Height: truncate(float64(b.Height) * factor),
	}
}

// Empty reports whether the box has no positive extent.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Rect converts b to an image.Rectangle. Negative sizes are canonicalized
// by image.Rect.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// String implements fmt.Stringer.
func (b Bounds) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", b.X, b.Y, b.Width, b.Height)
}

// truncate converts v to int, rounding toward zero. Out-of-range values
// saturate at math.MinInt and math.MaxInt; NaN maps to 0.
func truncate(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// interior returns the integers strictly between start and start+size,
// saturating at math.MaxInt. ok is false when there are none.
func interior(start, size int) (lo, hi int, ok bool) {
	if size < 2 || start == math.MaxInt {
		return 0, 0, false
	}
	lo = start + 1
	if start > math.MaxInt-(size-1) {
		return lo, math.MaxInt, true
	}
	return lo, start + size - 1, true
}

// offset returns v - origin. ok is false when the difference does not fit
// in an int.
func offset(v, origin int) (d int, ok bool) {
	d = v - origin
	return d, (v >= origin) == (d >= 0)
}

// extent returns how many of the size integers starting at start are not
// greater than math.MaxInt. size must be positive.
func extent(start, size int) int {
	if start > math.MaxInt-size {
		return math.MaxInt - start + 1
	}
	return size
}
