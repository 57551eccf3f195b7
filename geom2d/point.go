package geom2d

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/fixed"
)

// Number is a constraint for the scalar types points can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point represents a 2D point or vector.
//
// Points are immutable values. Two points are equal iff both coordinates
// compare equal with ==; no tolerance is applied.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PtOf creates a Point from any integer or floating-point coordinates.
func PtOf[T Number](x, y T) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// PointFromFixed converts a 26.6 fixed-point point.
func PointFromFixed(q fixed.Point26_6) Point {
	return Point{X: float64(q.X) / 64, Y: float64(q.Y) / 64}
}

// Sum returns the component-wise sum p + q.
func (p Point) Sum(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Diff returns the component-wise difference p - q.
func (p Point) Diff(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec returns the vector going from p to q, that is q - p.
func (p Point) Vec(q Point) Point {
	return Point{X: q.X - p.X, Y: q.Y - p.Y}
}

// Scalar returns p multiplied component-wise by k.
func (p Point) Scalar(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// It is zero iff the two vectors are parallel.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm returns the Euclidean length of the vector.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return Point{X: p.X / n, Y: p.Y / n}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Diff(q).Norm()
}

// Angle returns the unsigned angle in [0, π] between p and q.
// The angle is undefined if either vector is zero, in which case
// ErrInvalidArgument is returned.
func (p Point) Angle(q Point) (float64, error) {
	if p.IsZero() || q.IsZero() {
		return 0, fmt.Errorf("%w: angle with zero vector (%v, %v)", ErrInvalidArgument, p, q)
	}
	c := p.Normalize().Dot(q.Normalize())
	// Rounding can push the cosine just outside [-1, 1].
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c), nil
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Equal reports whether p and q have exactly the same coordinates.
func (p Point) Equal(q Point) bool {
	return p == q
}

// Hash returns a structural hash of p. Equal points hash equally.
func (p Point) Hash() uint64 {
	var buf [16]byte
	p.putBits(buf[:])
	return xxhash.Sum64(buf[:])
}

// putBits writes the canonical bit patterns of both coordinates into b.
// Negative zero is folded into positive zero so that Hash agrees with ==.
func (p Point) putBits(b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], canonicalBits(p.X))
	binary.LittleEndian.PutUint64(b[8:16], canonicalBits(p.Y))
}

func canonicalBits(v float64) uint64 {
	if v == 0 {
		return 0
	}
	return math.Float64bits(v)
}

// Fixed converts p to a 26.6 fixed-point point, rounding to the nearest 1/64.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
