package geom2d

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Linear is implemented by shapes that are described by an origin and a
// unit direction. Line and Segment share their equality contract through it:
// two Linear values are equal iff their origins and directions are equal.
type Linear interface {
	Origin() Point
	Direction() Point
}

// Line is an infinite line through Origin with unit Direction.
//
// Points on the line are origin + t*direction for real t. The half with
// t >= 0 is the positive side; the origin itself belongs to it.
//
// The zero value is not a valid line; use NewLine or NewLineThrough.
// Compare lines with Equal rather than ==.
type Line struct {
	origin    Point
	direction Point
	// span is the raw tail-to-head vector. Membership is tested against it
	// so that the defining points always lie exactly on the line.
	span Point
}

// NewLine returns the line through p and q, oriented from p towards q and
// with origin p. It returns ErrInvalidArgument if p == q.
func NewLine(p, q Point) (Line, error) {
	return NewLineThrough(p, q, p)
}

// NewLineThrough returns the line through origin whose direction is the
// unit vector from tail to head. The origin does not need to lie on the
// tail-head line. It returns ErrInvalidArgument if tail == head.
func NewLineThrough(tail, head, origin Point) (Line, error) {
	if tail == head {
		Logger().Debug("geom2d: rejected line with coincident points", "point", tail)
		return Line{}, fmt.Errorf("%w: line through coincident points %v", ErrInvalidArgument, tail)
	}
	span := tail.Vec(head)
	return Line{
		origin:    origin,
		direction: span.Normalize(),
		span:      span,
	}, nil
}

// Origin returns the point corresponding to t = 0.
func (l Line) Origin() Point { return l.origin }

// Direction returns the unit direction vector.
func (l Line) Direction() Point { return l.direction }

// PointAt returns origin + t*direction.
// For axis-aligned lines integer steps yield exact lattice points.
func (l Line) PointAt(t float64) Point {
	return l.origin.Sum(l.direction.Scalar(t))
}

// Param returns the signed parameter t of the projection of p onto the
// line, so that PointAt(Param(p)) is the foot of the perpendicular from p.
func (l Line) Param(p Point) float64 {
	return p.Diff(l.origin).Dot(l.direction)
}

// Contains reports whether p lies on the line.
// The test is exact: p - origin must be parallel to the direction.
func (l Line) Contains(p Point) bool {
	return onLine(l.origin, l.span, p)
}

// ContainsOnSide reports whether p lies on the positive (t >= 0) half of
// the line when positive is true, or on the negative (t < 0) half otherwise.
func (l Line) ContainsOnSide(p Point, positive bool) bool {
	if !l.Contains(p) {
		return false
	}
	return (l.Param(p) >= 0) == positive
}

// Equal reports whether o has the same origin and direction as l.
// A nil o is never equal.
func (l Line) Equal(o Linear) bool {
	return equalLinear(l, o)
}

// Hash returns a structural hash consistent with Equal.
func (l Line) Hash() uint64 {
	return hashLinear(l.origin, l.direction)
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return fmt.Sprintf("Line{origin: %v, direction: %v}", l.origin, l.direction)
}

// onLine reports whether p - origin is parallel to v.
func onLine(origin, v, p Point) bool {
	return p.Diff(origin).Cross(v) == 0
}

func equalLinear(a, b Linear) bool {
	if b == nil {
		return false
	}
	return a.Origin() == b.Origin() && a.Direction() == b.Direction()
}

func hashLinear(origin, direction Point) uint64 {
	var buf [32]byte
	origin.putBits(buf[0:16])
	direction.putBits(buf[16:32])
	return xxhash.Sum64(buf[:])
}
