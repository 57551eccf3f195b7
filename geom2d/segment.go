package geom2d

import "fmt"

// Segment is the bounded chord between Origin and Head.
//
// Unlike Line, a segment is parametrized over [0, 1] by the raw chord
// vector head - origin, so PointAt(0) is the origin and PointAt(1) is the
// head exactly. Direction is the unit vector a Line through the same two
// points would have; Equal and Hash use it, which makes a segment equal to
// the line NewLine(origin, head).
type Segment struct {
	origin    Point
	head      Point
	direction Point
}

// NewSegment returns the segment from (x0, y0) to (x1, y1).
// It returns ErrInvalidArgument if the two endpoints coincide.
func NewSegment(x0, y0, x1, y1 float64) (Segment, error) {
	return SegmentBetween(Pt(x0, y0), Pt(x1, y1))
}

// SegmentBetween returns the segment from origin to head.
// It returns ErrInvalidArgument if origin == head.
func SegmentBetween(origin, head Point) (Segment, error) {
	if origin == head {
		Logger().Debug("geom2d: rejected segment with coincident endpoints", "point", origin)
		return Segment{}, fmt.Errorf("%w: segment with coincident endpoints %v", ErrInvalidArgument, origin)
	}
	return Segment{
		origin:    origin,
		head:      head,
		direction: origin.Vec(head).Normalize(),
	}, nil
}

// Origin returns the first endpoint.
func (s Segment) Origin() Point { return s.origin }

// Head returns the second endpoint.
func (s Segment) Head() Point { return s.head }

// Direction returns the unit vector from Origin towards Head.
func (s Segment) Direction() Point { return s.direction }

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.origin.Distance(s.head)
}

// Line returns the infinite line supporting the segment.
func (s Segment) Line() Line {
	return Line{origin: s.origin, direction: s.direction, span: s.origin.Vec(s.head)}
}

// PointAt returns origin + d*(head - origin).
// Values of d outside [0, 1] extrapolate beyond the endpoints; use
// Contains to range-check.
func (s Segment) PointAt(d float64) Point {
	return s.origin.Sum(s.origin.Vec(s.head).Scalar(d))
}

// Contains reports whether (x, y) lies on the segment, endpoints included.
func (s Segment) Contains(x, y float64) bool {
	return s.ContainsPoint(Pt(x, y))
}

// ContainsPoint reports whether p lies on the segment, endpoints included.
func (s Segment) ContainsPoint(p Point) bool {
	chord := s.origin.Vec(s.head)
	if !onLine(s.origin, chord, p) {
		return false
	}
	d := s.origin.Vec(p).Dot(chord) / chord.Dot(chord)
	return d >= 0 && d <= 1
}

// Equal reports whether o has the same origin and direction as s.
// A nil o is never equal.
func (s Segment) Equal(o Linear) bool {
	return equalLinear(s, o)
}

// Hash returns a structural hash consistent with Equal.
func (s Segment) Hash() uint64 {
	return hashLinear(s.origin, s.direction)
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("Segment{%v -> %v}", s.origin, s.head)
}
