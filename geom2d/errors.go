package geom2d

import "errors"

var (
	// ErrNullOperand is returned when a required operand is nil.
	// It is always checked before any geometric validity test.
	ErrNullOperand = errors.New("geom2d: nil operand")

	// ErrInvalidArgument is returned for geometrically degenerate input:
	// coincident points defining a line or segment, or an angle query
	// involving the zero vector.
	ErrInvalidArgument = errors.New("geom2d: invalid argument")
)
