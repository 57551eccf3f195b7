package mem

import "errors"

var (
	// ErrNullOperand is returned when a required buffer or reader is nil.
	// It is checked before any index or length argument.
	ErrNullOperand = errors.New("mem: nil operand")

	// ErrInvalidArgument is returned for negative offsets, lengths or
	// sizes, and for views that do not fit in their backing buffer.
	ErrInvalidArgument = errors.New("mem: invalid argument")

	// ErrIndexOutOfRange is returned for accesses outside a view.
	ErrIndexOutOfRange = errors.New("mem: index out of range")
)
