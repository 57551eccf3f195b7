package mem

import (
	"errors"
	"fmt"
	"io"
)

// ReadOnlyByteArray is a read-only view of length bytes of a backing
// buffer, starting at offset.
type ReadOnlyByteArray struct {
	base   []byte
	offset int
	length int
}

// NewReadOnlyByteArray creates a view of base[offset : offset+length].
//
// It returns ErrNullOperand if base is nil, and ErrInvalidArgument if
// offset or length is negative or the view does not fit in base.
func NewReadOnlyByteArray(base []byte, offset, length int) (*ReadOnlyByteArray, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: base buffer", ErrNullOperand)
	}
	if offset < 0 || length < 0 {
		return nil, fmt.Errorf("%w: offset %d, length %d", ErrInvalidArgument, offset, length)
	}
	if offset > len(base)-length {
		return nil, fmt.Errorf("%w: [%d, %d) exceeds buffer of %d bytes",
			ErrInvalidArgument, offset, offset+length, len(base))
	}
	return &ReadOnlyByteArray{base: base, offset: offset, length: length}, nil
}

// Len returns the number of bytes in the view.
func (a *ReadOnlyByteArray) Len() int {
	return a.length
}

// Get returns the byte at index.
func (a *ReadOnlyByteArray) Get(index int) (byte, error) {
	if err := a.checkIndex(index); err != nil {
		return 0, err
	}
	return a.base[a.offset+index], nil
}

func (a *ReadOnlyByteArray) checkIndex(index int) error {
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, a.length)
	}
	return nil
}

// ByteArray is a writable view of a backing buffer. Writes go straight to
// the backing buffer.
type ByteArray struct {
	ReadOnlyByteArray
}

// NewByteArray creates a writable view of base[offset : offset+length].
// It validates its arguments like NewReadOnlyByteArray.
func NewByteArray(base []byte, offset, length int) (*ByteArray, error) {
	ro, err := NewReadOnlyByteArray(base, offset, length)
	if err != nil {
		return nil, err
	}
	return &ByteArray{ReadOnlyByteArray: *ro}, nil
}

// Set writes value at index.
func (a *ByteArray) Set(index int, value byte) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.base[a.offset+index] = value
	return nil
}

// SetBuffer copies buf into the view starting at index.
//
// A nil buf is rejected before anything else and an empty buf is a no-op.
// If buf does not fit between index and the end of the view nothing is
// copied and ErrIndexOutOfRange is returned.
func (a *ByteArray) SetBuffer(index int, buf []byte) error {
	if buf == nil {
		return fmt.Errorf("%w: buffer", ErrNullOperand)
	}
	if len(buf) == 0 {
		return nil
	}
	if err := a.checkIndex(index); err != nil {
		return err
	}
	if len(buf) > a.length-index {
		return fmt.Errorf("%w: %d bytes at index %d, length %d",
			ErrIndexOutOfRange, len(buf), index, a.length)
	}
	start := a.offset + index
	copy(a.base[start:start+len(buf)], buf)
	return nil
}

// SetFrom performs a single read of at most maxLength bytes from r into
// the view, starting at index. maxLength is clamped to the space left in
// the view.
//
// It returns the number of bytes written, or 0 and io.EOF once r is
// exhausted. A maxLength <= 0 writes nothing and returns 0, nil.
func (a *ByteArray) SetFrom(index, maxLength int, r io.Reader) (int, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: reader", ErrNullOperand)
	}
	if maxLength <= 0 {
		return 0, nil
	}
	if err := a.checkIndex(index); err != nil {
		return 0, err
	}
	maxLength = min(maxLength, a.length-index)

	start := a.offset + index
	n, err := r.Read(a.base[start : start+maxLength])
	if n > 0 {
		// Data and EOF can arrive together; report EOF on the next call.
		return n, nil
	}
	if errors.Is(err, io.EOF) {
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("mem: read into view: %w", err)
	}
	return 0, nil
}
