package mem

import "fmt"

// Copiable is implemented by elements that can produce a copy of
// themselves.
type Copiable[T any] interface {
	Copy() T
}

// CopiableArray is a fixed-size array of Copiable elements. Slots start
// unset; Get on an unset slot returns the zero value of T.
type CopiableArray[T Copiable[T]] struct {
	elements []T
	set      []bool
}

// NewCopiableArray creates an array with size slots.
// It returns ErrInvalidArgument if size is not positive.
func NewCopiableArray[T Copiable[T]](size int) (*CopiableArray[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidArgument, size)
	}
	return &CopiableArray[T]{
		elements: make([]T, size),
		set:      make([]bool, size),
	}, nil
}

// Size returns the number of slots.
func (a *CopiableArray[T]) Size() int {
	return len(a.elements)
}

// Get returns the element at index and whether the slot is set.
func (a *CopiableArray[T]) Get(index int) (T, bool, error) {
	var zero T
	if err := a.checkIndex(index); err != nil {
		return zero, false, err
	}
	return a.elements[index], a.set[index], nil
}

// Set stores elem at index.
func (a *CopiableArray[T]) Set(elem T, index int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.elements[index] = elem
	a.set[index] = true
	return nil
}

// Copy stores a copy of the element at src into dst. If src is unset,
// dst becomes unset too.
func (a *CopiableArray[T]) Copy(src, dst int) error {
	if err := a.checkIndex(src); err != nil {
		return err
	}
	if err := a.checkIndex(dst); err != nil {
		return err
	}
	if !a.set[src] {
		var zero T
		a.elements[dst] = zero
		a.set[dst] = false
		return nil
	}
	a.elements[dst] = a.elements[src].Copy()
	a.set[dst] = true
	return nil
}

func (a *CopiableArray[T]) checkIndex(index int) error {
	if index < 0 || index >= len(a.elements) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(a.elements))
	}
	return nil
}
