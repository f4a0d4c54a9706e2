package sparsevector

// ConstCellRef is a read-only view of a single cell. Dereferencing a void
// cell yields the zero value of T rather than panicking.
type ConstCellRef[T comparable] struct {
	ptr *T
}

// Value returns the referenced value, or the zero value of T if the cell
// is void.
func (c ConstCellRef[T]) Value() T {
	if c.ptr == nil {
		var zero T
		return zero
	}
	return *c.ptr
}

// Void reports whether the referenced cell is void.
func (c ConstCellRef[T]) Void() bool { return c.ptr == nil }

// CellRef is a writable view of a single cell. Assignment is only valid
// when the cell is present; assigning to a void cell through Set returns
// ErrInvalidWriteToVoid instead of creating a new range (use SetAt for
// that).
type CellRef[T comparable] struct {
	ptr *T
}

// Value returns the referenced value, or the zero value of T if the cell
// is void.
func (c CellRef[T]) Value() T {
	if c.ptr == nil {
		var zero T
		return zero
	}
	return *c.ptr
}

// Void reports whether the referenced cell is void.
func (c CellRef[T]) Void() bool { return c.ptr == nil }

// Set assigns v to the referenced cell. It returns ErrInvalidWriteToVoid,
// without panicking, if the cell is void; creating a new range through
// write-indexing is deliberately not offered here (use SparseVector.SetAt).
func (c CellRef[T]) Set(v T) error {
	if c.ptr == nil {
		return ErrInvalidWriteToVoid
	}
	*c.ptr = v
	return nil
}
