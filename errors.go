package sparsevector

import "errors"

var (
	// ErrOutOfRange is returned by IsVoid and MakeVoidAround when called
	// with an index outside [0, Size()) or on an empty vector.
	ErrOutOfRange = errors.New("sparsevector: index out of range")

	// ErrInvalidWriteToVoid is returned by CellRef.Set when the cell it
	// refers to is void. The design mandates detecting this rather than
	// writing through a nil pointer.
	ErrInvalidWriteToVoid = errors.New("sparsevector: write to void cell")

	// ErrForeignCursor is returned by ElementCursor.Distance when the two
	// cursors were created from different SparseVectors.
	ErrForeignCursor = errors.New("sparsevector: cursor belongs to a different vector")
)
