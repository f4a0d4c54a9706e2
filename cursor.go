package sparsevector

// ElementCursor is a forward iterator over the dense N-long logical
// sequence, synthesizing the zero value of T on void cells. It caches the
// table position of the range that covers (or immediately follows) its
// current index, so stepping forward is amortized O(1); random jumps via
// Advance fall back to a binary search.
//
// Mutating the underlying SparseVector invalidates every outstanding
// cursor, the same way mutating a slice invalidates prior indices into it.
type ElementCursor[T comparable] struct {
	vec      *SparseVector[T]
	index    int
	rangePos int
}

// Cursor returns a cursor positioned at index 0.
func (s *SparseVector[T]) Cursor() *ElementCursor[T] {
	return &ElementCursor[T]{vec: s, index: 0, rangePos: s.table.ContainingOrAfter(0)}
}

// CursorAt returns a cursor positioned at index k.
func (s *SparseVector[T]) CursorAt(k int) *ElementCursor[T] {
	return &ElementCursor[T]{vec: s, index: k, rangePos: s.table.ContainingOrAfter(k)}
}

// Index returns the cursor's current position.
func (c *ElementCursor[T]) Index() int { return c.index }

// Done reports whether the cursor has reached the past-the-end position.
func (c *ElementCursor[T]) Done() bool { return c.index >= c.vec.n }

// Value returns the value at the cursor's current position, or the zero
// value of T if the position is void or past-the-end.
func (c *ElementCursor[T]) Value() T {
	if c.rangePos < c.vec.table.Len() {
		if r := c.vec.table.At(c.rangePos); r.Includes(c.index) {
			return r.At(c.index)
		}
	}
	return zeroOf[T]()
}

// Next advances the cursor by one position.
func (c *ElementCursor[T]) Next() {
	c.index++
	if c.rangePos < c.vec.table.Len() {
		if r := c.vec.table.At(c.rangePos); c.index >= r.End {
			c.rangePos++
		}
	}
}

// Advance moves the cursor forward by delta positions (delta may be
// negative, as long as the result stays forward-traversable; this package
// offers no reverse-iteration guarantees beyond that).
func (c *ElementCursor[T]) Advance(delta int) {
	c.index += delta
	if c.rangePos < c.vec.table.Len() {
		if r := c.vec.table.At(c.rangePos); r.Includes(c.index) {
			return
		}
	}
	c.rangePos = c.vec.table.ContainingOrAfter(c.index)
}

// Distance returns c.Index() - other.Index(). It returns ErrForeignCursor
// if the two cursors were created from different SparseVectors.
func (c *ElementCursor[T]) Distance(other *ElementCursor[T]) (int, error) {
	if c.vec != other.vec {
		return 0, ErrForeignCursor
	}
	return c.index - other.index, nil
}

// Equal reports whether c and other reference the same vector and index.
func (c *ElementCursor[T]) Equal(other *ElementCursor[T]) bool {
	return c.vec == other.vec && c.index == other.index
}
