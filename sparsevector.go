// Package sparsevector implements a random-access sequence of fixed
// nominal length N over a comparable element type T, in which positions
// holding the zero value are not materialized. Only disjoint, non-empty
// intervals of explicitly present values (ranges) are stored; every other
// position is implicitly void and reads as the zero value of T.
package sparsevector

import "fmt"

// SparseVector is the public container: a nominal size plus an ordered
// RangeTable. All mutation algorithms live on this type; RangeTable and
// DataRange are the supporting storage.
//
// Not safe for concurrent use. Any mutation invalidates outstanding
// CellRef, ConstCellRef and ElementCursor values obtained before the
// mutation, the same way mutating a plain slice invalidates prior
// sub-slices taken of it.
type SparseVector[T comparable] struct {
	n     int
	table RangeTable[T]
}

func zeroOf[T comparable]() T {
	var z T
	return z
}

// New returns an entirely void vector of nominal size n.
func New[T comparable](n int) *SparseVector[T] {
	if n < 0 {
		panic("sparsevector: negative size")
	}
	return &SparseVector[T]{n: n}
}

// NewFromSlice returns a vector whose nominal size is offset+len(src), with
// src copied in starting at offset; positions [0, offset) are void.
func NewFromSlice[T comparable](offset int, src []T) *SparseVector[T] {
	s := New[T](offset)
	s.AddRange(offset, src)
	return s
}

// NewFromOwnedSlice is like NewFromSlice but takes ownership of buf instead
// of copying it.
func NewFromOwnedSlice[T comparable](offset int, buf []T) *SparseVector[T] {
	s := New[T](offset)
	s.AddRangeMove(offset, buf)
	return s
}

// Size returns the nominal length N.
func (s *SparseVector[T]) Size() int { return s.n }

// Empty reports whether the vector's nominal size is zero.
func (s *SparseVector[T]) Empty() bool { return s.n == 0 }

// NumRanges returns the number of stored ranges.
func (s *SparseVector[T]) NumRanges() int { return s.table.Len() }

// RangeAt returns the i-th range, in offset order.
func (s *SparseVector[T]) RangeAt(i int) *DataRange[T] { return s.table.At(i) }

// Count returns the number of present (non-void) cells.
func (s *SparseVector[T]) Count() int {
	n := 0
	for i := 0; i < s.table.Len(); i++ {
		n += s.table.At(i).Len()
	}
	return n
}

// Get returns the value at index k, or the zero value of T if k is void.
// Behavior is unspecified if k >= Size().
func (s *SparseVector[T]) Get(k int) T {
	i := s.table.Containing(k)
	if i < 0 {
		return zeroOf[T]()
	}
	return s.table.At(i).At(k)
}

// At returns a read-only view of cell k.
func (s *SparseVector[T]) At(k int) ConstCellRef[T] {
	i := s.table.Containing(k)
	if i < 0 {
		return ConstCellRef[T]{}
	}
	return ConstCellRef[T]{ptr: s.table.At(i).ptr(k)}
}

// AtMut returns a writable view of cell k. If k is void, the returned
// CellRef's Set method reports ErrInvalidWriteToVoid rather than creating
// a new range; use SetAt for that.
func (s *SparseVector[T]) AtMut(k int) CellRef[T] {
	i := s.table.Containing(k)
	if i < 0 {
		return CellRef[T]{}
	}
	return CellRef[T]{ptr: s.table.At(i).ptr(k)}
}

// IsVoid reports whether index k holds no value. It returns ErrOutOfRange
// if the vector is empty or k is outside [0, Size()).
func (s *SparseVector[T]) IsVoid(k int) (bool, error) {
	if s.n == 0 || k < 0 || k >= s.n {
		return false, ErrOutOfRange
	}
	return s.table.Containing(k) < 0, nil
}

// BackIsVoid reports whether the vector has no ranges, or its last range
// ends before Size().
func (s *SparseVector[T]) BackIsVoid() bool {
	if s.table.Len() == 0 {
		return true
	}
	return s.table.At(s.table.Len()-1).End < s.n
}

// SetAt assigns v to index k, which must satisfy k < Size(). If k is
// already present, the existing cell is overwritten in place; otherwise a
// new singleton range is spliced in and merged with its neighbours.
func (s *SparseVector[T]) SetAt(k int, v T) CellRef[T] {
	if i := s.table.Containing(k); i >= 0 {
		r := s.table.At(i)
		r.Set(k, v)
		return CellRef[T]{ptr: r.ptr(k)}
	}

	pos := s.table.ContainingOrAfter(k)
	s.table.Insert(pos, newMovedRange[T](k, []T{v}))
	if pos > 0 && s.table.At(pos-1).Borders(k) {
		pos--
	}
	s.mergeForward(pos)
	return CellRef[T]{ptr: s.table.At(pos).ptr(k)}
}

// UnsetAt casts index k back into the void. It is a no-op if k is already
// void or k >= Size().
func (s *SparseVector[T]) UnsetAt(k int) {
	if k < 0 || k >= s.n {
		return
	}
	i := s.table.Containing(k)
	if i < 0 {
		return
	}
	r := s.table.At(i)
	switch {
	case r.Len() == 1:
		s.table.Remove(i)
	case k == r.Offset:
		r.moveHead(k+1, zeroOf[T]())
	case k == r.End-1:
		r.moveTail(k, zeroOf[T]())
	default:
		tailLen := r.End - (k + 1)
		tailValues := make([]T, tailLen)
		copy(tailValues, r.Values()[k+1-r.Offset:])
		r.moveTail(k, zeroOf[T]())
		s.table.Insert(i+1, newMovedRange[T](k+1, tailValues))
	}
}

// mergeForward fuses the range at table position i with any bordering
// successors, the only place adjacent ranges are coalesced. It finishes by
// raising N to cover the merged range if needed.
func (s *SparseVector[T]) mergeForward(i int) {
	for i+1 < s.table.Len() {
		cur := s.table.At(i)
		next := s.table.At(i + 1)
		if !cur.Borders(next.Offset) {
			break
		}
		if next.End > cur.End {
			tailStart := cur.End - next.Offset
			cur.extend(cur.End, next.Values()[tailStart:])
		}
		s.table.Remove(i + 1)
	}
	s.fixSize()
}

func (s *SparseVector[T]) fixSize() {
	if s.table.Len() == 0 {
		return
	}
	if last := s.table.At(s.table.Len() - 1).End; last > s.n {
		s.n = last
	}
}

// addRange implements AddRange/AddRangeMove. It overlays src cell by cell
// across any ranges and gaps it touches, the same staged splice-then-merge
// shape CombineRange uses, and finishes with a single merge pass from an
// anchor position computed before any mutation: the range bordering or
// containing offset-1, if one exists, so the pass unambiguously starts to
// the left of everything just touched rather than at some range created
// mid-loop that happens to also border offset. move selects the fast path
// that transfers ownership of src instead of copying it; it only applies
// when the whole of src is spliced as a single fresh range in one step.
func (s *SparseVector[T]) addRange(offset int, src []T, move bool) *DataRange[T] {
	if len(src) == 0 {
		return nil
	}
	initialOffset := offset
	if end := offset + len(src); end > s.n {
		s.n = end
	}
	anchor := s.table.Containing(initialOffset - 1)

	var touched *DataRange[T]
	remaining := src
	for len(remaining) > 0 {
		pos := s.table.ContainingOrAfter(offset)
		if pos < s.table.Len() && s.table.At(pos).Includes(offset) {
			dest := s.table.At(pos)
			if touched == nil {
				touched = dest
			}
			for len(remaining) > 0 && offset < dest.End {
				dest.Set(offset, remaining[0])
				offset++
				remaining = remaining[1:]
			}
			continue
		}

		limit := len(remaining)
		if pos < s.table.Len() {
			if gap := s.table.At(pos).Offset - offset; gap < limit {
				limit = gap
			}
		}
		var nr *DataRange[T]
		if move && limit == len(src) {
			nr = newMovedRange[T](offset, src)
		} else {
			buf := make([]T, limit)
			copy(buf, remaining[:limit])
			nr = newMovedRange[T](offset, buf)
		}
		s.table.Insert(pos, nr)
		if touched == nil {
			touched = nr
		}
		offset += limit
		remaining = remaining[limit:]
	}

	if anchor < 0 {
		anchor = s.table.ContainingOrAfter(initialOffset)
	}
	s.mergeForward(anchor)
	return touched
}

// AddRange inserts or overlays a copy of src starting at offset. The new
// data wins on any overlap with existing ranges; bordering ranges are
// merged. If offset+len(src) exceeds Size(), N grows to fit.
func (s *SparseVector[T]) AddRange(offset int, src []T) *DataRange[T] {
	return s.addRange(offset, src, false)
}

// AddRangeMove is like AddRange, but attempts to place buf directly without
// copying when the insertion site does not require extending a
// pre-existing range.
func (s *SparseVector[T]) AddRangeMove(offset int, buf []T) *DataRange[T] {
	return s.addRange(offset, buf, true)
}

// Append is AddRange(Size(), src).
func (s *SparseVector[T]) Append(src []T) *DataRange[T] {
	return s.AddRange(s.n, src)
}

// AppendMove is AddRangeMove(Size(), buf).
func (s *SparseVector[T]) AppendMove(buf []T) *DataRange[T] {
	return s.AddRangeMove(s.n, buf)
}

// CombineRange element-wise combines src into the vector starting at
// offset using op. Present cells become op(existing, src[i]); void cells
// become present with value op(voidValue, src[i]). With op = func(_, b T)
// T { return b }, this is equivalent to AddRange.
func (s *SparseVector[T]) CombineRange(offset int, src []T, op func(a, b T) T, voidValue T) *DataRange[T] {
	if len(src) == 0 {
		return nil
	}
	initialOffset := offset
	if end := offset + len(src); end > s.n {
		s.n = end
	}

	anchor := s.table.Containing(initialOffset - 1)

	var firstTouched *DataRange[T]
	remaining := src
	for len(remaining) > 0 {
		pos := s.table.ContainingOrAfter(offset)
		if pos < s.table.Len() && s.table.At(pos).Includes(offset) {
			dest := s.table.At(pos)
			if firstTouched == nil {
				firstTouched = dest
			}
			for len(remaining) > 0 && offset < dest.End {
				dest.Set(offset, op(dest.At(offset), remaining[0]))
				offset++
				remaining = remaining[1:]
			}
			continue
		}

		limit := len(remaining)
		if pos < s.table.Len() {
			if gap := s.table.At(pos).Offset - offset; gap < limit {
				limit = gap
			}
		}
		buf := make([]T, limit)
		for j := 0; j < limit; j++ {
			buf[j] = op(voidValue, remaining[j])
		}
		nr := newMovedRange[T](offset, buf)
		s.table.Insert(pos, nr)
		if firstTouched == nil {
			firstTouched = nr
		}
		offset += limit
		remaining = remaining[limit:]
	}

	if anchor < 0 {
		anchor = s.table.ContainingOrAfter(initialOffset)
	}
	s.mergeForward(anchor)
	return firstTouched
}

// Resize sets the nominal size to n. Growth leaves the new tail void;
// shrinking drops or truncates ranges beyond the new size.
func (s *SparseVector[T]) Resize(n int) {
	if n < 0 {
		panic("sparsevector: negative size")
	}
	if n >= s.n {
		s.n = n
		return
	}
	for s.table.Len() > 0 {
		last := s.table.At(s.table.Len() - 1)
		if last.Offset >= n {
			s.table.Remove(s.table.Len() - 1)
			continue
		}
		if last.End > n {
			last.moveTail(n, zeroOf[T]())
		}
		break
	}
	s.n = n
}

// ResizeFill is like Resize, but on growth the new tail is filled with
// fill instead of left void (unless fill is the zero value, in which case
// it behaves exactly like Resize).
func (s *SparseVector[T]) ResizeFill(n int, fill T) {
	if n <= s.n || fill == zeroOf[T]() {
		s.Resize(n)
		return
	}
	if s.BackIsVoid() {
		nr := newZeroedRange[T](NewInterval(s.n, n))
		vals := nr.Values()
		for i := range vals {
			vals[i] = fill
		}
		s.table.Insert(s.table.Len(), nr)
	} else {
		s.table.At(s.table.Len() - 1).moveTail(n, fill)
	}
	s.n = n
}

// MakeVoid erases cells in [first, last), splitting, trimming or removing
// ranges as needed to keep the table canonical.
func (s *SparseVector[T]) MakeVoid(first, last int) {
	if first >= last {
		return
	}
	firstPos := s.table.ContainingOrAfter(first)
	if firstPos >= s.table.Len() {
		return
	}
	lastPos := s.table.ContainingOrAfter(last)

	firstRange := s.table.At(firstPos)
	if first > firstRange.Offset {
		if firstPos == lastPos {
			tailLen := firstRange.End - last
			var tailValues []T
			if tailLen > 0 {
				tailValues = make([]T, tailLen)
				copy(tailValues, firstRange.Values()[last-firstRange.Offset:])
			}
			firstRange.moveTail(first, zeroOf[T]())
			if tailLen > 0 {
				s.table.Insert(firstPos+1, newMovedRange[T](last, tailValues))
			}
			return
		}
		firstRange.moveTail(first, zeroOf[T]())
		firstPos++
	}

	if lastPos < s.table.Len() {
		if lastRange := s.table.At(lastPos); last > lastRange.Offset {
			lastRange.moveHead(last, zeroOf[T]())
		}
	}

	for firstPos < lastPos {
		s.table.Remove(firstPos)
		lastPos--
	}
}

// MakeVoidAround removes and returns the entire range containing k,
// transferring its ownership to the caller. It returns (nil, nil) if k is
// already void.
func (s *SparseVector[T]) MakeVoidAround(k int) (*DataRange[T], error) {
	if s.n == 0 || k < 0 || k >= s.n {
		return nil, ErrOutOfRange
	}
	i := s.table.Containing(k)
	if i < 0 {
		return nil, nil
	}
	return s.table.Remove(i), nil
}

// Clear drops all ranges and sets the nominal size to zero.
func (s *SparseVector[T]) Clear() {
	s.table = RangeTable[T]{}
	s.n = 0
}

// IsValidFast reports whether the canonical-form invariants hold, without
// building an error message.
func (s *SparseVector[T]) IsValidFast() bool {
	return s.validate() == nil
}

// IsValid checks the canonical-form invariants and returns a descriptive
// error naming the first violation found, or nil if the vector is valid.
func (s *SparseVector[T]) IsValid() error {
	return s.validate()
}

func (s *SparseVector[T]) validate() error {
	for i := 0; i < s.table.Len(); i++ {
		r := s.table.At(i)
		if r.Empty() {
			return fmt.Errorf("sparsevector: range %d is empty", i)
		}
		if i > 0 {
			prev := s.table.At(i - 1)
			if prev.End >= r.Offset {
				return fmt.Errorf("sparsevector: ranges %d and %d are not separated", i-1, i)
			}
		}
	}
	if s.table.Len() > 0 {
		if last := s.table.At(s.table.Len() - 1).End; last > s.n {
			return fmt.Errorf("sparsevector: last range end %d exceeds size %d", last, s.n)
		}
	}
	return nil
}
