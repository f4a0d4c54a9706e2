package sparsevector

import (
	"sort"

	"github.com/akmistry/sparsevector/internal/util"
)

// RangeTable is an ordered sequence of DataRange, kept sorted by Offset.
// Positions are returned as plain ints rather than iterator objects, the
// natural Go analog of a stable index into a vector.
//
// Canonical form (maintained by SparseVector, not enforced here): every
// range is non-empty, ranges are strictly ordered and separated by at
// least one void index, and the last range's End does not exceed the
// vector's nominal size.
type RangeTable[T comparable] struct {
	ranges []*DataRange[T]
}

// Len returns the number of ranges.
func (t *RangeTable[T]) Len() int { return len(t.ranges) }

// At returns the range at table position i.
func (t *RangeTable[T]) At(i int) *DataRange[T] { return t.ranges[i] }

// firstOffsetGreaterThan returns the table position of the first range
// whose Offset > k, or Len() if none.
func (t *RangeTable[T]) firstOffsetGreaterThan(k int) int {
	return sort.Search(len(t.ranges), func(i int) bool {
		return t.ranges[i].Offset > k
	})
}

// NextAfter returns the position of the first range whose Offset > k.
func (t *RangeTable[T]) NextAfter(k int) int {
	return t.firstOffsetGreaterThan(k)
}

// ContainingOrAfter returns the position of the range containing k if one
// exists; otherwise NextAfter(k).
func (t *RangeTable[T]) ContainingOrAfter(k int) int {
	i := t.firstOffsetGreaterThan(k)
	if i > 0 && t.ranges[i-1].Includes(k) {
		return i - 1
	}
	return i
}

// ExtendingAt returns the position of the range that borders k (so a call
// to extend(k, ...) on it is valid) if one exists; otherwise NextAfter(k).
func (t *RangeTable[T]) ExtendingAt(k int) int {
	i := t.firstOffsetGreaterThan(k)
	if i > 0 && t.ranges[i-1].Borders(k) {
		return i - 1
	}
	return i
}

// Containing returns the position of the range that includes k, or -1 if
// k is void.
func (t *RangeTable[T]) Containing(k int) int {
	i := t.firstOffsetGreaterThan(k)
	if i > 0 && t.ranges[i-1].Includes(k) {
		return i - 1
	}
	return -1
}

// Insert splices r into the table at position i.
func (t *RangeTable[T]) Insert(i int, r *DataRange[T]) {
	if r.Empty() {
		// Silently dropped; the table remains canonical.
		return
	}
	t.ranges = util.SliceInsert(t.ranges, i, r)
}

// Remove erases and returns the range at position i.
func (t *RangeTable[T]) Remove(i int) *DataRange[T] {
	ranges, r := util.SliceRemove(t.ranges, i)
	t.ranges = ranges
	return r
}
