package sparsevector

import (
	"bytes"
	"fmt"
	"io"
	"unsafe"

	"github.com/bits-and-blooms/bitset"

	iou "github.com/akmistry/go-util/io"
)

// WriteDump writes the vector in the text dump format used by tests and
// debugging tools:
//
//	Sparse vector of size <N> with <m> ranges:
//	  [<offset> - <end>] (<len>): { v0 v1 ... v_{len-1} }
//	  ...
//
// The header line and the range lines are written in a single vectored
// call, the same two-part header+payload framing
// internal/sparseblock's builder and internal/wal's writer use for their
// own on-disk headers.
func WriteDump[T comparable](w io.Writer, s *SparseVector[T]) error {
	header := fmt.Sprintf("Sparse vector of size %d with %d ranges:\n", s.Size(), s.NumRanges())

	var body bytes.Buffer
	for i := 0; i < s.NumRanges(); i++ {
		r := s.RangeAt(i)
		fmt.Fprintf(&body, "  [%d - %d] (%d): {", r.Offset, r.End, r.Len())
		for _, v := range r.Values() {
			fmt.Fprintf(&body, " %v", v)
		}
		body.WriteString(" }\n")
	}

	_, err := iou.WriteMany(w, []byte(header), body.Bytes())
	return err
}

// PresenceBitSet builds an independent bitmap with one bit set per present
// index in [0, Size()). It is a debugging/introspection helper, not part
// of the canonical-form contract; the property tests check it against an
// independent presence slice after every mutation.
func (s *SparseVector[T]) PresenceBitSet() *bitset.BitSet {
	size := s.n
	if size < 0 {
		size = 0
	}
	bs := bitset.New(uint(size))
	for i := 0; i < s.table.Len(); i++ {
		r := s.table.At(i)
		for k := r.Offset; k < r.End; k++ {
			bs.Set(uint(k))
		}
	}
	return bs
}

// ExpectedBufferSize estimates the memory footprint of a DataRange[T]
// holding n values: a fixed slice-header cost plus n elements aligned to
// T's natural alignment, floored at 32 bytes.
func ExpectedBufferSize[T comparable](n int) int {
	var header []T
	headerSize := int(unsafe.Sizeof(header))

	var elem T
	body := int(unsafe.Alignof(elem))*n + 8
	if body < 32 {
		body = 32
	}
	return headerSize + body
}

// MinGap estimates the smallest void gap, in elements, below which two
// adjacent ranges are cheaper to store merged than separate, based on the
// overhead of a DataRange[T] struct relative to the size of T.
func MinGap[T comparable]() int {
	var r DataRange[T]
	overhead := int(unsafe.Sizeof(r)) + 8

	var elem T
	elemSize := int(unsafe.Sizeof(elem))
	if elemSize == 0 {
		elemSize = 1
	}
	return overhead/elemSize + 1
}

// ShouldMerge reports whether two ranges of length aLen and bLen,
// separated by a void gap of gap elements, would occupy less memory
// merged into a single range than kept apart. Exact constants are tuned
// via ExpectedBufferSize; callers should only rely on monotonicity.
func ShouldMerge[T comparable](aLen, bLen, gap int) bool {
	return ExpectedBufferSize[T](aLen+bLen+gap) <= ExpectedBufferSize[T](aLen)+ExpectedBufferSize[T](bLen)
}

// Optimize is a no-op hook reserved for a future defragmentation pass
// driven by ShouldMerge; it always reports that nothing was changed.
func (s *SparseVector[T]) Optimize() bool {
	return false
}
