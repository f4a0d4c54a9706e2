package sparsevector

import "testing"

func buildTable(t *testing.T, ivs ...[2]int) *RangeTable[int] {
	t.Helper()
	var rt RangeTable[int]
	for i, iv := range ivs {
		rt.Insert(i, newZeroedRange[int](NewInterval(iv[0], iv[1])))
	}
	return &rt
}

func TestRangeTableLookups(t *testing.T) {
	// Ranges: [3,6) [10,12) [20,25)
	rt := buildTable(t, [2]int{3, 6}, [2]int{10, 12}, [2]int{20, 25})

	cases := []struct {
		k                          int
		nextAfter, containingOrAfter, extendingAt, containing int
	}{
		{0, 0, 0, 0, -1},
		{3, 1, 0, 0, 0},
		{5, 1, 0, 0, 0},
		{6, 1, 1, 0, -1},  // bordering [3,6) at exactly End
		{7, 1, 1, 1, -1},
		{9, 1, 1, 1, -1},
		{10, 2, 1, 1, 1},
		{12, 2, 2, 1, -1}, // bordering [10,12)
		{13, 2, 2, 2, -1},
		{24, 3, 2, 2, 2},
		{25, 3, 3, 2, -1}, // bordering [20,25)
		{30, 3, 3, 3, -1},
	}
	for _, c := range cases {
		if got := rt.NextAfter(c.k); got != c.nextAfter {
			t.Errorf("NextAfter(%d) = %d, want %d", c.k, got, c.nextAfter)
		}
		if got := rt.ContainingOrAfter(c.k); got != c.containingOrAfter {
			t.Errorf("ContainingOrAfter(%d) = %d, want %d", c.k, got, c.containingOrAfter)
		}
		if got := rt.ExtendingAt(c.k); got != c.extendingAt {
			t.Errorf("ExtendingAt(%d) = %d, want %d", c.k, got, c.extendingAt)
		}
		if got := rt.Containing(c.k); got != c.containing {
			t.Errorf("Containing(%d) = %d, want %d", c.k, got, c.containing)
		}
	}
}

func TestRangeTableInsertRemove(t *testing.T) {
	rt := buildTable(t, [2]int{0, 5}, [2]int{20, 25})
	rt.Insert(1, newZeroedRange[int](NewInterval(10, 12)))
	if rt.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", rt.Len())
	}
	if rt.At(1).Offset != 10 {
		t.Fatalf("At(1).Offset = %d, want 10", rt.At(1).Offset)
	}

	removed := rt.Remove(1)
	if removed.Offset != 10 || rt.Len() != 2 {
		t.Fatalf("after Remove: Len()=%d removed.Offset=%d", rt.Len(), removed.Offset)
	}
	if rt.At(1).Offset != 20 {
		t.Fatalf("At(1).Offset = %d, want 20 after removal", rt.At(1).Offset)
	}
}

func TestRangeTableInsertEmptyRangeNoOp(t *testing.T) {
	var rt RangeTable[int]
	rt.Insert(0, newZeroedRange[int](NewInterval(5, 5)))
	if rt.Len() != 0 {
		t.Fatalf("inserting an empty range should be a no-op, got Len()=%d", rt.Len())
	}
}
