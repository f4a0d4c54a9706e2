package sparsevector

import "testing"

func TestCursorNextOverMixedVoidAndPresent(t *testing.T) {
	sv := New[int](10)
	sv.AddRange(2, []int{1, 2, 3})
	sv.AddRange(7, []int{9})

	want := []int{0, 0, 1, 2, 3, 0, 0, 9, 0, 0}
	c := sv.Cursor()
	for i, v := range want {
		if c.Done() {
			t.Fatalf("cursor done early at index %d", i)
		}
		if c.Index() != i {
			t.Fatalf("Index() = %d, want %d", c.Index(), i)
		}
		if got := c.Value(); got != v {
			t.Errorf("Value() at %d = %d, want %d", i, got, v)
		}
		c.Next()
	}
	if !c.Done() {
		t.Fatalf("cursor not done after walking the full vector")
	}
}

func TestCursorAtAndAdvance(t *testing.T) {
	sv := NewFromSlice(0, []int{10, 20, 30, 40, 50})

	c := sv.CursorAt(1)
	if c.Value() != 20 {
		t.Fatalf("CursorAt(1).Value() = %d, want 20", c.Value())
	}

	c.Advance(2)
	if c.Index() != 3 || c.Value() != 40 {
		t.Fatalf("after Advance(2): Index()=%d Value()=%d, want 3/40", c.Index(), c.Value())
	}

	c.Advance(-1)
	if c.Index() != 2 || c.Value() != 30 {
		t.Fatalf("after Advance(-1): Index()=%d Value()=%d, want 2/30", c.Index(), c.Value())
	}
}

func TestCursorDistance(t *testing.T) {
	sv := New[int](10)
	a := sv.CursorAt(2)
	b := sv.CursorAt(7)

	d, err := b.Distance(a)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if d != 5 {
		t.Fatalf("Distance() = %d, want 5", d)
	}

	other := New[int](10)
	foreign := other.CursorAt(0)
	if _, err := a.Distance(foreign); err != ErrForeignCursor {
		t.Fatalf("Distance across vectors = %v, want ErrForeignCursor", err)
	}
}

func TestCursorEqual(t *testing.T) {
	sv := New[int](5)
	a := sv.CursorAt(3)
	b := sv.CursorAt(3)
	c := sv.CursorAt(4)

	if !a.Equal(b) {
		t.Errorf("Equal() = false for cursors at the same index")
	}
	if a.Equal(c) {
		t.Errorf("Equal() = true for cursors at different indices")
	}

	other := New[int](5)
	foreign := other.CursorAt(3)
	if a.Equal(foreign) {
		t.Errorf("Equal() = true across different vectors")
	}
}

func TestCursorNextCachesAcrossRangeBoundary(t *testing.T) {
	sv := NewFromSlice(0, []int{1, 2})
	sv.AddRange(5, []int{3, 4})

	c := sv.Cursor()
	var got []int
	for !c.Done() {
		got = append(got, c.Value())
		c.Next()
	}
	want := []int{1, 2, 0, 0, 0, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("walked %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}
