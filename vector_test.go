package condensed

import (
	"errors"
	"slices"
	"testing"
)

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, did not panic", name)
		}
	}()
	f()
}

func TestZeroVectorIsEmpty(t *testing.T) {
	var cv Vector[float64, int]
	if cv.Count() != 0 {
		t.Errorf("expected empty vector, has %d entries", cv.Count())
	}
	if _, ok := cv.MaxIndex(); ok {
		t.Errorf("empty vector should not report a max index")
	}
	if cv.ExpandedSize() != 0 {
		t.Errorf("expected expanded size 0, is %d", cv.ExpandedSize())
	}
	if cv.Contains(0) {
		t.Errorf("empty vector should not contain index 0")
	}
	dense := cv.ToSlice(3, 0)
	if !slices.Equal(dense, []float64{0, 0, 0}) {
		t.Errorf("expected [0 0 0], have %v", dense)
	}
}

func TestFromSliceFuncNonZero(t *testing.T) {
	defer redirectTracing(t)()
	//
	cv := FromSliceFunc[int, int]([]int{5, 3, 0, 2}, NonZero)
	if cv.Count() != 3 {
		t.Errorf("expected 3 entries, have %d", cv.Count())
	}
	if cv.ExpandedSize() != 4 {
		t.Errorf("expected expanded size 4, is %d", cv.ExpandedSize())
	}
	for i, want := range map[int]int{0: 5, 1: 3, 3: 2} {
		v, err := cv.At(i)
		if err != nil {
			t.Fatalf("At(%d): unexpected error %v", i, err)
		}
		if v != want {
			t.Errorf("At(%d) = %d, expected %d", i, v, want)
		}
	}
	if cv.Contains(2) {
		t.Errorf("position 2 holds a zero and should not be occupied")
	}
	if _, err := cv.At(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for At(2), got %v", err)
	}
	if p := cv.GetPointer(2); p != nil {
		t.Errorf("expected nil pointer for unoccupied index, got %v", *p)
	}
	if err := cv.Check(); err != nil {
		t.Error(err)
	}
}

func TestFromSliceKeepsEveryPosition(t *testing.T) {
	cv := FromSlice[int, int32]([]int{0, 7, 0})
	if cv.Count() != 3 {
		t.Errorf("expected 3 entries, have %d", cv.Count())
	}
	if !cv.Contains(0) || !cv.Contains(2) {
		t.Errorf("zero values should be stored as occupied entries")
	}
	nilPred := FromSliceFunc[int, int32]([]int{0, 7, 0}, nil)
	if nilPred.Count() != 3 {
		t.Errorf("nil predicate should keep all values, have %d entries", nilPred.Count())
	}
}

func TestFromSliceIndexOverflow(t *testing.T) {
	expectPanic(t, "FromSlice[int8]", func() {
		FromSlice[int, int8](make([]int, 200))
	})
	cv := FromSlice[int, int8](make([]int, 127))
	if last, _ := cv.MaxIndex(); last != 126 {
		t.Errorf("expected max index 126, is %d", last)
	}
}

func TestPutAppendsAndExpands(t *testing.T) {
	cv := New[float64, int]()
	cv.Put(3, 1.0)
	cv.Put(5, 2.0)
	dense := cv.ToSlice(0, 0)
	if !slices.Equal(dense, []float64{0, 0, 0, 1.0, 0, 2.0}) {
		t.Errorf("expected [0 0 0 1 0 2], have %v", dense)
	}
}

func TestPutInterior(t *testing.T) {
	cv := New[string, int]()
	for _, i := range []int{50, 10, 30, 0, 20, 40, 60} {
		p := cv.Put(i, string(rune('a'+i/10)))
		if *p != string(rune('a'+i/10)) {
			t.Errorf("Put(%d) returned pointer to %q", i, *p)
		}
		if err := cv.Check(); err != nil {
			t.Fatalf("after Put(%d): %v", i, err)
		}
	}
	var indices []int
	var values []string
	for i, v := range cv.All() {
		indices = append(indices, i)
		values = append(values, v)
	}
	if !slices.Equal(indices, []int{0, 10, 20, 30, 40, 50, 60}) {
		t.Errorf("entries not in index order: %v", indices)
	}
	if !slices.Equal(values, []string{"a", "b", "c", "d", "e", "f", "g"}) {
		t.Errorf("unexpected values %v", values)
	}
}

func TestPutOverwrite(t *testing.T) {
	cv := New[int, int64]()
	cv.Put(7, 1)
	cv.Put(9, 1)
	count := cv.Count()
	cv.Put(7, 42)
	if cv.Count() != count {
		t.Errorf("overwrite changed count from %d to %d", count, cv.Count())
	}
	if v, _ := cv.At(7); v != 42 {
		t.Errorf("expected At(7) == 42, is %d", v)
	}
}

func TestGetOrInsertDefault(t *testing.T) {
	cv := New[float64, int]()
	p := cv.GetOrInsertDefault(3)
	if cv.Count() != 1 {
		t.Fatalf("expected auto-vivification to create 1 entry, have %d", cv.Count())
	}
	if *p != 0 {
		t.Errorf("new entry should hold the zero value, holds %v", *p)
	}
	*p = 1.0
	*cv.GetOrInsertDefault(5) = 2.0
	if cv.Count() != 2 {
		t.Errorf("expected 2 entries, have %d", cv.Count())
	}
	*cv.GetOrInsertDefault(5) += 1.0
	if cv.Count() != 2 {
		t.Errorf("access to existing entry should not create one, have %d", cv.Count())
	}
	if dense := cv.ToSlice(0, 0); !slices.Equal(dense, []float64{0, 0, 0, 1, 0, 3}) {
		t.Errorf("expected [0 0 0 1 0 3], have %v", dense)
	}
}

func TestGetPointerWritesThrough(t *testing.T) {
	v := []float64{1.0, 0.0, 1.5}
	cv := FromSliceFunc[float64, int](v, NonZero)
	v[2] *= 3
	*cv.GetPointer(2) *= 3
	if dense := cv.ToSlice(len(v), 0); !slices.Equal(dense, v) {
		t.Errorf("expected %v, have %v", v, dense)
	}
}

func TestMoveEmptiesSource(t *testing.T) {
	cv := FromSliceFunc[int, int]([]int{1, 0, 2}, NonZero)
	moved := cv.Move()
	if cv.Count() != 0 {
		t.Errorf("source should be empty after move, has %d entries", cv.Count())
	}
	if moved.Count() != 2 || !moved.Contains(2) {
		t.Errorf("moved vector lost entries")
	}
	cv.Put(0, 9)
	if v, _ := moved.At(0); v != 1 {
		t.Errorf("moved vector shares storage with source")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cv := FromSliceFunc[int, int]([]int{1, 0, 2}, NonZero)
	clone := cv.Clone()
	*cv.GetPointer(0) = 100
	cv.Delete(0, 1)
	if v, _ := clone.At(0); v != 1 {
		t.Errorf("clone changed with original: At(0) = %d", v)
	}
	if clone.Count() != 2 {
		t.Errorf("clone should have 2 entries, has %d", clone.Count())
	}
}

func TestReserveIsUnobservable(t *testing.T) {
	cv := FromSliceFunc[int, int]([]int{4, 0, 0, 8}, NonZero)
	before := cv.ToSlice(0, 0)
	cv.Reserve(100)
	cv.Reserve(1)
	if cv.Count() != 2 {
		t.Errorf("Reserve changed the count to %d", cv.Count())
	}
	if !slices.Equal(before, cv.ToSlice(0, 0)) {
		t.Errorf("Reserve changed the contents")
	}
	if cap(cv.entries) < 100 {
		t.Errorf("Reserve(100) did not grow storage, cap=%d", cap(cv.entries))
	}
}

func TestSearchBounds(t *testing.T) {
	cv := FromSliceFunc[int, int]([]int{0, 1, 0, 1, 1, 0}, NonZero) // indices 1, 3, 4
	tests := []struct {
		index        int
		lower, upper int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 1},
		{3, 1, 2},
		{4, 2, 3},
		{5, 3, 3},
	}
	for _, tt := range tests {
		if lb := cv.LowerBound(tt.index); lb != tt.lower {
			t.Errorf("LowerBound(%d) = %d, expected %d", tt.index, lb, tt.lower)
		}
		if ub := cv.UpperBound(tt.index); ub != tt.upper {
			t.Errorf("UpperBound(%d) = %d, expected %d", tt.index, ub, tt.upper)
		}
	}
	if e := cv.EntryAt(1); e.Index != 3 || e.Value != 1 {
		t.Errorf("EntryAt(1) = %v, expected {3 1}", e)
	}
}

func TestCheckDetectsDisorder(t *testing.T) {
	cv := &Vector[int, int]{entries: []Entry[int, int]{{0, 1}, {2, 1}, {2, 5}}}
	if err := cv.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected duplicate index to be flagged, got %v", err)
	}
	cv = &Vector[int, int]{entries: []Entry[int, int]{{3, 1}, {1, 1}}}
	if err := cv.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected descending indices to be flagged, got %v", err)
	}
	var nilVector *Vector[int, int]
	if err := nilVector.Check(); err == nil {
		t.Errorf("expected nil vector to be flagged")
	}
}
