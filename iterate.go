package condensed

import "iter"

// All returns an iterator over all occupied entries in ascending index order.
//
// cv must not be mutated during iteration, except for assigning values
// through pointers.
func (cv *Vector[V, I]) All() iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		if cv == nil {
			return
		}
		for _, e := range cv.entries {
			if !yield(e.Index, e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all occupied entries in descending index order.
func (cv *Vector[V, I]) Backward() iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		if cv == nil {
			return
		}
		for k := len(cv.entries) - 1; k >= 0; k-- {
			if !yield(cv.entries[k].Index, cv.entries[k].Value) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of all occupied entries in
// ascending index order.
func (cv *Vector[V, I]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range cv.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Range returns an iterator over the occupied entries with from ≤ index < to.
func (cv *Vector[V, I]) Range(from, to I) iter.Seq2[I, V] {
	return func(yield func(I, V) bool) {
		if cv == nil || to <= from {
			return
		}
		for k := cv.LowerBound(from); k < len(cv.entries) && cv.entries[k].Index < to; k++ {
			if !yield(cv.entries[k].Index, cv.entries[k].Value) {
				return
			}
		}
	}
}

// EachEntry visits all occupied entries in ascending index order.
//
// Iteration stops at the first callback error and returns that error to the caller.
func (cv *Vector[V, I]) EachEntry(f func(Entry[V, I]) error) error {
	if cv == nil {
		return nil
	}
	for _, e := range cv.entries {
		if err := f(e); err != nil {
			return err
		}
	}
	return nil
}
