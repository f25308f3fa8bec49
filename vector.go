package condensed

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Index is the type constraint for logical positions of a vector.
// Index types have to be wide enough for the largest position ever used.
type Index interface {
	constraints.Signed
}

// Entry is an occupied position of a vector.
type Entry[V any, I Index] struct {
	Index I
	Value V
}

// Vector is a condensed vector: a sequence of values addressed by index,
// which stores only the occupied positions. Entries are kept in a single
// slice, sorted by index in strictly ascending order.
//
// A vector created by
//
//	Vector[V, I]{}
//
// is a valid object and behaves like an empty sequence.
//
// Vectors must not be copied by assignment, as copies would share backing
// storage. Use Clone or Move instead.
type Vector[V any, I Index] struct {
	entries []Entry[V, I]
}

// New creates an empty vector.
func New[V any, I Index]() *Vector[V, I] {
	return &Vector[V, I]{}
}

// FromSlice creates a vector with one entry per element of values, using the
// slice position as the index.
func FromSlice[V any, I Index](values []V) *Vector[V, I] {
	_ = fromInt[I](len(values))
	cv := &Vector[V, I]{entries: make([]Entry[V, I], 0, len(values))}
	for i, v := range values {
		cv.entries = append(cv.entries, Entry[V, I]{Index: I(i), Value: v})
	}
	return cv
}

// FromSliceFunc creates a vector holding the elements of values for which
// isOccupied returns true. All other positions are left empty. A nil predicate
// treats every element as occupied.
func FromSliceFunc[V any, I Index](values []V, isOccupied func(V) bool) *Vector[V, I] {
	if isOccupied == nil {
		return FromSlice[V, I](values)
	}
	_ = fromInt[I](len(values))
	cv := &Vector[V, I]{}
	for i, v := range values {
		if isOccupied(v) {
			cv.entries = append(cv.entries, Entry[V, I]{Index: I(i), Value: v})
		}
	}
	T().Debugf("condensed %d values to %d entries", len(values), len(cv.entries))
	return cv
}

// Move transfers the backing storage of cv to a new vector. cv is empty
// afterwards.
func (cv *Vector[V, I]) Move() *Vector[V, I] {
	moved := &Vector[V, I]{entries: cv.entries}
	cv.entries = nil
	return moved
}

// Clone returns a copy of cv. Values are copied by assignment.
func (cv *Vector[V, I]) Clone() *Vector[V, I] {
	if cv == nil {
		return nil
	}
	return &Vector[V, I]{entries: slices.Clone(cv.entries)}
}

// Count returns the number of occupied entries.
func (cv *Vector[V, I]) Count() int {
	if cv == nil {
		return 0
	}
	return len(cv.entries)
}

// Reserve makes room for at least capacity entries without re-allocation.
// It does not change the contents of cv.
func (cv *Vector[V, I]) Reserve(capacity int) {
	if capacity > len(cv.entries) {
		cv.entries = slices.Grow(cv.entries, capacity-len(cv.entries))
	}
}

// MaxIndex returns the greatest occupied index. If cv has no entries, ok is false.
func (cv *Vector[V, I]) MaxIndex() (I, bool) {
	if cv.Count() == 0 {
		var zero I
		return zero, false
	}
	return cv.entries[len(cv.entries)-1].Index, true
}

// ExpandedSize returns the minimal length of a dense sequence holding every
// occupied index of cv, i.e. MaxIndex()+1, or 0 for an empty vector.
func (cv *Vector[V, I]) ExpandedSize() int {
	last, ok := cv.MaxIndex()
	if !ok {
		return 0
	}
	return toInt(last) + 1
}

// --- Index arithmetic ------------------------------------------------------

// fromInt converts a size to an index type. Sizes which do not fit into I
// are a programming error.
func fromInt[I Index](n int) I {
	i := I(n)
	assert(n >= 0 && int(i) == n, "condensed: size does not fit into index type")
	return i
}

// toInt converts a non-negative index to a size.
func toInt[I Index](i I) int {
	assert(i >= 0, "condensed: negative index where size is required")
	n := int(i)
	assert(I(n) == i, "condensed: index does not fit into int")
	return n
}
