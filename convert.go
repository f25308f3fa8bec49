package condensed

import "slices"

// ToSlice expands cv into a dense slice. Position p of the result holds the
// value of the entry with index origin+p, all other positions hold the zero
// value of V. The length of the result is length, or larger if needed to
// hold the greatest occupied index.
//
// length must not be negative and origin must not be greater than the
// smallest occupied index.
//
// Values are copied by assignment.
func (cv *Vector[V, I]) ToSlice(length, origin I) []V {
	size := cv.denseSize(length, origin)
	dense := make([]V, size)
	for _, e := range cv.entries {
		dense[toInt(e.Index-origin)] = e.Value
	}
	return dense
}

// MoveToSlice expands cv into dst, with the same layout as ToSlice, and
// returns the updated slice. dst is cleared first; its storage is re-used if
// large enough.
//
// Values are moved out of cv: afterwards every entry of cv still has its
// index, but its value has been reset to the zero value of V. This is meant
// for converting a vector once, without using it afterwards.
func (cv *Vector[V, I]) MoveToSlice(dst []V, length, origin I) []V {
	size := cv.denseSize(length, origin)
	dst = slices.Grow(dst[:0], size)[:size]
	clear(dst)
	var zero V
	for k := range cv.entries {
		dst[toInt(cv.entries[k].Index-origin)] = cv.entries[k].Value
		cv.entries[k].Value = zero
	}
	return dst
}

// denseSize checks the preconditions of dense conversion and returns the
// length of the dense result.
func (cv *Vector[V, I]) denseSize(length, origin I) int {
	assert(length >= 0, "condensed: negative length for dense conversion")
	size := toInt(length)
	if cv.Count() == 0 {
		return size
	}
	assert(cv.entries[0].Index >= origin, "condensed: origin greater than smallest occupied index")
	last, _ := cv.MaxIndex()
	return max(size, toInt(last-origin)+1)
}
