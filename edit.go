package condensed

import "slices"

// Insert inserts count empty positions right before logical position before.
// No entries are created; instead every entry with an index ≥ before is
// shifted by count. The cost is proportional to the number of occupied
// entries at or after before, not to count.
//
// count must not be negative, and shifted indices must fit into I.
func (cv *Vector[V, I]) Insert(before, count I) {
	assert(count >= 0, "condensed.Insert: negative count")
	if count == 0 {
		return
	}
	first := cv.LowerBound(before)
	if first == len(cv.entries) {
		return
	}
	last := cv.entries[len(cv.entries)-1].Index
	assert(last+count > last, "condensed.Insert: index overflow")
	for k := first; k < len(cv.entries); k++ {
		cv.entries[k].Index += count
	}
	T().Debugf("condensed.Insert(%d, %d): shifted %d entries", before, count, len(cv.entries)-first)
}

// Delete removes the logical positions [first, first+count). Entries with an
// index in that range are discarded, entries after it are shifted left by
// count, closing the gap.
//
// count must not be negative.
func (cv *Vector[V, I]) Delete(first, count I) {
	assert(count >= 0, "condensed.Delete: negative count")
	if count == 0 || len(cv.entries) == 0 {
		return
	}
	end := first + count
	assert(end > first, "condensed.Delete: index overflow")
	from := cv.LowerBound(first)
	to := cv.LowerBound(end) // == UpperBound(end-1)
	for k := to; k < len(cv.entries); k++ {
		cv.entries[k].Index -= count
	}
	cv.entries = slices.Delete(cv.entries, from, to)
	T().Debugf("condensed.Delete(%d, %d): discarded %d, shifted %d entries",
		first, count, to-from, len(cv.entries)-from)
}
