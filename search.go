package condensed

import "sort"

// LowerBound returns the storage position of the first entry with an index
// not less than i. If there is none, Count() is returned.
func (cv *Vector[V, I]) LowerBound(i I) int {
	return sort.Search(len(cv.entries), func(k int) bool {
		return cv.entries[k].Index >= i
	})
}

// UpperBound returns the storage position of the first entry with an index
// greater than i. If there is none, Count() is returned.
func (cv *Vector[V, I]) UpperBound(i I) int {
	return sort.Search(len(cv.entries), func(k int) bool {
		return cv.entries[k].Index > i
	})
}

// EntryAt returns the entry at storage position pos, 0 ≤ pos < Count().
// Positions are invalidated by every mutation of cv.
func (cv *Vector[V, I]) EntryAt(pos int) Entry[V, I] {
	return cv.entries[pos]
}

// find locates index i. If i is not occupied, found is false and pos is the
// position where an entry for i would have to be inserted.
func (cv *Vector[V, I]) find(i I) (pos int, found bool) {
	pos = cv.LowerBound(i)
	return pos, pos < len(cv.entries) && cv.entries[pos].Index == i
}
