package condensed

import "fmt"

// Check validates the structural invariant of a vector: entries are sorted by
// index in strictly ascending order.
//
// This checker is meant to be used in tests.
func (cv *Vector[V, I]) Check() error {
	if cv == nil {
		return fmt.Errorf("%w: nil vector", ErrInvariantViolated)
	}
	for k := 1; k < len(cv.entries); k++ {
		prev, cur := cv.entries[k-1].Index, cv.entries[k].Index
		if prev == cur {
			return fmt.Errorf("%w: duplicate index %d at position %d", ErrInvariantViolated, cur, k)
		}
		if prev > cur {
			return fmt.Errorf("%w: index %d at position %d follows %d",
				ErrInvariantViolated, cur, k, prev)
		}
	}
	return nil
}
