package condensed

import "fmt"

// GetPointer returns a pointer to the value stored at index i, or nil if i is
// not occupied. The pointer is valid up to the next mutation of cv.
func (cv *Vector[V, I]) GetPointer(i I) *V {
	if cv == nil {
		return nil
	}
	if pos, found := cv.find(i); found {
		return &cv.entries[pos].Value
	}
	return nil
}

// At returns the value stored at index i. If i is not occupied, an error
// wrapping ErrIndexOutOfRange is returned.
func (cv *Vector[V, I]) At(i I) (V, error) {
	if p := cv.GetPointer(i); p != nil {
		return *p, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
}

// Contains reports whether index i is occupied.
func (cv *Vector[V, I]) Contains(i I) bool {
	return cv.GetPointer(i) != nil
}

// GetOrInsertDefault returns a pointer to the value stored at index i. If i is
// not occupied, an entry holding the zero value of V is created first.
// This is the mutating counterpart of GetPointer.
func (cv *Vector[V, I]) GetOrInsertDefault(i I) *V {
	if p := cv.GetPointer(i); p != nil {
		return p
	}
	var zero V
	return cv.Put(i, zero)
}

// Put stores v at index i and returns a pointer to the stored value. An
// existing value at i is overwritten. The pointer is valid up to the next
// mutation of cv.
func (cv *Vector[V, I]) Put(i I, v V) *V {
	if n := len(cv.entries); n == 0 || cv.entries[n-1].Index < i {
		cv.entries = append(cv.entries, Entry[V, I]{Index: i, Value: v})
		return &cv.entries[n].Value
	}
	pos, found := cv.find(i)
	if found {
		cv.entries[pos].Value = v
		return &cv.entries[pos].Value
	}
	// grow by one slot and shift the tail to the right
	var zero Entry[V, I]
	cv.entries = append(cv.entries, zero)
	copy(cv.entries[pos+1:], cv.entries[pos:])
	cv.entries[pos] = Entry[V, I]{Index: i, Value: v}
	return &cv.entries[pos].Value
}
