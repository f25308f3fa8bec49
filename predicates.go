package condensed

// NonZero is an occupancy predicate for FromSliceFunc. It reports whether v
// differs from the zero value of its type.
func NonZero[V comparable](v V) bool {
	var zero V
	return v != zero
}
