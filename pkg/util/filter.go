package util

// Filter returns the elements of s for which keep returns true, preserving
// order. The input slice is left untouched.
func Filter[T any](s []T, keep func(T) bool) []T {
	var filtered []T
	for _, e := range s {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
