package util

// Clone returns a shallow structural copy of src: the declared field set is
// copied by value, so pointer, map, and slice fields still share their
// referents with the original. A nil src yields nil.
func Clone[T any](src *T) *T {
	if src == nil {
		return nil
	}
	dst := new(T)
	*dst = *src
	return dst
}
