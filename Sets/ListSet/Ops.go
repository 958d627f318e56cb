package ListSet

import "github.com/g-m-twostay/go-sets/Sets"

// These build new sets and never modify their arguments. The result shares the
// equality and configuration of the first argument.

// Filter returns the elements of s for which p is true, in the order of s.
func Filter[T any](s *ListSet[T], p Sets.Predicate[T]) *ListSet[T] {
	r := s.derive()
	for it, end := s.Begin(), s.End(); !it.Equal(end); it.Advance() {
		if v := it.Value(); p(v) {
			r.Put(v)
		}
	}
	return r
}

// Union returns a copy of a followed by the elements of b that a doesn't have, in the order of b.
func Union[T any](a, b *ListSet[T]) *ListSet[T] {
	r := a.Clone()
	for v := range b.All() {
		r.Put(v)
	}
	return r
}

// Intersect returns the elements of a, in the order of a, that b has.
func Intersect[T any](a, b *ListSet[T]) *ListSet[T] {
	return Filter(a, b.Has)
}

// Difference returns the elements of a, in the order of a, that b doesn't have.
func Difference[T any](a, b *ListSet[T]) *ListSet[T] {
	return Filter(a, func(v T) bool { return !b.Has(v) })
}
