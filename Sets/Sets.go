package Sets

// Equal reports whether a and b are the same element as far as a set is concerned.
// It doesn't have to agree with ==, but it must be an equivalence relation.
type Equal[E any] func(a, b E) bool

// Predicate selects elements, see ExtendedSet.Filter.
type Predicate[E any] func(E) bool

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

// ExtendedSet adds whole-set operations. Union and Intersect modify the receiver;
// Filter leaves it untouched and returns a new set.
type ExtendedSet[E any] interface {
	Set[E]
	PutAll(Set[E]) uint
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	Filter(Predicate[E]) ExtendedSet[E]
}
