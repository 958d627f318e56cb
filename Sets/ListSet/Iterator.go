package ListSet

// Iterator is a read-only forward cursor over a ListSet. The zero value is the end cursor.
// Two cursors are equal when they sit on the same element or are both at the end.
//
// A cursor doesn't own anything. Put, Remove, Clear and Assign on the set invalidate every
// cursor taken from it earlier; what an invalidated cursor yields is unspecified and
// isn't detected.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns a cursor on the first element, or the end cursor if u is empty.
func (u *ListSet[T]) Begin() Iterator[T] {
	return Iterator[T]{u.head}
}

// End returns the end cursor.
func (u *ListSet[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Value under the cursor. Panics at the end.
func (it Iterator[T]) Value() T {
	return it.n.v
}

// Valid reports whether the cursor is on an element.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Advance to the next element. Panics at the end.
func (it *Iterator[T]) Advance() {
	it.n = it.n.nx
}

// Next advances it and returns where it was before. Panics at the end.
func (it *Iterator[T]) Next() Iterator[T] {
	old := *it
	it.n = it.n.nx
	return old
}

func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.n == o.n
}
