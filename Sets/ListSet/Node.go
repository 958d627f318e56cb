package ListSet

// node in the chain of a ListSet. Each node is reachable from exactly one set.
type node[T any] struct {
	v  T
	nx *node[T]
}

// unlink cur, whose predecessor is prev (nil when cur is the head).
// cur.nx is left alone so that a cursor sitting on cur can still step off it.
func (u *ListSet[T]) unlink(prev, cur *node[T]) {
	if prev == nil {
		u.head = cur.nx
	} else {
		prev.nx = cur.nx
	}
	u.sz--
}

// retain the elements for which keep returns true, in order. Returns how many were dropped.
func (u *ListSet[T]) retain(keep func(T) bool) (n uint) {
	var prev *node[T]
	for cur := u.head; cur != nil; cur = cur.nx {
		if keep(cur.v) {
			prev = cur
		} else {
			u.unlink(prev, cur)
			n++
		}
	}
	return
}
