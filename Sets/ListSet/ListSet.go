// Package ListSet implements a set for any element type. Whether two elements are
// duplicates is decided by a Sets.Equal supplied at construction rather than by ==.
// Elements are kept in a singly linked chain in insertion order, which is also the
// iteration order, so Put, Has and Remove are linear scans.
//
// A ListSet is not safe for concurrent use.
package ListSet

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/g-m-twostay/go-sets/Sets"
	"github.com/pkg/errors"
)

// ListSet holds the head of the chain and its length.
// The zero value has no Equal and is not usable beyond holding nothing; create one with New.
type ListSet[T any] struct {
	head *node[T]
	sz   uint
	eq   Sets.Equal[T]
	cfg  config
}

var _ Sets.ExtendedSet[int] = (*ListSet[int])(nil)

// New returns an empty set that treats a and b as duplicates when eq(a, b) is true.
// Panics if eq is nil.
func New[T any](eq Sets.Equal[T], opts ...Option) *ListSet[T] {
	if eq == nil {
		panic("ListSet: nil Equal")
	}
	return &ListSet[T]{eq: eq, cfg: newConfig(opts)}
}

// NewComparable is New with == as the equality.
func NewComparable[T comparable](opts ...Option) *ListSet[T] {
	return New(func(a, b T) bool { return a == b }, opts...)
}

// FromSeq builds a set from the values of seq in order. Later duplicates are dropped.
func FromSeq[T any](eq Sets.Equal[T], seq iter.Seq[T], opts ...Option) *ListSet[T] {
	u := New(eq, opts...)
	for v := range seq {
		u.Put(v)
	}
	return u
}

// FromSlice is FromSeq over vs.
func FromSlice[T any](eq Sets.Equal[T], vs []T, opts ...Option) *ListSet[T] {
	return FromSeq(eq, slices.Values(vs), opts...)
}

// Collect builds a set from seq, converting every value with conv first.
// If conv fails the elements gathered so far are released and the error is returned
// together with the position of the value that failed; the set is never returned half built.
func Collect[S, T any](eq Sets.Equal[T], seq iter.Seq[S], conv func(S) (T, error), opts ...Option) (*ListSet[T], error) {
	u := New(eq, opts...)
	var i uint
	for s := range seq {
		v, err := conv(s)
		if err != nil {
			u.Clear()
			return nil, errors.Wrapf(err, "convert element %d", i)
		}
		u.Put(v)
		i++
	}
	return u, nil
}

// derive returns an empty set sharing u's equality and configuration.
func (u *ListSet[T]) derive() *ListSet[T] {
	return &ListSet[T]{eq: u.eq, cfg: u.cfg}
}

// Clone returns an independent copy of u with the same elements in the same order.
// Time: O(n).
func (u *ListSet[T]) Clone() *ListSet[T] {
	c := u.derive()
	var last *node[T]
	for cur := u.head; cur != nil; cur = cur.nx {
		n := &node[T]{v: cur.v}
		if last == nil {
			c.head = n
		} else {
			last.nx = n
		}
		last = n
	}
	c.sz = u.sz
	return c
}

// Assign replaces the contents of u with a copy of the contents of o.
// u keeps its own equality, so elements of o that are duplicates under it are dropped.
// The copy is built completely before u is touched. Assigning u to itself does nothing.
func (u *ListSet[T]) Assign(o *ListSet[T]) {
	if u == o {
		return
	}
	tmp := u.derive()
	for cur := o.head; cur != nil; cur = cur.nx {
		tmp.Put(cur.v)
	}
	u.head, tmp.head = tmp.head, u.head
	u.sz, tmp.sz = tmp.sz, u.sz
	tmp.Clear()
}

// Clear removes every element. Calling it on an empty set is fine.
func (u *ListSet[T]) Clear() {
	for cur := u.head; cur != nil; {
		nx := cur.nx
		cur.nx = nil
		cur = nx
	}
	u.head, u.sz = nil, 0
}

// Size of the set.
func (u *ListSet[T]) Size() uint {
	return u.sz
}

func (u *ListSet[T]) Empty() bool {
	return u.sz == 0
}

// Put v at the end of the set unless an equal element is already present.
// Returns true if v was added.
func (u *ListSet[T]) Put(v T) bool {
	var last *node[T]
	for cur := u.head; cur != nil; cur = cur.nx {
		if u.eq(cur.v, v) {
			u.cfg.debug("value already present", v)
			return false
		}
		last = cur
	}
	n := &node[T]{v: v}
	if last == nil {
		u.head = n
	} else {
		last.nx = n
	}
	u.sz++
	return true
}

// Remove the element equal to v. Returns false, and changes nothing, if there is none,
// including when the set is empty.
func (u *ListSet[T]) Remove(v T) bool {
	var prev *node[T]
	for cur := u.head; cur != nil; prev, cur = cur, cur.nx {
		if u.eq(v, cur.v) {
			u.unlink(prev, cur)
			return true
		}
	}
	u.cfg.debug("value not present", v)
	return false
}

// Has an element equal to v.
func (u *ListSet[T]) Has(v T) bool {
	for cur := u.head; cur != nil; cur = cur.nx {
		if u.eq(v, cur.v) {
			return true
		}
	}
	return false
}

// At returns the element at position i in insertion order.
// Returns *IndexOutOfRangeError if i >= Size().
// Time: O(i)
func (u *ListSet[T]) At(i uint) (v T, err error) {
	if i >= u.sz {
		return v, &IndexOutOfRangeError{Index: i, Size: u.sz}
	}
	cur := u.head
	for ; i > 0; i-- {
		cur = cur.nx
	}
	return cur.v, nil
}

// Take the first element without removing it. Returns the zero value if the set is empty.
func (u *ListSet[T]) Take() (v T) {
	if u.head != nil {
		v = u.head.v
	}
	return
}

// Eq reports whether u and o hold the same elements regardless of order: the sizes match
// and o.Has every element of u.
func (u *ListSet[T]) Eq(o Sets.Set[T]) bool {
	if u.sz != o.Size() {
		return false
	}
	for cur := u.head; cur != nil; cur = cur.nx {
		if !o.Has(cur.v) {
			return false
		}
	}
	return true
}

// Range calls f on the elements in order until f returns false.
// f mustn't modify u.
func (u *ListSet[T]) Range(f func(T) bool) {
	for cur := u.head; cur != nil; cur = cur.nx {
		if !f(cur.v) {
			return
		}
	}
}

// All elements in order. Same restrictions as Range.
func (u *ListSet[T]) All() iter.Seq[T] {
	return u.Range
}

// Items copies the elements, in order, into a new slice.
func (u *ListSet[T]) Items() []T {
	items := make([]T, 0, u.sz)
	for cur := u.head; cur != nil; cur = cur.nx {
		items = append(items, cur.v)
	}
	return items
}

// String formats the elements in order with fmt.Sprint, separated by single spaces.
func (u *ListSet[T]) String() string {
	var b strings.Builder
	for cur := u.head; cur != nil; cur = cur.nx {
		if cur != u.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, cur.v)
	}
	return b.String()
}

// PutAll elements of o into u. Returns the number of elements added.
func (u *ListSet[T]) PutAll(o Sets.Set[T]) (n uint) {
	o.Range(func(v T) bool {
		if u.Put(v) {
			n++
		}
		return true
	})
	return
}

// RemoveAll elements of u that o has. Returns the number of elements removed.
func (u *ListSet[T]) RemoveAll(o Sets.Set[T]) uint {
	return u.retain(func(v T) bool { return !o.Has(v) })
}

// Union puts every element of o into u.
func (u *ListSet[T]) Union(o Sets.Set[T]) {
	u.PutAll(o)
}

// Intersect drops the elements of u that o doesn't have.
func (u *ListSet[T]) Intersect(o Sets.Set[T]) {
	u.retain(o.Has)
}

// Filter is the method form of the package level Filter.
func (u *ListSet[T]) Filter(p Sets.Predicate[T]) Sets.ExtendedSet[T] {
	return Filter(u, p)
}
