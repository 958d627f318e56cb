// Package Relations has ready made equalities and predicates for ListSet.
package Relations

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Same is == as a Sets.Equal.
func Same[T comparable](a, b T) bool {
	return a == b
}

// Point in the plane.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// SamePoint compares coordinates only.
func SamePoint(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

func Even[T constraints.Integer](v T) bool {
	return v%2 == 0
}

func Odd[T constraints.Integer](v T) bool {
	return v%2 != 0
}

// EvenLen of a string in bytes.
func EvenLen(s string) bool {
	return len(s)%2 == 0
}

func OddLen(s string) bool {
	return len(s)%2 != 0
}

// EvenPoint has both coordinates even.
func EvenPoint(p Point) bool {
	return Even(p.X) && Even(p.Y)
}

// OddPoint has both coordinates odd.
func OddPoint(p Point) bool {
	return Odd(p.X) && Odd(p.Y)
}
