package ListSet

import "fmt"

// IndexOutOfRangeError is returned by At when Index >= Size.
type IndexOutOfRangeError struct {
	Index, Size uint
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for set of size %d", e.Index, e.Size)
}
