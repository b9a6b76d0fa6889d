// Package seq holds small helpers over positions and sequences that do not
// need random access.
package seq

// Stepper is a position that can move one element at a time in either
// direction.
type Stepper interface {
	// Next moves forward and reports whether the position is on an element.
	Next() bool
	// Prev moves backward and reports whether the position is on an element.
	Prev() bool
	// Valid reports whether the position is on an element.
	Valid() bool
}

// Advance moves s by n steps, forward when n is positive and backward when it
// is negative, and reports whether s ends on an element.
func Advance(s Stepper, n int) bool {
	for ; n > 0; n-- {
		s.Next()
	}
	for ; n < 0; n++ {
		s.Prev()
	}

	return s.Valid()
}
