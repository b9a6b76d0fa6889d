package seq

import "iter"

// Equal reports whether a and b yield the same number of elements and every
// pair of elements is equal.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[A, B any](a iter.Seq[A], b iter.Seq[B], eq func(A, B) bool) bool {
	nextB, stop := iter.Pull(b)
	defer stop()

	for x := range a {
		y, ok := nextB()
		if !ok || !eq(x, y) {
			return false
		}
	}

	_, more := nextB()
	return !more
}
