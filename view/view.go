// Package view provides a read-only window over contiguous data.
package view

import (
	"fmt"
	"iter"
	"slices"

	"github.com/juju/errors"
)

// ErrIndexOutOfBounds is returned by the checked accessors when an index is
// outside the view.
const ErrIndexOutOfBounds = errors.ConstError("view: index out of bounds")

// View is a non-owning, read-only view of a slice. The zero value is an empty
// view. A View never writes through to the data it observes.
type View[T any] struct {
	data []T
}

// Of returns a view of data.
func Of[T any](data []T) View[T] {
	return View[T]{data: slices.Clip(data)}
}

// OfString returns a view of the bytes of s. Go strings are immutable, so the
// bytes are copied once.
func OfString(s string) View[byte] {
	return View[byte]{data: []byte(s)}
}

// OfRunes returns a view of the code points of s.
func OfRunes(s string) View[rune] {
	return View[rune]{data: []rune(s)}
}

func (v View[T]) Len() int {
	return len(v.data)
}

func (v View[T]) Empty() bool {
	return len(v.data) == 0
}

// At returns the element at i, or an error satisfying
// errors.Is(err, ErrIndexOutOfBounds).
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, errors.Annotatef(ErrIndexOutOfBounds, "index %d, length %d", i, len(v.data))
	}

	return v.data[i], nil
}

// Index returns the element at i. It panics if i is out of range.
func (v View[T]) Index(i int) T {
	return v.data[i]
}

// Front returns the first element. It panics on an empty view.
func (v View[T]) Front() T {
	if len(v.data) == 0 {
		panic("view: Front() called on empty view")
	}
	return v.data[0]
}

// Back returns the last element. It panics on an empty view.
func (v View[T]) Back() T {
	if len(v.data) == 0 {
		panic("view: Back() called on empty view")
	}
	return v.data[len(v.data)-1]
}

// Data returns the observed slice. Callers must not modify it.
func (v View[T]) Data() []T {
	return v.data
}

// Slice returns the sub-view [from, to).
func (v View[T]) Slice(from, to int) (View[T], error) {
	if from < 0 || to < from || to > len(v.data) {
		return View[T]{}, errors.Annotatef(ErrIndexOutOfBounds, "range [%d, %d), length %d", from, to, len(v.data))
	}

	return View[T]{data: v.data[from:to:to]}, nil
}

func (v View[T]) All() iter.Seq2[int, T] {
	return slices.All(v.data)
}

func (v View[T]) Values() iter.Seq[T] {
	return slices.Values(v.data)
}

func (v View[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(v.data)
}

// Swap exchanges the observed data of v and other.
func (v *View[T]) Swap(other *View[T]) {
	v.data, other.data = other.data, v.data
}

func (v View[T]) String() string {
	return fmt.Sprintf("%v", v.data)
}
