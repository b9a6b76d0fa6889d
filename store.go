package ring_go

import (
	"slices"

	"github.com/gammazero/deque"
)

// DequeStore is the default backing store: a growable ring-buffer deque with
// O(1) pushes and pops at both ends.
type DequeStore[T any] struct {
	*deque.Deque[T]
}

// NewDequeStore returns an empty deque-backed store.
func NewDequeStore[T any]() *DequeStore[T] {
	return &DequeStore[T]{Deque: new(deque.Deque[T])}
}

// SliceStore keeps its elements in a single slice, so it can hand out the
// contents through Data. Pushing or popping at the front is O(n).
type SliceStore[T any] struct {
	data []T
}

// NewSliceStore returns an empty slice-backed store.
func NewSliceStore[T any]() *SliceStore[T] {
	return &SliceStore[T]{}
}

func (store *SliceStore[T]) Len() int {
	return len(store.data)
}

func (store *SliceStore[T]) Front() T {
	if len(store.data) == 0 {
		panic("ring: Front() called on empty store")
	}
	return store.data[0]
}

func (store *SliceStore[T]) Back() T {
	if len(store.data) == 0 {
		panic("ring: Back() called on empty store")
	}
	return store.data[len(store.data)-1]
}

func (store *SliceStore[T]) At(i int) T {
	return store.data[i]
}

func (store *SliceStore[T]) PushFront(value T) {
	store.data = slices.Insert(store.data, 0, value)
}

func (store *SliceStore[T]) PushBack(value T) {
	store.data = append(store.data, value)
}

func (store *SliceStore[T]) PopFront() T {
	if len(store.data) == 0 {
		panic("ring: PopFront() called on empty store")
	}
	value := store.data[0]
	// Delete zeroes the vacated tail slot so popped values can be collected.
	store.data = slices.Delete(store.data, 0, 1)
	return value
}

func (store *SliceStore[T]) PopBack() T {
	if len(store.data) == 0 {
		panic("ring: PopBack() called on empty store")
	}
	last := len(store.data) - 1
	value := store.data[last]
	var zero T
	store.data[last] = zero
	store.data = store.data[:last]
	return value
}

func (store *SliceStore[T]) Insert(at int, value T) {
	store.data = slices.Insert(store.data, at, value)
}

func (store *SliceStore[T]) Clear() {
	clear(store.data)
	store.data = store.data[:0]
}

// Data returns the stored elements front to back. The slice aliases the
// store and is only valid until the next mutation.
func (store *SliceStore[T]) Data() []T {
	return slices.Clip(store.data)
}
