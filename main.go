package ring_go

import (
	"fmt"
	"iter"
)

// Option configures a ring at construction.
type Option[T any] func(*Ring[T])

// WithStore makes the ring allocate its backing stores with newStore.
func WithStore[T any](newStore func() Store[T]) Option[T] {
	return func(ring *Ring[T]) {
		ring.newStore = newStore
	}
}

// WithSliceStore backs the ring with a SliceStore so Data is available.
func WithSliceStore[T any]() Option[T] {
	return WithStore(func() Store[T] { return NewSliceStore[T]() })
}

// Ring is a double-ended queue holding at most Cap() elements.
type Ring[T any] struct {
	store    Store[T]
	capacity int

	newStore func() Store[T]
}

func newDequeStore[T any]() Store[T] {
	return NewDequeStore[T]()
}

func newRing[T any](capacity int, opts []Option[T]) *Ring[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("ring: capacity must be positive, got %d", capacity))
	}

	ring := &Ring[T]{
		capacity: capacity,
		newStore: newDequeStore[T],
	}
	for _, opt := range opts {
		opt(ring)
	}

	return ring
}

// New returns an empty ring that holds at most capacity elements.
// It panics if capacity is not positive.
func New[T any](capacity int, opts ...Option[T]) *Ring[T] {
	ring := newRing(capacity, opts)
	ring.store = ring.newStore()

	return ring
}

// Of returns a ring holding the first capacity values, backed by the default
// store. values is variadic so Of takes no options; use FromSlice to pick a
// store.
func Of[T any](capacity int, values ...T) *Ring[T] {
	return FromSlice(capacity, values)
}

// FromSlice copies values into a new ring and keeps the first capacity of
// them. The slice is not retained.
func FromSlice[T any](capacity int, values []T, opts ...Option[T]) *Ring[T] {
	ring := New(capacity, opts...)
	for _, value := range values {
		ring.store.PushBack(value)
	}
	ring.pruneBack()

	return ring
}

// FromSeq drains values into a new ring and keeps the first capacity of them.
// The whole sequence is consumed before anything is discarded.
func FromSeq[T any](capacity int, values iter.Seq[T], opts ...Option[T]) *Ring[T] {
	ring := New(capacity, opts...)
	for value := range values {
		ring.store.PushBack(value)
	}
	ring.pruneBack()

	return ring
}

// FromStore takes ownership of store and trims it to its first capacity
// elements. The caller must not use store afterwards.
func FromStore[T any](capacity int, store Store[T], opts ...Option[T]) *Ring[T] {
	if store == nil {
		return New(capacity, opts...)
	}

	ring := newRing(capacity, opts)
	ring.store = store
	ring.pruneBack()

	return ring
}

func (ring *Ring[T]) Len() int {
	return ring.store.Len()
}

// Cap returns the maximum number of elements, fixed at construction.
func (ring *Ring[T]) Cap() int {
	return ring.capacity
}

func (ring *Ring[T]) Empty() bool {
	return ring.store.Len() == 0
}

func (ring *Ring[T]) Full() bool {
	return ring.store.Len() == ring.capacity
}

func (ring *Ring[T]) Front() T {
	if ring.Empty() {
		panic("ring: Front() called on empty ring")
	}

	return ring.store.Front()
}

func (ring *Ring[T]) Back() T {
	if ring.Empty() {
		panic("ring: Back() called on empty ring")
	}

	return ring.store.Back()
}

func (ring *Ring[T]) PeekFront() (value T, ok bool) {
	if ring.Empty() {
		return
	}

	return ring.store.Front(), true
}

func (ring *Ring[T]) PeekBack() (value T, ok bool) {
	if ring.Empty() {
		return
	}

	return ring.store.Back(), true
}

func (ring *Ring[T]) At(i int) T {
	if n := ring.store.Len(); i < 0 || i >= n {
		panic(fmt.Sprintf("ring: index %d out of range [0, %d)", i, n))
	}

	return ring.store.At(i)
}

// Data exposes the elements as one slice when the backing store is
// Contiguous. The slice is only valid until the next mutation.
func (ring *Ring[T]) Data() ([]T, bool) {
	contiguous, ok := ring.store.(Contiguous[T])
	if !ok {
		return nil, false
	}

	return contiguous.Data(), true
}

func (ring *Ring[T]) PushFront(value T) {
	ring.store.PushFront(value)
	ring.pruneBack()
}

func (ring *Ring[T]) PushBack(value T) {
	ring.store.PushBack(value)
	ring.pruneFront()
}

// EmplaceFront builds a value in place from its zero value and pushes it to
// the front.
func (ring *Ring[T]) EmplaceFront(build func(*T)) {
	var value T
	build(&value)

	ring.PushFront(value)
}

// EmplaceBack builds a value in place from its zero value and pushes it to
// the back.
func (ring *Ring[T]) EmplaceBack(build func(*T)) {
	var value T
	build(&value)

	ring.PushBack(value)
}

func (ring *Ring[T]) PopFront() T {
	if ring.Empty() {
		panic("ring: PopFront() called on empty ring")
	}

	return ring.store.PopFront()
}

func (ring *Ring[T]) PopBack() T {
	if ring.Empty() {
		panic("ring: PopBack() called on empty ring")
	}

	return ring.store.PopBack()
}

// Insert places value before position pos, where 0 <= pos <= Len(), then
// trims the back. On a full ring, inserting at Len() discards value itself.
// It returns pos.
func (ring *Ring[T]) Insert(pos int, value T) int {
	ring.checkPosition(pos)

	ring.store.Insert(pos, value)
	ring.pruneBack()

	return pos
}

// InsertSlice places values, in order, before position pos and trims the
// back. It returns pos.
func (ring *Ring[T]) InsertSlice(pos int, values ...T) int {
	ring.checkPosition(pos)

	for i, value := range values {
		ring.store.Insert(pos+i, value)
	}
	ring.pruneBack()

	return pos
}

// InsertSeq is InsertSlice for a sequence. values must not read from ring.
func (ring *Ring[T]) InsertSeq(pos int, values iter.Seq[T]) int {
	ring.checkPosition(pos)

	at := pos
	for value := range values {
		ring.store.Insert(at, value)
		at++
	}
	ring.pruneBack()

	return pos
}

// Emplace builds a value in place and inserts it before pos.
func (ring *Ring[T]) Emplace(pos int, build func(*T)) int {
	ring.checkPosition(pos)

	var value T
	build(&value)

	return ring.Insert(pos, value)
}

func (ring *Ring[T]) Clear() {
	ring.store.Clear()
}

// Swap exchanges the contents of two rings without copying elements.
// It panics if the capacities differ.
func (ring *Ring[T]) Swap(other *Ring[T]) {
	if ring.capacity != other.capacity {
		panic(fmt.Sprintf("ring: cannot swap rings of capacity %d and %d", ring.capacity, other.capacity))
	}

	ring.store, other.store = other.store, ring.store
	ring.newStore, other.newStore = other.newStore, ring.newStore
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Ring[T]) {
	a.Swap(b)
}

// Clone returns a ring with the same capacity and a copy of the elements in
// a store of its own.
func (ring *Ring[T]) Clone() *Ring[T] {
	clone := &Ring[T]{
		store:    ring.newStore(),
		capacity: ring.capacity,
		newStore: ring.newStore,
	}
	for value := range ring.Values() {
		clone.store.PushBack(value)
	}

	return clone
}

// Assign replaces the elements of ring with a copy of those in other.
// It panics if the capacities differ.
func (ring *Ring[T]) Assign(other *Ring[T]) {
	if ring == other {
		return
	}
	if ring.capacity != other.capacity {
		panic(fmt.Sprintf("ring: cannot assign ring of capacity %d to capacity %d", other.capacity, ring.capacity))
	}

	ring.store.Clear()
	for value := range other.Values() {
		ring.store.PushBack(value)
	}
}

// Move hands the backing store to a new ring and leaves ring empty.
func (ring *Ring[T]) Move() *Ring[T] {
	moved := &Ring[T]{
		store:    ring.store,
		capacity: ring.capacity,
		newStore: ring.newStore,
	}
	ring.store = ring.newStore()

	return moved
}

// All yields index and element from front to back.
func (ring *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < ring.store.Len(); i++ {
			if !yield(i, ring.store.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements from front to back.
func (ring *Ring[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < ring.store.Len(); i++ {
			if !yield(ring.store.At(i)) {
				return
			}
		}
	}
}

// Backward yields index and element from back to front.
func (ring *Ring[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := ring.store.Len() - 1; i >= 0; i-- {
			if !yield(i, ring.store.At(i)) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements from front to back.
func (ring *Ring[T]) Slice() []T {
	values := make([]T, ring.store.Len())
	for i := range values {
		values[i] = ring.store.At(i)
	}

	return values
}

func (ring *Ring[T]) String() string {
	return fmt.Sprintf("%v", ring.Slice())
}

func (ring *Ring[T]) checkPosition(pos int) {
	if n := ring.store.Len(); pos < 0 || pos > n {
		panic(fmt.Sprintf("ring: insert position %d out of range [0, %d]", pos, n))
	}
}

// pruneBack drops the newest elements until the ring fits its capacity.
func (ring *Ring[T]) pruneBack() {
	for excess := ring.store.Len() - ring.capacity; excess > 0; excess-- {
		ring.store.PopBack()
	}
}

// pruneFront drops the oldest elements until the ring fits its capacity.
func (ring *Ring[T]) pruneFront() {
	for excess := ring.store.Len() - ring.capacity; excess > 0; excess-- {
		ring.store.PopFront()
	}
}
