package ring_go

// Cursor is a bidirectional position in a ring.
//
// A forward cursor walks front to back and rests at Len() once it passes the
// back; a reverse cursor walks back to front and rests at -1. Index is always
// the front-to-back index, so a forward cursor at the end can be passed to
// Insert to append.
//
// A cursor is invalidated by any mutation of its ring.
type Cursor[T any] struct {
	ring    *Ring[T]
	index   int
	reverse bool
}

// Cursor returns a forward cursor on the front element.
func (ring *Ring[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{ring: ring}
}

// ReverseCursor returns a reverse cursor on the back element.
func (ring *Ring[T]) ReverseCursor() *Cursor[T] {
	return &Cursor[T]{ring: ring, index: ring.Len() - 1, reverse: true}
}

// Valid reports whether the cursor is on an element.
func (cursor *Cursor[T]) Valid() bool {
	return cursor.index >= 0 && cursor.index < cursor.ring.Len()
}

// Next moves one element in the cursor's direction.
func (cursor *Cursor[T]) Next() bool {
	if cursor.reverse {
		return cursor.step(-1)
	}
	return cursor.step(1)
}

// Prev moves one element against the cursor's direction.
func (cursor *Cursor[T]) Prev() bool {
	if cursor.reverse {
		return cursor.step(1)
	}
	return cursor.step(-1)
}

func (cursor *Cursor[T]) step(delta int) bool {
	cursor.index = min(max(cursor.index+delta, -1), cursor.ring.Len())
	return cursor.Valid()
}

// Value returns the element under the cursor. It panics if !Valid().
func (cursor *Cursor[T]) Value() T {
	return cursor.ring.At(cursor.index)
}

func (cursor *Cursor[T]) Index() int {
	return cursor.index
}

// Clone returns an independent cursor at the same position.
func (cursor *Cursor[T]) Clone() *Cursor[T] {
	clone := *cursor
	return &clone
}
