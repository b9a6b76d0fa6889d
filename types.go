package ring_go

import (
	"io"
	"iter"

	"github.com/juju/errors"
)

// RingInterface defines the public API of the bounded ring.
//
// A ring behaves like a double-ended queue whose length never exceeds the
// capacity given at construction. Growth past capacity evicts elements from
// the end opposite to where the new elements entered:
//   - PushBack and EmplaceBack evict from the front (oldest first).
//   - PushFront, EmplaceFront, Insert, InsertSlice, InsertSeq and Emplace
//     evict from the back. Inserting at Len() on a full ring therefore drops
//     the inserted value itself.
//   - Constructors keep the first Cap() elements of their source.
//
// Front, Back, PopFront, PopBack and At panic when the ring is empty or the
// index is out of range. PeekFront and PeekBack are the checked variants.
//
// Rings are not safe for concurrent use.
type RingInterface[T any] interface {
	Len() int
	Cap() int
	Empty() bool
	Full() bool

	Front() T
	Back() T
	PeekFront() (T, bool)
	PeekBack() (T, bool)
	At(i int) T
	Data() ([]T, bool)

	PushFront(value T)
	PushBack(value T)
	EmplaceFront(build func(*T))
	EmplaceBack(build func(*T))
	PopFront() T
	PopBack() T

	Insert(pos int, value T) int
	InsertSlice(pos int, values ...T) int
	InsertSeq(pos int, values iter.Seq[T]) int
	Emplace(pos int, build func(*T)) int

	Clear()

	All() iter.Seq2[int, T]
	Values() iter.Seq[T]
	Backward() iter.Seq2[int, T]
	Cursor() *Cursor[T]
	ReverseCursor() *Cursor[T]
	Slice() []T
}

var _ RingInterface[any] = &Ring[any]{}

// Store is the growable double-ended sequence a ring owns and trims.
//
// Implementations must support O(1) access at both ends; Insert may be O(n).
// Front, Back, PopFront, PopBack and At may panic on an empty store or an
// out of range index. Insert is only called with 0 <= at <= Len().
type Store[T any] interface {
	Len() int
	Front() T
	Back() T
	At(i int) T
	PushFront(value T)
	PushBack(value T)
	PopFront() T
	PopBack() T
	Insert(at int, value T)
	Clear()
}

// Contiguous is implemented by stores whose elements live in one slice.
type Contiguous[T any] interface {
	Data() []T
}

var _ Store[any] = &DequeStore[any]{}
var _ Store[any] = &SliceStore[any]{}
var _ Contiguous[any] = &SliceStore[any]{}

// TailBufferInterface defines the public API for the byte tail buffer.
//
// Absolute positions are measured from startPosition; internally the buffer
// operates on normalized offsets (position - startPosition). The normalized
// write position grows by len(p) on every Write, whether or not the bytes are
// still retained.
//
// Notes on semantics:
//   - IsPositionAvailable reports whether a position lies inside the retained
//     window [earliest, lastWritePosition], with an inclusive upper bound at
//     the write boundary.
//   - ReadAt never consumes. Positions before the window (already evicted) or
//     beyond the write boundary return ErrOutOfRange; reading at the boundary,
//     or fewer bytes than requested, returns io.EOF.
//   - Write never blocks and never fails because of size: the oldest bytes are
//     evicted instead.
type TailBufferInterface interface {
	GetCapacity() int64
	GetSize() int64
	GetStartPosition() int64
	ReadAt(p []byte, position int64) (n int, err error)
	Write(p []byte) (n int, err error)
	WriteTo(w io.Writer) (n int64, err error)
	GetBytesToOverwrite() int64
	IsPositionAvailable(position int64) bool
	ResetToPosition(position int64)
	Bytes() []byte
	Close() error
}

var _ TailBufferInterface = &TailBuffer{}
var _ io.WriteCloser = &TailBuffer{}
var _ io.ReaderAt = &TailBuffer{}
var _ io.WriterTo = &TailBuffer{}

const (
	// ErrOutOfRange indicates the requested position is not inside the
	// retained window, either because it was evicted or was never written.
	ErrOutOfRange = errors.ConstError("ringbuffer: position out of range")

	// ErrClosed is returned by writes to a closed tail buffer.
	ErrClosed = errors.ConstError("ringbuffer: buffer is closed")
)
