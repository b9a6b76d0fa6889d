package ring_go

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

//go:generate go run go.uber.org/mock/mockgen -package ring_go -destination store_mock_test.go github.com/sushydev/ring_go Store

func newMockRing(t *testing.T, capacity int) (*Ring[int], *MockStore[int]) {
	ctrl := gomock.NewController(t)
	store := NewMockStore[int](ctrl)

	return New(capacity, WithStore(func() Store[int] { return store })), store
}

func TestRing_PushBackAtCapacityPopsFront(t *testing.T) {
	t.Parallel()
	ring, store := newMockRing(t, 2)

	gomock.InOrder(
		store.EXPECT().PushBack(3),
		store.EXPECT().Len().Return(3),
		store.EXPECT().PopFront().Return(1),
	)

	ring.PushBack(3)
}

func TestRing_PushFrontAtCapacityPopsBack(t *testing.T) {
	t.Parallel()
	ring, store := newMockRing(t, 2)

	gomock.InOrder(
		store.EXPECT().PushFront(0),
		store.EXPECT().Len().Return(3),
		store.EXPECT().PopBack().Return(2),
	)

	ring.PushFront(0)
}

func TestRing_PushWithRoomDoesNotPop(t *testing.T) {
	t.Parallel()
	ring, store := newMockRing(t, 4)

	gomock.InOrder(
		store.EXPECT().PushBack(1),
		store.EXPECT().Len().Return(1),
		store.EXPECT().PushFront(0),
		store.EXPECT().Len().Return(2),
	)

	ring.PushBack(1)
	ring.PushFront(0)
}

func TestRing_InsertSliceTrimsBackOnce(t *testing.T) {
	t.Parallel()
	ring, store := newMockRing(t, 3)

	gomock.InOrder(
		store.EXPECT().Len().Return(2),
		store.EXPECT().Insert(1, 7),
		store.EXPECT().Insert(2, 8),
		store.EXPECT().Len().Return(4),
		store.EXPECT().PopBack().Return(2),
	)

	assert.Equal(t, 1, ring.InsertSlice(1, 7, 8))
}

func TestRing_DataUnavailableForOpaqueStore(t *testing.T) {
	t.Parallel()
	ring, _ := newMockRing(t, 2)

	data, ok := ring.Data()
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestRing_MoveAllocatesFreshStore(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	first := NewMockStore[int](ctrl)
	second := NewMockStore[int](ctrl)
	stores := []Store[int]{first, second}
	ring := New(2, WithStore(func() Store[int] {
		store := stores[0]
		stores = stores[1:]
		return store
	}))

	moved := ring.Move()

	assert.Same(t, first, moved.store)
	assert.Same(t, second, ring.store)
	assert.Equal(t, 2, moved.Cap())
}
