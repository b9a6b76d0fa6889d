package ring_go

import (
	"fmt"
	"io"
	"math"

	"github.com/juju/errors"
)

// TailBuffer keeps the most recent bytes written to it and addresses them by
// absolute stream position.
type TailBuffer struct {
	ring          *Ring[byte]
	startPosition int64

	lastWritePosition int64 // Stores normalized position (bytes written since start)

	closed bool
}

// NewTailBuffer returns a buffer retaining the last size bytes of a stream
// whose first byte has absolute position startPosition.
// It panics if size is not positive or does not fit in an int.
func NewTailBuffer(size int64, startPosition int64) *TailBuffer {
	if size <= 0 || size > math.MaxInt {
		panic(fmt.Sprintf("ringbuffer: size must be in (0, %d], got %d", math.MaxInt, size))
	}

	return &TailBuffer{
		ring:          New[byte](int(size)),
		startPosition: startPosition,
	}
}

func (buffer *TailBuffer) getNormalizedPosition(position int64) int64 {
	return position - buffer.startPosition
}

// earliest is the normalized position of the oldest retained byte.
func (buffer *TailBuffer) earliest() int64 {
	return buffer.lastWritePosition - int64(buffer.ring.Len())
}

func (buffer *TailBuffer) GetCapacity() int64 {
	return int64(buffer.ring.Cap())
}

func (buffer *TailBuffer) GetSize() int64 {
	return int64(buffer.ring.Len())
}

func (buffer *TailBuffer) GetStartPosition() int64 {
	return buffer.startPosition
}

// GetBytesToOverwrite returns how many bytes can be written before the oldest
// retained bytes start being evicted.
func (buffer *TailBuffer) GetBytesToOverwrite() int64 {
	return int64(buffer.ring.Cap() - buffer.ring.Len())
}

func (buffer *TailBuffer) IsPositionAvailable(position int64) bool {
	if buffer.ring.Empty() {
		return false
	}

	normalizedPosition := buffer.getNormalizedPosition(position)

	return normalizedPosition >= buffer.earliest() && normalizedPosition <= buffer.lastWritePosition
}

func (buffer *TailBuffer) Write(p []byte) (n int, err error) {
	if buffer.closed {
		return 0, ErrClosed
	}

	// Only the last Cap() bytes of p can survive, skip the rest.
	retained := p
	if bufferCap := buffer.ring.Cap(); len(retained) > bufferCap {
		retained = retained[len(retained)-bufferCap:]
	}
	for _, b := range retained {
		buffer.ring.PushBack(b)
	}

	buffer.lastWritePosition += int64(len(p))

	return len(p), nil
}

func (buffer *TailBuffer) ReadAt(p []byte, position int64) (int, error) {
	if buffer.closed {
		return 0, ErrClosed
	}

	normalizedPosition := buffer.getNormalizedPosition(position)
	earliest := buffer.earliest()
	if normalizedPosition < earliest || normalizedPosition > buffer.lastWritePosition {
		return 0, errors.Annotatef(ErrOutOfRange, "position %d not in [%d, %d]",
			position, buffer.startPosition+earliest, buffer.startPosition+buffer.lastWritePosition)
	}

	offset := int(normalizedPosition - earliest)
	available := buffer.ring.Len() - offset

	var bytesRead int
	for bytesRead < len(p) && bytesRead < available {
		p[bytesRead] = buffer.ring.At(offset + bytesRead)
		bytesRead++
	}

	if bytesRead < len(p) {
		return bytesRead, io.EOF
	}

	return bytesRead, nil
}

// WriteTo writes the retained bytes, oldest first, to w.
func (buffer *TailBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(buffer.ring.Slice())
	return int64(n), errors.Trace(err)
}

// Bytes returns a copy of the retained bytes, oldest first.
func (buffer *TailBuffer) Bytes() []byte {
	return buffer.ring.Slice()
}

func (buffer *TailBuffer) ResetToPosition(position int64) {
	buffer.startPosition = position
	buffer.lastWritePosition = 0
	buffer.ring.Clear()
}

func (buffer *TailBuffer) Close() error {
	buffer.closed = true
	buffer.ring.Clear()

	return nil
}
