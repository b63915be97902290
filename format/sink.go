package format

import "github.com/wippyai/textcore"

// Sink receives the units produced while formatting.
type Sink[U textcore.Unit] interface {
	Append(units []U) error
}

// Counter is a sink that only counts units.
type Counter[U textcore.Unit] struct {
	N int
}

func (c *Counter[U]) Append(units []U) error {
	c.N += len(units)
	return nil
}

// Buffer is a growable in-memory sink.
type Buffer[U textcore.Unit] struct {
	units []U
}

// NewBuffer returns a buffer with room for size units.
func NewBuffer[U textcore.Unit](size int) *Buffer[U] {
	return &Buffer[U]{units: make([]U, 0, size)}
}

func (b *Buffer[U]) Append(units []U) error {
	b.units = append(b.units, units...)
	return nil
}

// Units returns the collected units. The slice aliases the buffer.
func (b *Buffer[U]) Units() []U { return b.units }

// Len returns the number of collected units.
func (b *Buffer[U]) Len() int { return len(b.units) }

// Reset empties the buffer, keeping its storage.
func (b *Buffer[U]) Reset() { b.units = b.units[:0] }
