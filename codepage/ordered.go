package codepage

import (
	"encoding/binary"

	"github.com/wippyai/textcore"
)

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Byte-oriented forms of the multi-byte unit codecs.
var (
	UTF16LE textcore.Codec[byte] = Ordered("UTF-16LE", UTF16, binary.LittleEndian)
	UTF16BE textcore.Codec[byte] = Ordered("UTF-16BE", UTF16, binary.BigEndian)
	UTF32LE textcore.Codec[byte] = Ordered("UTF-32LE", UTF32, binary.LittleEndian)
	UTF32BE textcore.Codec[byte] = Ordered("UTF-32BE", UTF32, binary.BigEndian)
)

// OrderedCodec serializes the units of a 16 or 32-bit codec as bytes.
// A code point always spans several bytes, so the codec reports itself as
// variable width.
type OrderedCodec[U uint16 | uint32] struct {
	inner textcore.Codec[U]
	order byteOrder
	name  string
}

// Ordered wraps inner so it operates on bytes in the given order.
func Ordered[U uint16 | uint32](name string, inner textcore.Codec[U], order byteOrder) *OrderedCodec[U] {
	return &OrderedCodec[U]{name: name, inner: inner, order: order}
}

func (c *OrderedCodec[U]) Name() string        { return c.name }
func (c *OrderedCodec[U]) VariableWidth() bool { return true }
func (c *OrderedCodec[U]) MaxWidth() int       { return c.inner.MaxWidth() * c.unitSize() }

// Inner returns the wrapped unit codec.
func (c *OrderedCodec[U]) Inner() textcore.Codec[U] { return c.inner }

func (c *OrderedCodec[U]) unitSize() int {
	var u U
	if uint64(^u) > 0xFFFF {
		return 4
	}
	return 2
}

func (c *OrderedCodec[U]) unit(b []byte) U {
	if c.unitSize() == 4 {
		return U(c.order.Uint32(b))
	}
	return U(c.order.Uint16(b))
}

func (c *OrderedCodec[U]) Decode(src []byte) textcore.Result {
	size := c.unitSize()
	n := min(len(src)/size, c.inner.MaxWidth(), 2)
	if n == 0 {
		return textcore.Result{Outcome: textcore.Incomplete}
	}

	var units [2]U
	for i := 0; i < n; i++ {
		units[i] = c.unit(src[i*size:])
	}

	r := c.inner.Decode(units[:n])
	switch r.Outcome {
	case textcore.Accept:
		return textcore.Accepted(r.CodePoint, r.Width*size)
	case textcore.Reject:
		return textcore.Result{Outcome: textcore.Reject, Width: size}
	}
	// at least one whole unit was read
	return textcore.Result{Outcome: textcore.Incomplete, Width: size}
}

func (c *OrderedCodec[U]) Encode(dst []byte, cp textcore.CodePoint) ([]byte, bool) {
	var scratch [2]U
	units, ok := c.inner.Encode(scratch[:0], cp)
	if !ok {
		return dst, false
	}
	for _, u := range units {
		if c.unitSize() == 4 {
			dst = c.order.AppendUint32(dst, uint32(u))
		} else {
			dst = c.order.AppendUint16(dst, uint16(u))
		}
	}
	return dst, true
}
