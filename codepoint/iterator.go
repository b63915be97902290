// Package codepoint provides a lazy forward iterator over the code points of
// an encoded buffer.
//
// The iterator borrows the buffer it walks and never copies it. Decoding
// happens on demand: Current decodes the code point at the current position
// and caches it together with its width, Next consumes the cached width.
//
// Two failure policies are available. New returns a strict iterator which
// reports ill-formed input as an encoding_failed error. NewReplacing returns
// an iterator which substitutes a replacement code point for every ill-formed
// position and always makes forward progress.
package codepoint

import (
	"iter"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// Iterator walks the code points of a borrowed buffer.
// The zero value is the end sentinel.
type Iterator[U textcore.Unit] struct {
	codec       textcore.Codec[U]
	buf         []U
	offset      int
	width       int
	cp          textcore.CodePoint
	replacement textcore.CodePoint
	replace     bool
	cached      bool
}

// New returns a strict iterator over buf.
func New[U textcore.Unit](codec textcore.Codec[U], buf []U) Iterator[U] {
	return Iterator[U]{codec: codec, buf: buf}
}

// NewReplacing returns an iterator over buf that yields replacement for
// every position the codec rejects.
func NewReplacing[U textcore.Unit](codec textcore.Codec[U], buf []U, replacement textcore.CodePoint) Iterator[U] {
	return Iterator[U]{codec: codec, buf: buf, replacement: replacement, replace: true}
}

// End returns the end sentinel.
func End[U textcore.Unit]() Iterator[U] {
	return Iterator[U]{}
}

// Done reports whether the remaining buffer is empty.
func (it *Iterator[U]) Done() bool {
	return len(it.buf) == 0
}

// Remaining returns the units not yet consumed.
func (it *Iterator[U]) Remaining() []U {
	return it.buf
}

// Offset returns the number of units consumed so far.
func (it *Iterator[U]) Offset() int {
	return it.offset
}

// Equal reports whether both iterators are exhausted, or both view the same
// remaining storage with the same length.
func (it *Iterator[U]) Equal(other Iterator[U]) bool {
	if len(it.buf) == 0 || len(other.buf) == 0 {
		return len(it.buf) == len(other.buf)
	}
	return &it.buf[0] == &other.buf[0] && len(it.buf) == len(other.buf)
}

// Current decodes the code point at the current position without advancing.
// The result is cached until Next is called.
func (it *Iterator[U]) Current() (textcore.CodePoint, error) {
	if it.cached {
		return it.cp, nil
	}
	if len(it.buf) == 0 {
		return 0, errors.Invariant(errors.PhaseDecode, "dereferencing an exhausted iterator")
	}

	r := it.codec.Decode(it.buf)
	if r.Outcome == textcore.Accept {
		it.cp = r.CodePoint
		it.width = r.Width
		if !it.codec.VariableWidth() {
			it.width = 1
		}
		it.cached = true
		return it.cp, nil
	}

	if !it.replace {
		return 0, errors.EncodingFailed(errors.PhaseDecode, it.codec.Name(), it.offset)
	}

	// A rejecting codec may report the size of one scheme unit, which is
	// wider than one buffer element for byte views of UTF-16 and UTF-32.
	it.cp = it.replacement
	it.width = min(max(1, r.Width), len(it.buf))
	if !it.codec.VariableWidth() {
		it.width = 1
	}
	it.cached = true
	return it.cp, nil
}

// Next advances past the current code point.
func (it *Iterator[U]) Next() error {
	if !it.cached {
		if _, err := it.Current(); err != nil {
			return err
		}
	}
	it.buf = it.buf[it.width:]
	it.offset += it.width
	it.cached = false
	return nil
}

// All returns a sequence of the remaining code points. Iteration stops at
// the first decode error, which is yielded as the final element.
// The receiver is not advanced.
func (it Iterator[U]) All() iter.Seq2[textcore.CodePoint, error] {
	return func(yield func(textcore.CodePoint, error) bool) {
		for !it.Done() {
			cp, err := it.Current()
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(cp, nil) {
				return
			}
			_ = it.Next()
		}
	}
}

// Decode eagerly decodes every code point of buf under the strict policy.
func Decode[U textcore.Unit](codec textcore.Codec[U], buf []U) ([]textcore.CodePoint, error) {
	out := make([]textcore.CodePoint, 0, len(buf))
	it := New(codec, buf)
	for !it.Done() {
		cp, err := it.Current()
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
		_ = it.Next()
	}
	return out, nil
}

// Count returns the number of code points in buf under the strict policy.
func Count[U textcore.Unit](codec textcore.Codec[U], buf []U) (int, error) {
	n := 0
	it := New(codec, buf)
	for !it.Done() {
		if err := it.Next(); err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}
