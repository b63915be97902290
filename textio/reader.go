package textio

import (
	"bufio"
	"io"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// Char is one decoded code point and the units it was read from.
type Char struct {
	Units     []byte
	CodePoint textcore.CodePoint
}

// Reader decodes code points from a byte stream.
type Reader struct {
	r     *bufio.Reader
	codec textcore.Codec[byte]
}

// NewReader returns a reader decoding r with codec.
func NewReader(r io.Reader, codec textcore.Codec[byte]) *Reader {
	return &Reader{r: bufio.NewReader(r), codec: codec}
}

// NewReaderSize returns a reader whose buffer has at least size bytes.
func NewReaderSize(r io.Reader, codec textcore.Codec[byte], size int) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, max(size, codec.MaxWidth())), codec: codec}
}

// Codec returns the code page the reader decodes.
func (r *Reader) Codec() textcore.Codec[byte] { return r.codec }

// Read decodes and consumes the next code point.
// It returns io.EOF when the stream ends between code points.
func (r *Reader) Read() (Char, error) {
	c, err := r.fetch()
	if err != nil {
		return Char{}, err
	}
	if _, err := r.r.Discard(len(c.Units)); err != nil {
		return Char{}, err
	}
	return c, nil
}

// Peek decodes the next code point without consuming it.
func (r *Reader) Peek() (Char, error) {
	return r.fetch()
}

// ReadLine reads up to the next "\n" or "\r\n" and returns the line without
// its terminator. A lone '\r' is part of the line. It returns io.EOF only if
// the stream was already exhausted.
func (r *Reader) ReadLine() ([]byte, error) {
	line := []byte{}
	read := false
	for {
		c, err := r.Read()
		if err == io.EOF {
			if !read {
				return nil, io.EOF
			}
			return line, nil
		}
		if err != nil {
			return nil, err
		}
		read = true

		switch c.CodePoint {
		case '\n':
			return line, nil
		case '\r':
			next, err := r.Peek()
			if err == nil && next.CodePoint == '\n' {
				if _, err := r.r.Discard(len(next.Units)); err != nil {
					return nil, err
				}
				return line, nil
			}
			if err != nil && err != io.EOF {
				return nil, err
			}
			line = append(line, c.Units...)
		default:
			line = append(line, c.Units...)
		}
	}
}

// ReadUntil reads up to the first occurrence of end and returns the units
// before it. The terminator is consumed but not returned. It returns io.EOF
// only if the stream was already exhausted.
func (r *Reader) ReadUntil(end textcore.CodePoint) ([]byte, error) {
	out := []byte{}
	read := false
	for {
		c, err := r.Read()
		if err == io.EOF {
			if !read {
				return nil, io.EOF
			}
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		read = true

		if c.CodePoint == end {
			return out, nil
		}
		out = append(out, c.Units...)
	}
}

// fetch decodes the next code point, peeking one more byte at a time until
// the codec accepts or rejects.
func (r *Reader) fetch() (Char, error) {
	maxWidth := r.codec.MaxWidth()
	for n := 1; n <= maxWidth; n++ {
		buf, err := r.r.Peek(n)
		if len(buf) < n {
			if err == io.EOF {
				if n == 1 {
					return Char{}, io.EOF
				}
				return Char{}, errors.New(errors.PhaseIO, errors.KindEncodingFailed).
					Codec(r.codec.Name()).
					Cause(io.ErrUnexpectedEOF).
					Detail("End of stream.").
					Build()
			}
			return Char{}, err
		}

		res := r.codec.Decode(buf)
		switch res.Outcome {
		case textcore.Accept:
			width := res.Width
			if !r.codec.VariableWidth() {
				width = 1
			}
			units := make([]byte, width)
			copy(units, buf)
			return Char{Units: units, CodePoint: res.CodePoint}, nil
		case textcore.Reject:
			return Char{}, errors.New(errors.PhaseIO, errors.KindEncodingFailed).
				Codec(r.codec.Name()).
				Detail("Encoding failed.").
				Build()
		}
	}

	return Char{}, errors.New(errors.PhaseIO, errors.KindEncodingFailed).
		Codec(r.codec.Name()).
		Detail("Encoding failed.").
		Build()
}
