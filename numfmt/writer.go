package numfmt

import (
	"strings"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// Writer receives the code points produced by a converter.
type Writer interface {
	WriteCodePoint(cp textcore.CodePoint) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(cp textcore.CodePoint) error

func (f WriterFunc) WriteCodePoint(cp textcore.CodePoint) error { return f(cp) }

// unitWriter encodes code points into a growing unit buffer.
type unitWriter[U textcore.Unit] struct {
	codec textcore.Codec[U]
	dst   []U
}

func (w *unitWriter[U]) WriteCodePoint(cp textcore.CodePoint) error {
	out, ok := w.codec.Encode(w.dst, cp)
	if !ok {
		return errors.Unencodable(errors.PhaseConvert, w.codec.Name(), uint32(cp))
	}
	w.dst = out
	return nil
}

type stringWriter struct {
	b strings.Builder
}

func (w *stringWriter) WriteCodePoint(cp textcore.CodePoint) error {
	w.b.WriteRune(rune(cp))
	return nil
}

func writeASCII(w Writer, s string) error {
	for i := 0; i < len(s); i++ {
		if err := w.WriteCodePoint(textcore.CodePoint(s[i])); err != nil {
			return err
		}
	}
	return nil
}
