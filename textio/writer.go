package textio

import (
	"bufio"
	"io"
	"runtime"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
	"github.com/wippyai/textcore/format"
)

// Newline returns the line terminator of the host platform.
func Newline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Writer formats encoded text into a byte stream.
// It implements format.Sink, so it can be used directly as a streaming sink.
type Writer struct {
	w         *bufio.Writer
	formatter *format.Formatter[byte]
	newline   string
	written   int
}

// NewWriter returns a writer encoding with codec into w.
func NewWriter(w io.Writer, codec textcore.Codec[byte]) *Writer {
	return &Writer{
		w:         bufio.NewWriter(w),
		formatter: format.New(codec),
		newline:   Newline(),
	}
}

// SetFormatter replaces the formatter used by Format and FormatLine.
func (w *Writer) SetFormatter(f *format.Formatter[byte]) { w.formatter = f }

// SetNewline overrides the line terminator.
func (w *Writer) SetNewline(nl string) { w.newline = nl }

// Append implements format.Sink.
func (w *Writer) Append(units []byte) error {
	n, err := w.w.Write(units)
	w.written += n
	if err != nil {
		return errors.Wrap(errors.PhaseIO, errors.KindInvalidInput, err, "write failed")
	}
	return nil
}

// Format expands template with args and writes the result, returning the
// number of bytes written. Without args the template is written verbatim.
func (w *Writer) Format(template []byte, args ...any) (int, error) {
	start := w.written
	if len(args) == 0 {
		err := w.Append(template)
		return w.written - start, err
	}
	err := w.formatter.Write(w, template, args...)
	return w.written - start, err
}

// FormatLine is Format followed by the line terminator.
func (w *Writer) FormatLine(template []byte, args ...any) (int, error) {
	n, err := w.Format(template, args...)
	if err != nil {
		return n, err
	}

	codec := w.formatter.Codec
	nl := make([]byte, 0, len(w.newline)*codec.MaxWidth())
	for i := 0; i < len(w.newline); i++ {
		out, ok := codec.Encode(nl, textcore.CodePoint(w.newline[i]))
		if !ok {
			return n, errors.Unencodable(errors.PhaseIO, codec.Name(), uint32(w.newline[i]))
		}
		nl = out
	}

	start := w.written
	err = w.Append(nl)
	return n + w.written - start, err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
