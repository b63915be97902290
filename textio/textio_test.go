package textio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepage"
	"github.com/wippyai/textcore/errors"
	"github.com/wippyai/textcore/format"
)

func TestReader_ReadPeek(t *testing.T) {
	r := NewReader(strings.NewReader("a测"), codepage.UTF8)

	c, err := r.Peek()
	require.NoError(t, err)
	assert.Equal(t, textcore.CodePoint('a'), c.CodePoint)

	c, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), c.Units)

	c, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, textcore.CodePoint(0x6D4B), c.CodePoint)
	assert.Equal(t, []byte("测"), c.Units)

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
	_, err = r.Peek()
	assert.Equal(t, io.EOF, err)
}

func TestReader_UTF16LE(t *testing.T) {
	src := []byte{'h', 0, 0x3D, 0xD8, 0x00, 0xDE}
	r := NewReader(bytes.NewReader(src), codepage.UTF16LE)

	c, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, textcore.CodePoint('h'), c.CodePoint)

	c, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, textcore.CodePoint(0x1F600), c.CodePoint)
	assert.Len(t, c.Units, 4)
}

func TestReader_TruncatedStream(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{'a', 0xE6, 0xB5}), codepage.UTF8)

	_, err := r.Read()
	require.NoError(t, err)

	_, err = r.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrEncodingFailed)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "End of stream.")
}

func TestReader_Malformed(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF}), codepage.UTF8)
	_, err := r.Read()
	assert.ErrorIs(t, err, errors.ErrEncodingFailed)
}

func TestReader_ReadLine(t *testing.T) {
	r := NewReaderSize(strings.NewReader("one\ntwo\r\nth\rree\r\n\nlast\r"), codepage.UTF8, 16)

	var lines []string
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, string(line))
	}

	assert.Equal(t, []string{"one", "two", "th\rree", "", "last\r"}, lines)
}

func TestReader_ReadUntil(t *testing.T) {
	r := NewReader(strings.NewReader("k=v;测=试;tail"), codepage.UTF8)

	var parts []string
	for {
		part, err := r.ReadUntil(';')
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		parts = append(parts, string(part))
	}
	assert.Equal(t, []string{"k=v", "测=试", "tail"}, parts)
}

func TestWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, codepage.UTF8)
	w.SetNewline("\n")

	n, err := w.Format([]byte("${0}+${1}="), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = w.FormatLine([]byte("${0:x}"), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// no args writes the template verbatim, placeholders included
	n, err = w.FormatLine([]byte("${0} $$"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	require.NoError(t, w.Flush())
	assert.Equal(t, "1+2=3\n${0} $$\n", buf.String())
}

func TestWriter_UTF16Newline(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, codepage.UTF16LE)
	w.SetNewline("\r\n")

	n, err := w.FormatLine([]byte{'$', 0, '{', 0, '}', 0}, 7)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	require.NoError(t, w.Flush())
	assert.Equal(t, []byte{'7', 0, '\r', 0, '\n', 0}, buf.Bytes())
}

func TestWriter_AsSink(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, codepage.UTF8)

	err := format.Write[byte](w, codepage.UTF8, format.DefaultConverter[byte]{}, []byte("${}-${}"), "a", 1)
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	assert.Equal(t, "a-1", buf.String())
}

func TestWriter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, codepage.UTF8)
	_, err := w.Format([]byte("${3}"), 1)
	assert.ErrorIs(t, err, errors.ErrFormat)
}

func TestNewline(t *testing.T) {
	assert.Contains(t, []string{"\n", "\r\n"}, Newline())
}
