package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepage"
	"github.com/wippyai/textcore/errors"
)

// countingCodec records how many times Decode runs.
type countingCodec struct {
	textcore.Codec[byte]
	decodes int
}

func (c *countingCodec) Decode(src []byte) textcore.Result {
	c.decodes++
	return c.Codec.Decode(src)
}

func TestIterator_ChineseText(t *testing.T) {
	buf := []byte("测试")
	it := New(codepage.UTF8, buf)

	cp, err := it.Current()
	require.NoError(t, err)
	assert.Equal(t, textcore.CodePoint(0x6D4B), cp)
	require.NoError(t, it.Next())

	cp, err = it.Current()
	require.NoError(t, err)
	assert.Equal(t, textcore.CodePoint(0x8BD5), cp)
	require.NoError(t, it.Next())

	assert.True(t, it.Equal(End[byte]()))
	assert.Equal(t, 6, it.Offset())
}

func TestIterator_AdvancesOncePerCodePoint(t *testing.T) {
	inputs := []string{"", "a", "hello", "ñandú", "测试 text", "😀🙂x", "mixed ascii 和 中文 😀"}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			want := []rune(s)
			it := New(codepage.UTF8, []byte(s))
			end := End[byte]()

			var got []textcore.CodePoint
			steps := 0
			for !it.Equal(end) {
				cp, err := it.Current()
				require.NoError(t, err)
				got = append(got, cp)
				require.NoError(t, it.Next())
				steps++
			}

			assert.Equal(t, len(want), steps)
			eager, err := Decode(codepage.UTF8, []byte(s))
			require.NoError(t, err)
			assert.Equal(t, eager, append([]textcore.CodePoint{}, got...))
			for i, r := range want {
				assert.Equal(t, textcore.CodePoint(r), got[i])
			}
		})
	}
}

func TestIterator_CachesDecode(t *testing.T) {
	codec := &countingCodec{Codec: codepage.UTF8}
	it := New[byte](codec, []byte("测a"))

	for range 3 {
		cp, err := it.Current()
		require.NoError(t, err)
		assert.Equal(t, textcore.CodePoint(0x6D4B), cp)
	}
	assert.Equal(t, 1, codec.decodes)

	require.NoError(t, it.Next())
	assert.Equal(t, []byte("a"), it.Remaining())

	_, err := it.Current()
	require.NoError(t, err)
	assert.Equal(t, 2, codec.decodes)
}

func TestIterator_NextWithoutCurrent(t *testing.T) {
	it := New(codepage.UTF8, []byte("测试"))
	require.NoError(t, it.Next())
	assert.Equal(t, 3, it.Offset())
}

func TestIterator_FixedWidthAdvancesOneUnit(t *testing.T) {
	buf := []uint32{0x6D4B, 0x8BD5, 'x'}
	it := New(codepage.UTF32, buf)

	n, err := Count(codepage.UTF32, buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, it.Next())
	assert.Equal(t, 1, it.Offset())
}

func TestIterator_Strict(t *testing.T) {
	it := New(codepage.UTF8, []byte{'a', 0xFF, 'b'})
	require.NoError(t, it.Next())

	_, err := it.Current()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrEncodingFailed)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 1, e.Value)
	assert.Equal(t, "UTF-8", e.Codec)

	assert.ErrorIs(t, it.Next(), errors.ErrEncodingFailed)
	assert.Equal(t, 1, it.Offset())
}

func TestIterator_StrictIncompleteAtEnd(t *testing.T) {
	_, err := Decode(codepage.UTF8, []byte{'a', 0xE6, 0xB5})
	assert.ErrorIs(t, err, errors.ErrEncodingFailed)
}

func TestIterator_Replacement(t *testing.T) {
	tests := []struct {
		name  string
		codec textcore.Codec[byte]
		src   []byte
		want  []textcore.CodePoint
	}{
		{
			name:  "utf-8 invalid byte",
			codec: codepage.UTF8,
			src:   []byte{'a', 0xFF, 'b'},
			want:  []textcore.CodePoint{'a', textcore.ReplacementChar, 'b'},
		},
		{
			name:  "utf-8 truncated tail",
			codec: codepage.UTF8,
			src:   []byte{'a', 0xE6, 0xB5},
			want:  []textcore.CodePoint{'a', textcore.ReplacementChar, textcore.ReplacementChar},
		},
		{
			name:  "utf-16le lone low surrogate",
			codec: codepage.UTF16LE,
			src:   []byte{0x00, 0xDE, 'a', 0x00},
			want:  []textcore.CodePoint{textcore.ReplacementChar, 'a'},
		},
		{
			name:  "utf-16le high surrogate before odd tail",
			codec: codepage.UTF16LE,
			src:   []byte{'a', 0x00, 0x00, 0xD8, 0x41},
			want:  []textcore.CodePoint{'a', textcore.ReplacementChar, textcore.ReplacementChar},
		},
		{
			name:  "utf-16be truncated pair keeps alignment",
			codec: codepage.UTF16BE,
			src:   []byte{0xD8, 0x3D, 0x00},
			want:  []textcore.CodePoint{textcore.ReplacementChar, textcore.ReplacementChar},
		},
		{
			name:  "ascii high byte",
			codec: codepage.ASCII,
			src:   []byte{'o', 0xE9, 'k'},
			want:  []textcore.CodePoint{'o', textcore.ReplacementChar, 'k'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewReplacing(tt.codec, tt.src, textcore.ReplacementChar)
			var got []textcore.CodePoint
			for cp, err := range it.All() {
				require.NoError(t, err)
				got = append(got, cp)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIterator_CustomReplacement(t *testing.T) {
	it := NewReplacing(codepage.UTF8, []byte{0xC0}, '?')
	cp, err := it.Current()
	require.NoError(t, err)
	assert.Equal(t, textcore.CodePoint('?'), cp)
	require.NoError(t, it.Next())
	assert.True(t, it.Done())
}

func TestIterator_Equal(t *testing.T) {
	buf := []byte("abc")
	a := New(codepage.UTF8, buf)
	b := New(codepage.UTF8, buf)
	c := New(codepage.UTF8, []byte("abc"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(End[byte]()))

	require.NoError(t, b.Next())
	assert.False(t, a.Equal(b))
	require.NoError(t, a.Next())
	assert.True(t, a.Equal(b))

	empty := New(codepage.UTF8, []byte{})
	assert.True(t, empty.Equal(End[byte]()))
}

func TestIterator_CurrentAtEnd(t *testing.T) {
	it := End[byte]()
	_, err := it.Current()
	assert.ErrorIs(t, err, errors.ErrInvariant)
}

func TestIterator_AllStopsAtError(t *testing.T) {
	it := New(codepage.UTF8, []byte{'a', 0xFF, 'b'})

	var got []textcore.CodePoint
	var errs []error
	for cp, err := range it.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, cp)
	}

	assert.Equal(t, []textcore.CodePoint{'a'}, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errors.ErrEncodingFailed)
	assert.Equal(t, 0, it.Offset())
}
