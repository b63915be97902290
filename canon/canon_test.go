package canon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/textcore/errors"
)

// guestWasm exports one page of memory and a bump allocator "realloc"
// starting at offset 1024.
var guestWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	// type: (i32 i32 i32 i32) -> i32
	0x01, 0x09, 0x01, 0x60, 0x04, 0x7f, 0x7f, 0x7f, 0x7f, 0x01, 0x7f,
	// func 0
	0x03, 0x02, 0x01, 0x00,
	// memory min 1
	0x05, 0x03, 0x01, 0x00, 0x01,
	// mut i32 global = 1024
	0x06, 0x07, 0x01, 0x7f, 0x01, 0x41, 0x80, 0x08, 0x0b,
	// exports "memory", "realloc"
	0x07, 0x14, 0x02,
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
	0x07, 0x72, 0x65, 0x61, 0x6c, 0x6c, 0x6f, 0x63, 0x00, 0x00,
	// ptr = (top + align - 1) & -align; top = ptr + size
	0x0a, 0x1d, 0x01, 0x1b, 0x01, 0x01, 0x7f,
	0x23, 0x00, 0x20, 0x02, 0x6a, 0x41, 0x01, 0x6b,
	0x41, 0x00, 0x20, 0x02, 0x6b, 0x71, 0x22, 0x04,
	0x20, 0x03, 0x6a, 0x24, 0x00, 0x20, 0x04, 0x0b,
}

func newGuest(t *testing.T) (api.Memory, api.Function) {
	t.Helper()
	ctx := context.Background()

	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { _ = r.Close(ctx) })

	mod, err := r.Instantiate(ctx, guestWasm)
	require.NoError(t, err)

	mem := mod.ExportedMemory("memory")
	require.NotNil(t, mem)
	fn := mod.ExportedFunction("realloc")
	require.NotNil(t, fn)
	return mem, fn
}

func TestRoundTrip(t *testing.T) {
	mem, fn := newGuest(t)
	ctx := context.Background()

	inputs := []string{"", "hello", "café", "测试😀", "mixed ascii ä 中"}
	for _, enc := range []StringEncoding{UTF8, UTF16, Latin1UTF16} {
		for _, s := range inputs {
			t.Run(enc.String()+"/"+s, func(t *testing.T) {
				opts := Options{Memory: mem, Alloc: Realloc{Fn: fn}, Encoding: enc}

				ptr, length, err := LowerString(ctx, opts, s)
				require.NoError(t, err)

				got, err := LiftString(opts, ptr, length)
				require.NoError(t, err)
				assert.Equal(t, s, got)
			})
		}
	}
}

func TestLowerString_Layout(t *testing.T) {
	mem, fn := newGuest(t)
	ctx := context.Background()

	t.Run("utf16 counts units", func(t *testing.T) {
		opts := Options{Memory: mem, Alloc: Realloc{Fn: fn}, Encoding: UTF16}
		ptr, length, err := LowerString(ctx, opts, "a😀")
		require.NoError(t, err)
		assert.Equal(t, uint32(3), length)
		assert.Zero(t, ptr%2)

		data, ok := mem.Read(ptr, 6)
		require.True(t, ok)
		assert.Equal(t, []byte{'a', 0, 0x3D, 0xD8, 0x00, 0xDE}, data)
	})

	t.Run("latin1 stays compact", func(t *testing.T) {
		opts := Options{Memory: mem, Alloc: Realloc{Fn: fn}, Encoding: Latin1UTF16}
		ptr, length, err := LowerString(ctx, opts, "café")
		require.NoError(t, err)
		assert.Equal(t, uint32(4), length)

		data, ok := mem.Read(ptr, 4)
		require.True(t, ok)
		assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, data)
	})

	t.Run("latin1 falls back to tagged utf16", func(t *testing.T) {
		opts := Options{Memory: mem, Alloc: Realloc{Fn: fn}, Encoding: Latin1UTF16}
		_, length, err := LowerString(ctx, opts, "é测")
		require.NoError(t, err)
		assert.Equal(t, uint32(UTF16Tag|2), length)
	})
}

func TestLiftString_Errors(t *testing.T) {
	mem, _ := newGuest(t)

	require.True(t, mem.Write(0, []byte{'o', 'k', 0xFF}))
	require.True(t, mem.Write(16, []byte{0x00, 0xDE}))

	t.Run("invalid utf8", func(t *testing.T) {
		_, err := LiftString(Options{Memory: mem, Encoding: UTF8}, 0, 3)
		assert.ErrorIs(t, err, errors.ErrEncodingFailed)
	})

	t.Run("lone surrogate", func(t *testing.T) {
		_, err := LiftString(Options{Memory: mem, Encoding: UTF16}, 16, 1)
		assert.ErrorIs(t, err, errors.ErrEncodingFailed)
	})

	t.Run("misaligned utf16", func(t *testing.T) {
		_, err := LiftString(Options{Memory: mem, Encoding: UTF16}, 1, 1)
		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errors.KindInvalidInput, e.Kind)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := LiftString(Options{Memory: mem, Encoding: UTF8}, 65530, 100)
		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errors.KindOutOfBounds, e.Kind)
		assert.Equal(t, errors.PhaseLift, e.Phase)
	})

	t.Run("unsupported encoding", func(t *testing.T) {
		_, err := LiftString(Options{Memory: mem, Encoding: 9}, 0, 1)
		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errors.KindUnsupported, e.Kind)
	})

	t.Run("nil memory", func(t *testing.T) {
		_, err := LiftString(Options{}, 0, 1)
		assert.Error(t, err)
	})
}

func TestLowerString_Errors(t *testing.T) {
	mem, _ := newGuest(t)
	ctx := context.Background()

	t.Run("nil allocator", func(t *testing.T) {
		_, _, err := LowerString(ctx, Options{Memory: mem}, "x")
		assert.Error(t, err)
	})

	t.Run("invalid host utf8", func(t *testing.T) {
		opts := Options{Memory: mem, Alloc: fixed(0), Encoding: UTF16}
		_, _, err := LowerString(ctx, opts, "a\xffb")
		assert.ErrorIs(t, err, errors.ErrEncodingFailed)
	})

	t.Run("allocation beyond memory", func(t *testing.T) {
		opts := Options{Memory: mem, Alloc: fixed(65535), Encoding: UTF8}
		_, _, err := LowerString(ctx, opts, "abc")
		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errors.KindOutOfBounds, e.Kind)
	})

	t.Run("allocator error", func(t *testing.T) {
		failing := AllocatorFunc(func(context.Context, uint32, uint32) (uint32, error) {
			return 0, errors.AllocationFailed(errors.PhaseLower, 3, 1)
		})
		_, _, err := LowerString(ctx, Options{Memory: mem, Alloc: failing}, "abc")
		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, errors.KindAllocation, e.Kind)
	})

	t.Run("nil realloc", func(t *testing.T) {
		_, _, err := LowerString(ctx, Options{Memory: mem, Alloc: Realloc{}}, "abc")
		assert.Error(t, err)
	})
}

func fixed(ptr uint32) Allocator {
	return AllocatorFunc(func(context.Context, uint32, uint32) (uint32, error) {
		return ptr, nil
	})
}

func TestStringEncoding_String(t *testing.T) {
	assert.Equal(t, "utf8", UTF8.String())
	assert.Equal(t, "utf16", UTF16.String())
	assert.Equal(t, "latin1+utf16", Latin1UTF16.String())
	assert.Equal(t, "unknown", StringEncoding(7).String())
}
