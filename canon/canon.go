package canon

import (
	"context"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/textcore/codepage"
	"github.com/wippyai/textcore/errors"
	"github.com/wippyai/textcore/transcoder"
)

// StringEncoding is the guest string encoding.
type StringEncoding uint8

const (
	UTF8 StringEncoding = iota
	UTF16
	Latin1UTF16
)

func (e StringEncoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case UTF16:
		return "utf16"
	case Latin1UTF16:
		return "latin1+utf16"
	}
	return "unknown"
}

// UTF16Tag marks a Latin1UTF16 length as counting UTF-16 units.
const UTF16Tag = 1 << 31

// MaxStringSize bounds the byte size of a lifted or lowered string.
const MaxStringSize = 1 << 30

// Options configures string lifting and lowering.
type Options struct {
	Memory   api.Memory
	Alloc    Allocator
	Encoding StringEncoding
}

// LiftString reads a guest string at ptr. length is in the units of the
// encoding, with UTF16Tag possibly set for Latin1UTF16.
func LiftString(opts Options, ptr, length uint32) (string, error) {
	if opts.Memory == nil {
		return "", errors.InvalidInput(errors.PhaseLift, "nil memory")
	}

	var (
		data []byte
		err  error
	)
	switch opts.Encoding {
	case UTF8:
		data, err = read(opts.Memory, ptr, uint64(length))
		if err != nil {
			return "", err
		}
		data, err = transcoder.EncodeTo(data, codepage.UTF8, codepage.UTF8)
	case UTF16:
		data, err = liftUTF16(opts.Memory, ptr, length)
	case Latin1UTF16:
		if length&UTF16Tag != 0 {
			data, err = liftUTF16(opts.Memory, ptr, length&^UTF16Tag)
			break
		}
		data, err = read(opts.Memory, ptr, uint64(length))
		if err != nil {
			return "", err
		}
		data, err = transcoder.EncodeTo(data, codepage.Latin1, codepage.UTF8)
	default:
		return "", errors.Unsupported(errors.PhaseLift, "string encoding "+opts.Encoding.String())
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func liftUTF16(mem api.Memory, ptr, units uint32) ([]byte, error) {
	if ptr%2 != 0 {
		return nil, errors.New(errors.PhaseLift, errors.KindInvalidInput).
			Value(ptr).
			Detail("utf16 string pointer %d is not 2-byte aligned", ptr).
			Build()
	}
	data, err := read(mem, ptr, uint64(units)*2)
	if err != nil {
		return nil, err
	}
	return transcoder.EncodeTo(data, codepage.UTF16LE, codepage.UTF8)
}

func read(mem api.Memory, ptr uint32, size uint64) ([]byte, error) {
	if size > MaxStringSize {
		return nil, errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			Path("string").
			Value(size).
			Detail("string size %d exceeds maximum %d", size, MaxStringSize).
			Build()
	}
	data, ok := mem.Read(ptr, uint32(size))
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseLift, []string{"string"}, int(ptr)+int(size), int(mem.Size()))
	}
	return data, nil
}

// LowerString allocates guest memory for s and writes it in the configured
// encoding. It returns the pointer and the length in the units of the
// encoding, with UTF16Tag set when Latin1UTF16 had to fall back to UTF-16.
func LowerString(ctx context.Context, opts Options, s string) (ptr, length uint32, err error) {
	if opts.Memory == nil {
		return 0, 0, errors.InvalidInput(errors.PhaseLower, "nil memory")
	}
	if opts.Alloc == nil {
		return 0, 0, errors.InvalidInput(errors.PhaseLower, "nil allocator")
	}

	src := []byte(s)
	var (
		data  []byte
		align uint32 = 1
		tag   uint32
		unit  uint32 = 1
	)
	switch opts.Encoding {
	case UTF8:
		data, err = transcoder.EncodeTo(src, codepage.UTF8, codepage.UTF8)
	case UTF16:
		data, err = transcoder.EncodeTo(src, codepage.UTF8, codepage.UTF16LE)
		align, unit = 2, 2
	case Latin1UTF16:
		align = 2
		data, err = transcoder.EncodeTo(src, codepage.UTF8, codepage.Latin1)
		if isUnencodable(err) {
			Logger().Debug("latin1 lowering fell back to utf16", zap.Int("bytes", len(src)))
			data, err = transcoder.EncodeTo(src, codepage.UTF8, codepage.UTF16LE)
			tag, unit = UTF16Tag, 2
		}
	default:
		return 0, 0, errors.Unsupported(errors.PhaseLower, "string encoding "+opts.Encoding.String())
	}
	if err != nil {
		return 0, 0, err
	}

	if len(data) > MaxStringSize {
		return 0, 0, errors.New(errors.PhaseLower, errors.KindOutOfBounds).
			Path("string").
			Value(len(data)).
			Detail("string size %d exceeds maximum %d", len(data), MaxStringSize).
			Build()
	}
	size := uint32(len(data))

	ptr, err = opts.Alloc.Alloc(ctx, size, align)
	if err != nil {
		return 0, 0, err
	}
	if !opts.Memory.Write(ptr, data) {
		return 0, 0, errors.OutOfBounds(errors.PhaseLower, []string{"string"}, int(ptr)+len(data), int(opts.Memory.Size()))
	}

	return ptr, size/unit | tag, nil
}

// isUnencodable reports whether err failed on the destination side.
func isUnencodable(err error) bool {
	e, ok := err.(*errors.Error)
	return ok && e.Phase == errors.PhaseEncode && e.Kind == errors.KindEncodingFailed
}
