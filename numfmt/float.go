package numfmt

import (
	"unsafe"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// Float is the set of floating point types accepted by WriteLegacyFloat.
type Float interface {
	~float32 | ~float64
}

// LegacyFractionDigits is the fixed number of fractional digits printed by
// WriteLegacyFloat.
const LegacyFractionDigits = 5

const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52

	// bounds of int64 as floating point values
	minInt64Float = -0x1p63
	maxInt64Float = 0x1p63
)

func epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// WriteLegacyFloat writes v with the fixed five digit legacy algorithm.
//
// No options are supported. NaN is written as "NaN". Values outside the range
// of int64, including the infinities, are rejected. The integer part is
// written truncated; if the absolute fractional remainder exceeds the machine
// epsilon of T, a '.' and the remainder scaled by 10^5 and truncated follow.
func WriteLegacyFloat[T Float](w Writer, v T, opts []textcore.CodePoint) error {
	if len(opts) > 0 {
		return errors.New(errors.PhaseConvert, errors.KindFormat).
			Value(uint32(opts[0])).
			Detail("Invalid option.").
			Build()
	}

	if v != v {
		return writeASCII(w, "NaN")
	}

	if f := float64(v); f >= maxInt64Float || f < minInt64Float {
		return errors.New(errors.PhaseConvert, errors.KindFormat).
			Value(f).
			Detail("value is too big, not implemented now.").
			Build()
	}

	if err := WriteInt(w, int64(v), DefaultIntSpec); err != nil {
		return err
	}

	// -2^63 has no positive int64 counterpart, so take the remainder
	// before dropping the sign
	frac := v - T(int64(v))
	if frac < 0 {
		frac = -frac
	}

	if frac > epsilon[T]() {
		if err := w.WriteCodePoint('.'); err != nil {
			return err
		}
		frac *= 100000
		return WriteInt(w, int64(frac), DefaultIntSpec)
	}
	return nil
}
