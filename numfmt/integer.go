package numfmt

import (
	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer types accepted by WriteInt.
type Integer interface {
	Signed | Unsigned
}

// maxDigits is the longest rendering of a 64-bit magnitude, in base 2,
// plus one digit for the carry of a minimum signed value.
const maxDigits = 65

// WriteInt writes v in the base and case selected by spec.
//
// The minimum value of a signed type has no positive counterpart, so it is
// rendered from the maximum value and the digits are incremented by one
// afterwards.
func WriteInt[T Integer](w Writer, v T, spec IntSpec) error {
	if spec.Base < 2 || spec.Base > 36 {
		return errors.Invariant(errors.PhaseConvert, "base %d out of range [2, 36]", spec.Base)
	}

	isMin := false
	if v < 0 {
		if err := w.WriteCodePoint('-'); err != nil {
			return err
		}
		if -v < 0 {
			isMin = true
			v = -(v + 1)
		} else {
			v = -v
		}
	}

	base := T(spec.Base)
	count := 1
	pow := T(1)
	for t := v / base; t != 0; t /= base {
		count++
		pow *= base
	}

	var digits [maxDigits]uint8
	n := 0
	if isMin {
		// reserve a leading slot for a carry out of the top digit
		n = 1
	}
	for i := count; i > 0; i-- {
		digits[n] = uint8(v / pow % base)
		n++
		pow /= base
	}

	start := 0
	if isMin {
		start = 1
		for i := n - 1; ; i-- {
			digits[i]++
			if int(digits[i]) < spec.Base {
				break
			}
			digits[i] = 0
			if i == 1 {
				digits[0] = 1
				start = 0
				break
			}
		}
	}

	for _, d := range digits[start:n] {
		if err := w.WriteCodePoint(digitCodePoint(d, spec.Upper)); err != nil {
			return err
		}
	}
	return nil
}

func digitCodePoint(d uint8, upper bool) textcore.CodePoint {
	switch {
	case d < 10:
		return textcore.CodePoint('0' + d)
	case upper:
		return textcore.CodePoint('A' + d - 10)
	default:
		return textcore.CodePoint('a' + d - 10)
	}
}
