package numfmt

import (
	"math/bits"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepoint"
	"github.com/wippyai/textcore/errors"
)

// DigitValue returns the value of cp as a digit, accepting '0'-'9' and
// letters of either case. It reports false for anything else.
func DigitValue(cp textcore.CodePoint) (int, bool) {
	switch {
	case cp >= '0' && cp <= '9':
		return int(cp - '0'), true
	case cp >= 'a' && cp <= 'z':
		return int(cp-'a') + 10, true
	case cp >= 'A' && cp <= 'Z':
		return int(cp-'A') + 10, true
	}
	return 0, false
}

// ParseDigits reads the longest prefix of buf made of digits valid in base and
// returns its value and the number of units consumed. A prefix with no digits
// yields zero units consumed and no error.
func ParseDigits[U textcore.Unit](codec textcore.Codec[U], buf []U, base int) (uint64, int, error) {
	if base < 2 || base > 36 {
		return 0, 0, errors.Invariant(errors.PhaseConvert, "base %d out of range [2, 36]", base)
	}

	var value uint64
	it := codepoint.New(codec, buf)
	for !it.Done() {
		cp, err := it.Current()
		if err != nil {
			return 0, 0, err
		}
		d, ok := DigitValue(cp)
		if !ok || d >= base {
			break
		}

		hi, lo := bits.Mul64(value, uint64(base))
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			return 0, 0, errors.New(errors.PhaseConvert, errors.KindOutOfBounds).
				Codec(codec.Name()).
				Value(it.Offset()).
				Detail("numeral overflows 64 bits").
				Build()
		}
		value = sum

		if err := it.Next(); err != nil {
			return 0, 0, err
		}
	}

	return value, it.Offset(), nil
}
