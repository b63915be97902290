package codepage

import (
	"unicode/utf16"

	"github.com/wippyai/textcore"
)

// UTF16 is the UTF-16 codec over native 16-bit units.
var UTF16 textcore.Codec[uint16] = utf16Codec{}

type utf16Codec struct{}

func (utf16Codec) Name() string        { return "UTF-16" }
func (utf16Codec) VariableWidth() bool { return true }
func (utf16Codec) MaxWidth() int       { return 2 }

func (utf16Codec) Decode(src []uint16) textcore.Result {
	if len(src) == 0 {
		return textcore.Result{Outcome: textcore.Incomplete}
	}
	u0 := src[0]
	if !utf16.IsSurrogate(rune(u0)) {
		return textcore.Accepted(textcore.CodePoint(u0), 1)
	}
	if u0 >= 0xDC00 {
		// lone low surrogate
		return textcore.Result{Outcome: textcore.Reject}
	}
	if len(src) < 2 {
		return textcore.Result{Outcome: textcore.Incomplete}
	}
	r := utf16.DecodeRune(rune(u0), rune(src[1]))
	if r == 0xFFFD {
		return textcore.Result{Outcome: textcore.Reject}
	}
	return textcore.Accepted(textcore.CodePoint(r), 2)
}

func (utf16Codec) Encode(dst []uint16, cp textcore.CodePoint) ([]uint16, bool) {
	if !textcore.Valid(cp) {
		return dst, false
	}
	if cp < 0x10000 {
		return append(dst, uint16(cp)), true
	}
	r1, r2 := utf16.EncodeRune(rune(cp))
	return append(dst, uint16(r1), uint16(r2)), true
}
