package codepage

import "github.com/wippyai/textcore"

// UTF32 is the code point codec: one 32-bit unit holds one scalar value.
var UTF32 textcore.Codec[uint32] = utf32Codec{}

type utf32Codec struct{}

func (utf32Codec) Name() string        { return "UTF-32" }
func (utf32Codec) VariableWidth() bool { return false }
func (utf32Codec) MaxWidth() int       { return 1 }

func (utf32Codec) Decode(src []uint32) textcore.Result {
	if len(src) == 0 {
		return textcore.Result{Outcome: textcore.Incomplete}
	}
	cp := textcore.CodePoint(src[0])
	if !textcore.Valid(cp) {
		return textcore.Result{Outcome: textcore.Reject}
	}
	return textcore.Accepted(cp, 1)
}

func (utf32Codec) Encode(dst []uint32, cp textcore.CodePoint) ([]uint32, bool) {
	if !textcore.Valid(cp) {
		return dst, false
	}
	return append(dst, uint32(cp)), true
}
