package codepage

import (
	"unicode/utf8"

	"github.com/wippyai/textcore"
)

// UTF8 is the UTF-8 codec.
var UTF8 textcore.Codec[byte] = utf8Codec{}

type utf8Codec struct{}

func (utf8Codec) Name() string        { return "UTF-8" }
func (utf8Codec) VariableWidth() bool { return true }
func (utf8Codec) MaxWidth() int       { return utf8.UTFMax }

func (utf8Codec) Decode(src []byte) textcore.Result {
	if len(src) == 0 {
		return textcore.Result{Outcome: textcore.Incomplete}
	}
	if b := src[0]; b < utf8.RuneSelf {
		return textcore.Accepted(textcore.CodePoint(b), 1)
	}
	if !utf8.FullRune(src) {
		return textcore.Result{Outcome: textcore.Incomplete}
	}
	r, size := utf8.DecodeRune(src)
	if r == utf8.RuneError && size == 1 {
		return textcore.Result{Outcome: textcore.Reject}
	}
	return textcore.Accepted(textcore.CodePoint(r), size)
}

func (utf8Codec) Encode(dst []byte, cp textcore.CodePoint) ([]byte, bool) {
	if !textcore.Valid(cp) {
		return dst, false
	}
	if cp < utf8.RuneSelf {
		return append(dst, byte(cp)), true
	}
	return utf8.AppendRune(dst, rune(cp)), true
}
