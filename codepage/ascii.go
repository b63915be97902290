package codepage

import "github.com/wippyai/textcore"

// ASCII is the 7-bit US-ASCII codec.
var ASCII textcore.Codec[byte] = asciiCodec{}

type asciiCodec struct{}

func (asciiCodec) Name() string        { return "US-ASCII" }
func (asciiCodec) VariableWidth() bool { return false }
func (asciiCodec) MaxWidth() int       { return 1 }

func (asciiCodec) Decode(src []byte) textcore.Result {
	if len(src) == 0 {
		return textcore.Result{Outcome: textcore.Incomplete}
	}
	if src[0] >= 0x80 {
		return textcore.Result{Outcome: textcore.Reject}
	}
	return textcore.Accepted(textcore.CodePoint(src[0]), 1)
}

func (asciiCodec) Encode(dst []byte, cp textcore.CodePoint) ([]byte, bool) {
	if cp >= 0x80 {
		return dst, false
	}
	return append(dst, byte(cp)), true
}
