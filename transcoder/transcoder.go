package transcoder

import (
	"go.uber.org/zap"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepage"
	"github.com/wippyai/textcore/codepoint"
	"github.com/wippyai/textcore/errors"
)

// DestinationFallback is written when the destination code page can encode
// neither a code point nor the replacement.
const DestinationFallback textcore.CodePoint = '?'

// EncodeTo transcodes src from one code page to another.
// The first ill-formed source position or unencodable code point aborts the
// call with an encoding_failed error.
func EncodeTo[S, D textcore.Unit](src []S, from textcore.Codec[S], to textcore.Codec[D]) ([]D, error) {
	out, err := Append(make([]D, 0, len(src)), src, from, to)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Append is EncodeTo appending to dst. On error dst is returned unchanged
// in length.
func Append[S, D textcore.Unit](dst []D, src []S, from textcore.Codec[S], to textcore.Codec[D]) ([]D, error) {
	if same, ok := sameCodec(src, from, to); ok {
		if _, err := codepoint.Count(from, src); err != nil {
			return dst, err
		}
		return append(dst, same...), nil
	}

	base := len(dst)
	it := codepoint.New(from, src)
	for !it.Done() {
		cp, err := it.Current()
		if err != nil {
			return dst[:base], err
		}
		out, ok := to.Encode(dst, cp)
		if !ok {
			return dst[:base], unencodable(to, cp, it.Offset())
		}
		dst = out
		_ = it.Next()
	}
	return dst, nil
}

// EncodeToWithReplacement transcodes src, decoding ill-formed source positions
// as replacement. A code point the destination cannot encode is written as
// replacement, or as DestinationFallback if replacement is not encodable
// either. Only a destination that rejects both fails the call.
func EncodeToWithReplacement[S, D textcore.Unit](src []S, from textcore.Codec[S], to textcore.Codec[D], replacement textcore.CodePoint) ([]D, error) {
	out, err := AppendWithReplacement(make([]D, 0, len(src)), src, from, to, replacement)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendWithReplacement is EncodeToWithReplacement appending to dst.
func AppendWithReplacement[S, D textcore.Unit](dst []D, src []S, from textcore.Codec[S], to textcore.Codec[D], replacement textcore.CodePoint) ([]D, error) {
	base := len(dst)
	it := codepoint.NewReplacing(from, src, replacement)
	for !it.Done() {
		cp, err := it.Current()
		if err != nil {
			return dst[:base], err
		}
		out, ok := encodeReplacing(dst, to, cp, replacement)
		if !ok {
			return dst[:base], unencodable(to, cp, it.Offset())
		}
		dst = out
		_ = it.Next()
	}
	return dst, nil
}

// Transcode transcodes between two registered byte code pages.
func Transcode(from codepage.ID, src []byte, to codepage.ID) ([]byte, error) {
	fc, tc, err := lookupPair(from, to)
	if err != nil {
		return nil, err
	}
	return EncodeTo(src, fc, tc)
}

// TranscodeWithReplacement is Transcode under the replacement policy.
func TranscodeWithReplacement(from codepage.ID, src []byte, to codepage.ID, replacement textcore.CodePoint) ([]byte, error) {
	fc, tc, err := lookupPair(from, to)
	if err != nil {
		return nil, err
	}
	return EncodeToWithReplacement(src, fc, tc, replacement)
}

// TranscodeName transcodes between two code pages given by name or IANA alias.
func TranscodeName(from string, src []byte, to string) ([]byte, error) {
	fid, err := codepage.LookupName(from)
	if err != nil {
		return nil, err
	}
	tid, err := codepage.LookupName(to)
	if err != nil {
		return nil, err
	}
	return Transcode(fid, src, tid)
}

func lookupPair(from, to codepage.ID) (textcore.Codec[byte], textcore.Codec[byte], error) {
	fc, err := codepage.Lookup(from)
	if err != nil {
		return nil, nil, err
	}
	tc, err := codepage.Lookup(to)
	if err != nil {
		return nil, nil, err
	}
	return fc, tc, nil
}

// sameCodec returns src as a destination slice when both sides use the same
// codec value.
func sameCodec[S, D textcore.Unit](src []S, from textcore.Codec[S], to textcore.Codec[D]) ([]D, bool) {
	same, ok := any(src).([]D)
	if !ok || any(from) != any(to) {
		return nil, false
	}
	return same, true
}

// encodeReplacing encodes cp, falling back to replacement and then to
// DestinationFallback.
func encodeReplacing[D textcore.Unit](dst []D, to textcore.Codec[D], cp, replacement textcore.CodePoint) ([]D, bool) {
	if out, ok := to.Encode(dst, cp); ok {
		return out, true
	}
	for _, fallback := range [...]textcore.CodePoint{replacement, DestinationFallback} {
		if out, ok := to.Encode(dst, fallback); ok {
			Logger().Debug("substituted unencodable code point",
				zap.String("codec", to.Name()),
				zap.Uint32("code_point", uint32(cp)),
				zap.Uint32("substitute", uint32(fallback)))
			return out, true
		}
	}
	return dst, false
}

func unencodable[D textcore.Unit](to textcore.Codec[D], cp textcore.CodePoint, offset int) error {
	return errors.New(errors.PhaseEncode, errors.KindEncodingFailed).
		Codec(to.Name()).
		Value(offset).
		Detail("Encoding failed: U+%04X is not representable (source unit %d).", uint32(cp), offset).
		Build()
}
