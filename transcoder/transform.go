package transcoder

import (
	"io"

	"golang.org/x/text/transform"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// Transformer transcodes a byte stream between two byte code pages.
// It implements transform.Transformer.
type Transformer struct {
	from        textcore.Codec[byte]
	to          textcore.Codec[byte]
	scratch     []byte
	offset      int
	replacement textcore.CodePoint
	replace     bool
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer returns a strict transformer.
func NewTransformer(from, to textcore.Codec[byte]) *Transformer {
	return &Transformer{from: from, to: to}
}

// NewReplacingTransformer returns a transformer using the replacement policy
// of EncodeToWithReplacement.
func NewReplacingTransformer(from, to textcore.Codec[byte], replacement textcore.CodePoint) *Transformer {
	return &Transformer{from: from, to: to, replacement: replacement, replace: true}
}

// NewReader returns a reader yielding the contents of r transcoded by t.
func NewReader(r io.Reader, t *Transformer) io.Reader {
	return transform.NewReader(r, t)
}

// NewWriter returns a writer transcoding everything written to it by t into w.
func NewWriter(w io.Writer, t *Transformer) io.WriteCloser {
	return transform.NewWriter(w, t)
}

// Reset implements transform.Transformer.
func (t *Transformer) Reset() {
	t.offset = 0
}

// Transform implements transform.Transformer.
// A code point cut off at the end of src is left unconsumed until atEOF.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r := t.from.Decode(src[nSrc:])

		cp, width := r.CodePoint, r.Width
		switch r.Outcome {
		case textcore.Accept:
			if !t.from.VariableWidth() {
				width = 1
			}
		case textcore.Incomplete:
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			fallthrough
		default:
			if !t.replace {
				return nDst, nSrc, errors.EncodingFailed(errors.PhaseDecode, t.from.Name(), t.offset)
			}
			cp = t.replacement
			width = min(max(1, r.Width), len(src)-nSrc)
		}

		var ok bool
		if t.replace {
			t.scratch, ok = encodeReplacing(t.scratch[:0], t.to, cp, t.replacement)
		} else {
			t.scratch, ok = t.to.Encode(t.scratch[:0], cp)
		}
		if !ok {
			return nDst, nSrc, unencodable(t.to, cp, t.offset)
		}

		if nDst+len(t.scratch) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], t.scratch)
		nSrc += width
		t.offset += width
	}
	return nDst, nSrc, nil
}
