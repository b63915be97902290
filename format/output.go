package format

import (
	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepage"
	"github.com/wippyai/textcore/codepoint"
	"github.com/wippyai/textcore/errors"
)

// Output encodes converter results into a sink.
// It implements numfmt.Writer.
type Output[U textcore.Unit] struct {
	codec   textcore.Codec[U]
	sink    Sink[U]
	scratch []U
}

// NewOutput returns an output writing to sink in codec.
func NewOutput[U textcore.Unit](codec textcore.Codec[U], sink Sink[U]) *Output[U] {
	return &Output[U]{codec: codec, sink: sink}
}

// Codec returns the code page of the output.
func (o *Output[U]) Codec() textcore.Codec[U] { return o.codec }

// Append forwards already encoded units unchanged.
func (o *Output[U]) Append(units []U) error {
	if len(units) == 0 {
		return nil
	}
	return o.sink.Append(units)
}

// WriteCodePoint encodes cp and forwards it.
func (o *Output[U]) WriteCodePoint(cp textcore.CodePoint) error {
	units, ok := o.codec.Encode(o.scratch[:0], cp)
	if !ok {
		return errors.Unencodable(errors.PhaseConvert, o.codec.Name(), uint32(cp))
	}
	o.scratch = units
	return o.sink.Append(units)
}

// WriteString transcodes a UTF-8 string into the output code page and
// forwards it as one span. With a UTF-8 output the bytes are forwarded
// unchanged, without validation.
func (o *Output[U]) WriteString(s string) error {
	if any(o.codec) == any(codepage.UTF8) {
		if units, ok := any([]byte(s)).([]U); ok {
			return o.Append(units)
		}
	}

	buf := o.scratch[:0]
	it := codepoint.New(codepage.UTF8, []byte(s))
	for !it.Done() {
		cp, err := it.Current()
		if err != nil {
			return err
		}
		units, ok := o.codec.Encode(buf, cp)
		if !ok {
			return errors.Unencodable(errors.PhaseConvert, o.codec.Name(), uint32(cp))
		}
		buf = units
		_ = it.Next()
	}
	o.scratch = buf
	return o.Append(buf)
}
