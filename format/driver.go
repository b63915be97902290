package format

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepage"
	"github.com/wippyai/textcore/errors"
)

// Formatter binds a code page, a template syntax and a converter.
// A Formatter holds no per-call state and is safe for concurrent use.
type Formatter[U textcore.Unit] struct {
	Codec     textcore.Codec[U]
	Converter Converter[U]
	Syntax    Syntax
}

// New returns a formatter for codec with DefaultSyntax and DefaultConverter.
func New[U textcore.Unit](codec textcore.Codec[U]) *Formatter[U] {
	return &Formatter[U]{
		Codec:     codec,
		Converter: DefaultConverter[U]{},
		Syntax:    DefaultSyntax,
	}
}

// Write formats template into sink.
// On error the sink holds partial output which callers must discard.
func (f *Formatter[U]) Write(sink Sink[U], template []U, args ...any) error {
	p := NewParserWithSyntax(f.Codec, template, f.Syntax)
	out := NewOutput(f.Codec, sink)

	for {
		piece, ok, err := p.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if !piece.Placeholder {
			if err := out.Append(piece.Literal); err != nil {
				return err
			}
			continue
		}

		idx := piece.Info.Index
		if idx >= len(args) {
			return errors.New(errors.PhaseFormat, errors.KindFormat).
				Path("arg[" + strconv.Itoa(idx) + "]").
				Value(idx).
				Detail("Index out of range.").
				Build()
		}

		if err := f.Converter.Convert(out, args[idx], piece.Info.Option); err != nil {
			if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 {
				e.Path = []string{"arg[" + strconv.Itoa(idx) + "]"}
			}
			Logger().Debug("conversion failed",
				zap.Int("index", idx),
				zap.String("codec", f.Codec.Name()),
				zap.Error(err))
			return err
		}
	}
}

// Size returns the number of units Format would produce.
func (f *Formatter[U]) Size(template []U, args ...any) (int, error) {
	var c Counter[U]
	if err := f.Write(&c, template, args...); err != nil {
		return 0, err
	}
	return c.N, nil
}

// Format returns the formatted units. The result is allocated once at its
// final size, so arguments are converted twice.
func (f *Formatter[U]) Format(template []U, args ...any) ([]U, error) {
	size, err := f.Size(template, args...)
	if err != nil {
		return nil, err
	}
	buf := NewBuffer[U](size)
	if err := f.Write(buf, template, args...); err != nil {
		return nil, err
	}
	return buf.Units(), nil
}

// Write formats template in codec into sink using conv.
func Write[U textcore.Unit](sink Sink[U], codec textcore.Codec[U], conv Converter[U], template []U, args ...any) error {
	f := Formatter[U]{Codec: codec, Converter: conv, Syntax: DefaultSyntax}
	return f.Write(sink, template, args...)
}

// Size returns the number of units template expands to in codec.
func Size[U textcore.Unit](codec textcore.Codec[U], template []U, args ...any) (int, error) {
	return New(codec).Size(template, args...)
}

// Format expands template in codec.
func Format[U textcore.Unit](codec textcore.Codec[U], template []U, args ...any) ([]U, error) {
	return New(codec).Format(template, args...)
}

// String expands a UTF-8 template into a string.
func String(template string, args ...any) (string, error) {
	units, err := New(codepage.UTF8).Format([]byte(template), args...)
	if err != nil {
		return "", err
	}
	return string(units), nil
}
