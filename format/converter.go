package format

import (
	"fmt"
	"reflect"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepoint"
	"github.com/wippyai/textcore/errors"
	"github.com/wippyai/textcore/numfmt"
)

// Converter renders one argument into an output.
// option is the raw option text of the placeholder, possibly empty.
type Converter[U textcore.Unit] interface {
	Convert(out *Output[U], arg any, option []U) error
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc[U textcore.Unit] func(out *Output[U], arg any, option []U) error

func (f ConverterFunc[U]) Convert(out *Output[U], arg any, option []U) error {
	return f(out, arg, option)
}

// DefaultConverter renders integers, floats, strings, unit slices, code
// points and fmt.Stringer values. Anything else is unformattable.
type DefaultConverter[U textcore.Unit] struct{}

func (DefaultConverter[U]) Convert(out *Output[U], arg any, option []U) error {
	switch v := arg.(type) {
	case int:
		return convertInt(out, v, option)
	case int8:
		return convertInt(out, v, option)
	case int16:
		return convertInt(out, v, option)
	case int32:
		return convertInt(out, v, option)
	case int64:
		return convertInt(out, v, option)
	case uint:
		return convertInt(out, v, option)
	case uint8:
		return convertInt(out, v, option)
	case uint16:
		return convertInt(out, v, option)
	case uint32:
		return convertInt(out, v, option)
	case uint64:
		return convertInt(out, v, option)
	case uintptr:
		return convertInt(out, v, option)
	case float32:
		return convertFloat(out, v, option)
	case float64:
		return convertFloat(out, v, option)
	case []U:
		// options are accepted and ignored for text
		return out.Append(v)
	case string:
		return out.WriteString(v)
	case textcore.CodePoint:
		return out.WriteCodePoint(v)
	case fmt.Stringer:
		return out.WriteString(v.String())
	}

	// named types over builtin kinds
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return convertInt(out, rv.Int(), option)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return convertInt(out, rv.Uint(), option)
	case reflect.Float32:
		return convertFloat(out, float32(rv.Float()), option)
	case reflect.Float64:
		return convertFloat(out, rv.Float(), option)
	case reflect.String:
		return out.WriteString(rv.String())
	}

	return errors.New(errors.PhaseConvert, errors.KindFormat).
		GoType(fmt.Sprintf("%T", arg)).
		Detail("Unformattable data.").
		Build()
}

// SprintConverter renders every argument through fmt.Sprint and ignores
// options. Unit slices in the output code page pass through unchanged.
type SprintConverter[U textcore.Unit] struct{}

func (SprintConverter[U]) Convert(out *Output[U], arg any, _ []U) error {
	if v, ok := arg.([]U); ok {
		return out.Append(v)
	}
	return out.WriteString(fmt.Sprint(arg))
}

func convertInt[T numfmt.Integer, U textcore.Unit](out *Output[U], v T, option []U) error {
	spec := numfmt.DefaultIntSpec
	if len(option) > 0 {
		cps, err := decodeOption(out.Codec(), option)
		if err != nil {
			return err
		}
		spec, err = numfmt.ParseIntOptions(*cps)
		putCodePoints(cps)
		if err != nil {
			return err
		}
	}
	return numfmt.WriteInt(out, v, spec)
}

func convertFloat[T numfmt.Float, U textcore.Unit](out *Output[U], v T, option []U) error {
	if len(option) == 0 {
		return numfmt.WriteLegacyFloat(out, v, nil)
	}
	cps, err := decodeOption(out.Codec(), option)
	if err != nil {
		return err
	}
	defer putCodePoints(cps)
	return numfmt.WriteLegacyFloat(out, v, *cps)
}

// decodeOption decodes option text into a pooled buffer.
// The caller returns the buffer with putCodePoints.
func decodeOption[U textcore.Unit](codec textcore.Codec[U], option []U) (*[]textcore.CodePoint, error) {
	cps := getCodePoints()
	it := codepoint.New(codec, option)
	for !it.Done() {
		cp, err := it.Current()
		if err != nil {
			putCodePoints(cps)
			return nil, err
		}
		*cps = append(*cps, cp)
		_ = it.Next()
	}
	return cps, nil
}
