package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

// argTypes maps the type prefix of a positional argument ("u8:255") to its WIT type.
var argTypes = map[string]wit.Type{
	"bool":   wit.Bool{},
	"u8":     wit.U8{},
	"s8":     wit.S8{},
	"u16":    wit.U16{},
	"s16":    wit.S16{},
	"u32":    wit.U32{},
	"s32":    wit.S32{},
	"u64":    wit.U64{},
	"s64":    wit.S64{},
	"f32":    wit.F32{},
	"f64":    wit.F64{},
	"char":   wit.Char{},
	"string": wit.String{},
}

// parseArgs parses positional arguments. Untyped arguments are strings.
func parseArgs(raw []string) ([]any, error) {
	args := make([]any, 0, len(raw))
	for i, s := range raw {
		v, err := parseTypedArg(s)
		if err != nil {
			if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 {
				e.Path = []string{"arg[" + strconv.Itoa(i) + "]"}
			}
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

func parseTypedArg(s string) (any, error) {
	prefix, value, ok := strings.Cut(s, ":")
	if !ok {
		return s, nil
	}
	t, known := argTypes[prefix]
	if !known {
		return s, nil
	}
	return convertArg(value, t)
}

// convertArg converts value to the Go type the formatter expects for t.
func convertArg(value string, t wit.Type) (any, error) {
	var (
		v   any
		err error
	)
	switch t.(type) {
	case wit.String:
		return value, nil
	case wit.Char:
		if utf8.RuneCountInString(value) != 1 {
			return nil, argError(value, t, "expected a single character")
		}
		r, _ := utf8.DecodeRuneInString(value)
		return textcore.CodePoint(r), nil
	case wit.Bool:
		v, err = strconv.ParseBool(value)
	case wit.U8:
		var n uint64
		n, err = strconv.ParseUint(value, 10, 8)
		v = uint8(n)
	case wit.S8:
		var n int64
		n, err = strconv.ParseInt(value, 10, 8)
		v = int8(n)
	case wit.U16:
		var n uint64
		n, err = strconv.ParseUint(value, 10, 16)
		v = uint16(n)
	case wit.S16:
		var n int64
		n, err = strconv.ParseInt(value, 10, 16)
		v = int16(n)
	case wit.U32:
		var n uint64
		n, err = strconv.ParseUint(value, 10, 32)
		v = uint32(n)
	case wit.S32:
		var n int64
		n, err = strconv.ParseInt(value, 10, 32)
		v = int32(n)
	case wit.U64:
		v, err = strconv.ParseUint(value, 10, 64)
	case wit.S64:
		v, err = strconv.ParseInt(value, 10, 64)
	case wit.F32:
		var f float64
		f, err = strconv.ParseFloat(value, 32)
		v = float32(f)
	case wit.F64:
		v, err = strconv.ParseFloat(value, 64)
	default:
		return nil, errors.Unsupported(errors.PhaseConfig, witTypeStr(t))
	}
	if err != nil {
		return nil, argError(value, t, err.Error())
	}
	return v, nil
}

func argError(value string, t wit.Type, detail string) error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		GoType(witTypeStr(t)).
		Value(value).
		Detail("%s", detail).
		Build()
}

func witTypeStr(t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	default:
		return fmt.Sprintf("%T", t)
	}
}

// parseJSONArgs decodes a JSON array of arguments. Integral numbers
// become int64, other numbers float64.
func parseJSONArgs(s string) ([]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("args").
			Cause(err).
			Detail("failed to parse JSON arguments").
			Build()
	}

	args := make([]any, len(raw))
	for i, v := range raw {
		n, ok := v.(json.Number)
		if !ok {
			args[i] = v
			continue
		}
		if iv, err := n.Int64(); err == nil {
			args[i] = iv
			continue
		}
		fv, err := n.Float64()
		if err != nil {
			return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path("args", "["+strconv.Itoa(i)+"]").
				Value(n.String()).
				Cause(err).
				Detail("invalid number").
				Build()
		}
		args[i] = fv
	}
	return args, nil
}
