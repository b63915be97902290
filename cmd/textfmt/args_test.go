package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
)

func TestParseTypedArg(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"plain", "plain"},
		{"key:value", "key:value"},
		{"string:u8:1", "u8:1"},
		{"bool:true", true},
		{"u8:255", uint8(255)},
		{"s8:-128", int8(-128)},
		{"u16:65535", uint16(65535)},
		{"s16:-2", int16(-2)},
		{"u32:7", uint32(7)},
		{"s32:-7", int32(-7)},
		{"u64:18446744073709551615", uint64(18446744073709551615)},
		{"s64:-9223372036854775808", int64(-9223372036854775808)},
		{"f32:2.5", float32(2.5)},
		{"f64:-0.5", -0.5},
		{"char:测", textcore.CodePoint(0x6D4B)},
		{"string:", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTypedArg(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		in     []string
		goType string
	}{
		{[]string{"u8:256"}, "u8"},
		{[]string{"ok", "s8:-129"}, "s8"},
		{[]string{"char:ab"}, "char"},
		{[]string{"bool:maybe"}, "bool"},
		{[]string{"f64:x"}, "f64"},
	}

	for _, tt := range tests {
		t.Run(tt.goType, func(t *testing.T) {
			_, err := parseArgs(tt.in)
			require.Error(t, err)
			e, ok := err.(*errors.Error)
			require.True(t, ok)
			assert.Equal(t, tt.goType, e.GoType)
			assert.Equal(t, []string{"arg[" + string(rune('0'+len(tt.in)-1)) + "]"}, e.Path)
		})
	}
}

func TestConvertArg_Unsupported(t *testing.T) {
	_, err := convertArg("x", &wit.TypeDef{})
	require.Error(t, err)
	assert.Equal(t, errors.KindUnsupported, err.(*errors.Error).Kind)
}

func TestParseJSONArgs(t *testing.T) {
	args, err := parseJSONArgs(`[1, -2.5, "x", 9007199254740993, 1e3, true]`)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), -2.5, "x", int64(9007199254740993), 1000.0, true}, args)
}

func TestParseJSONArgs_Errors(t *testing.T) {
	for _, in := range []string{`{"a":1}`, `[1,`, `"x"`} {
		t.Run(in, func(t *testing.T) {
			_, err := parseJSONArgs(in)
			require.Error(t, err)
			assert.Equal(t, errors.KindInvalidInput, err.(*errors.Error).Kind)
		})
	}
}
