package main

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepage"
	"github.com/wippyai/textcore/errors"
	"github.com/wippyai/textcore/format"
	"github.com/wippyai/textcore/numfmt"
)

// Config is the optional TOML configuration of textfmt.
//
//	[encoding]
//	from = "windows-1252"
//	to = "UTF-16LE"
//
//	[replacement]
//	enabled = true
//	code_point = "U+FFFD"
//
//	[syntax]
//	prefix = "%"
//	left_quote = "("
//	option_sep = "|"
//	right_quote = ")"
type Config struct {
	Encoding    EncodingConfig    `toml:"encoding"`
	Replacement ReplacementConfig `toml:"replacement"`
	Syntax      SyntaxConfig      `toml:"syntax"`
}

type EncodingConfig struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

type ReplacementConfig struct {
	CodePoint string `toml:"code_point"`
	Enabled   bool   `toml:"enabled"`
}

type SyntaxConfig struct {
	Prefix     string `toml:"prefix"`
	LeftQuote  string `toml:"left_quote"`
	OptionSep  string `toml:"option_sep"`
	RightQuote string `toml:"right_quote"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Encoding:    EncodingConfig{From: "UTF-8", To: "UTF-8"},
		Replacement: ReplacementConfig{CodePoint: "U+FFFD"},
		Syntax: SyntaxConfig{
			Prefix:     "$",
			LeftQuote:  "{",
			OptionSep:  ":",
			RightQuote: "}",
		},
	}
}

// LoadConfig reads path over the defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindNotFound).
			Path(path).
			Cause(err).
			Detail("failed to read config").
			Build()
	}
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path(path).
			Cause(err).
			Detail("failed to parse config").
			Build()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that encodings resolve and tokens are single code points.
func (c *Config) Validate() error {
	for _, name := range []string{c.Encoding.From, c.Encoding.To} {
		if _, err := codepage.LookupName(name); err != nil {
			return err
		}
	}
	if _, err := c.FormatSyntax(); err != nil {
		return err
	}
	if _, err := c.ReplacementCodePoint(); err != nil {
		return err
	}
	return nil
}

// FormatSyntax converts the syntax section into template tokens.
func (c *Config) FormatSyntax() (format.Syntax, error) {
	var s format.Syntax
	fields := []struct {
		name  string
		value string
		dst   *textcore.CodePoint
	}{
		{"prefix", c.Syntax.Prefix, &s.Prefix},
		{"left_quote", c.Syntax.LeftQuote, &s.LeftQuote},
		{"option_sep", c.Syntax.OptionSep, &s.OptionSep},
		{"right_quote", c.Syntax.RightQuote, &s.RightQuote},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) != 1 {
			return format.Syntax{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Path("syntax", f.name).
				Value(f.value).
				Detail("token must be exactly one character, got %q", f.value).
				Build()
		}
		r, _ := utf8.DecodeRuneInString(f.value)
		*f.dst = textcore.CodePoint(r)
	}
	return s, nil
}

// ReplacementCodePoint parses the replacement as "U+XXXX" or a single character.
func (c *Config) ReplacementCodePoint() (textcore.CodePoint, error) {
	return parseCodePoint(c.Replacement.CodePoint)
}

func parseCodePoint(s string) (textcore.CodePoint, error) {
	invalid := errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Path("replacement", "code_point").
		Value(s).
		Detail("expected U+XXXX or a single character, got %q", s).
		Build()

	if hex, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok && hex != "" {
		v, n, err := numfmt.ParseDigits(codepage.UTF8, []byte(hex), 16)
		if err != nil || n != len(hex) || !textcore.Valid(textcore.CodePoint(v)) || v > uint64(textcore.MaxCodePoint) {
			return 0, invalid
		}
		return textcore.CodePoint(v), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r != utf8.RuneError {
			return textcore.CodePoint(r), nil
		}
	}
	return 0, invalid
}
