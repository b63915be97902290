package format

import (
	"math"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/errors"
	"github.com/wippyai/textcore/numfmt"
)

// Syntax holds the four tokens of the template language.
type Syntax struct {
	Prefix     textcore.CodePoint
	LeftQuote  textcore.CodePoint
	OptionSep  textcore.CodePoint
	RightQuote textcore.CodePoint
}

// DefaultSyntax is `${index:option}` with `$$` as the escape.
var DefaultSyntax = Syntax{
	Prefix:     '$',
	LeftQuote:  '{',
	OptionSep:  ':',
	RightQuote: '}',
}

// Mode is the argument indexing mode of a template.
type Mode uint8

const (
	ModeUnset Mode = iota
	ModeExplicit
	ModeAuto
)

func (m Mode) String() string {
	switch m {
	case ModeUnset:
		return "unset"
	case ModeExplicit:
		return "explicit"
	case ModeAuto:
		return "auto"
	}
	return "unknown"
}

// State is the indexing state of one template walk.
type State struct {
	Mode     Mode
	NextAuto int
}

// Info describes one placeholder.
// Option views the template and is empty when no option was given.
type Info[U textcore.Unit] struct {
	Option []U
	Index  int
}

// Piece is one step of a template walk: either a literal span or a
// placeholder.
type Piece[U textcore.Unit] struct {
	Literal     []U
	Info        Info[U]
	Placeholder bool
}

// Parser scans a template into pieces.
// A Parser is single use and must not be shared between goroutines.
type Parser[U textcore.Unit] struct {
	codec  textcore.Codec[U]
	rest   []U
	syntax Syntax
	state  State
	offset int
}

// NewParser returns a parser over template using DefaultSyntax.
func NewParser[U textcore.Unit](codec textcore.Codec[U], template []U) *Parser[U] {
	return NewParserWithSyntax(codec, template, DefaultSyntax)
}

// NewParserWithSyntax returns a parser over template using syntax.
func NewParserWithSyntax[U textcore.Unit](codec textcore.Codec[U], template []U, syntax Syntax) *Parser[U] {
	return &Parser[U]{codec: codec, rest: template, syntax: syntax}
}

// State returns the current indexing state.
func (p *Parser[U]) State() State { return p.state }

// Offset returns the number of template units consumed.
func (p *Parser[U]) Offset() int { return p.offset }

// Next returns the next piece of the template. It reports false once the
// template is exhausted.
func (p *Parser[U]) Next() (Piece[U], bool, error) {
	if len(p.rest) == 0 {
		return Piece[U]{}, false, nil
	}

	isPrefix, width := p.beginWith(p.rest, p.syntax.Prefix)
	if !isPrefix {
		n := width + p.skipUntil(p.rest[width:], p.syntax.Prefix)
		lit := p.rest[:n]
		p.advance(n)
		return Piece[U]{Literal: lit}, true, nil
	}

	rest := p.rest[width:]
	if escaped, w := p.beginWith(rest, p.syntax.Prefix); escaped {
		lit := rest[:w]
		p.advance(width + w)
		return Piece[U]{Literal: lit}, true, nil
	}

	info, n, err := p.parseInfo(rest)
	if err != nil {
		return Piece[U]{}, false, err
	}
	p.advance(width + n)
	return Piece[U]{Info: info, Placeholder: true}, true, nil
}

func (p *Parser[U]) advance(n int) {
	p.rest = p.rest[n:]
	p.offset += n
}

// beginWith reports whether buf starts with cp, and the width of the code
// point at the start of buf. Undecodable units never match.
func (p *Parser[U]) beginWith(buf []U, cp textcore.CodePoint) (bool, int) {
	if len(buf) == 0 {
		return false, 0
	}
	r := p.codec.Decode(buf)
	if r.Outcome != textcore.Accept {
		return false, min(max(1, r.Width), len(buf))
	}
	if !p.codec.VariableWidth() {
		return r.CodePoint == cp, 1
	}
	return r.CodePoint == cp, r.Width
}

// skipUntil returns the number of units before the first cp in buf.
func (p *Parser[U]) skipUntil(buf []U, cp textcore.CodePoint) int {
	n := 0
	for n < len(buf) {
		found, w := p.beginWith(buf[n:], cp)
		if found {
			break
		}
		n += w
	}
	return n
}

// parseInfo parses a placeholder body starting at the left quote and returns
// the number of units consumed, including the right quote.
func (p *Parser[U]) parseInfo(buf []U) (Info[U], int, error) {
	var info Info[U]
	start := p.offset

	ok, pos := p.beginWith(buf, p.syntax.LeftQuote)
	if !ok {
		return info, 0, p.invalid(start)
	}

	indexStart := pos
	indexEnd := 0
	hasOption := false
	for {
		if pos >= len(buf) {
			return info, 0, p.invalid(start)
		}
		if sep, w := p.beginWith(buf[pos:], p.syntax.OptionSep); sep {
			indexEnd = pos
			pos += w
			hasOption = true
			break
		}
		quote, w := p.beginWith(buf[pos:], p.syntax.RightQuote)
		if quote {
			indexEnd = pos
			pos += w
			break
		}
		pos += w
	}

	if indexEnd == indexStart {
		if p.state.Mode == ModeExplicit {
			return info, 0, p.invalid(start)
		}
		p.state.Mode = ModeAuto
		info.Index = p.state.NextAuto
		p.state.NextAuto++
	} else {
		if p.state.Mode == ModeAuto {
			return info, 0, p.invalid(start)
		}
		p.state.Mode = ModeExplicit

		span := buf[indexStart:indexEnd]
		v, n, err := numfmt.ParseDigits(p.codec, span, 10)
		if err != nil || n != len(span) || v > math.MaxInt {
			return info, 0, p.invalid(start)
		}
		info.Index = int(v)
	}

	if hasOption {
		optionStart := pos
		for {
			if pos >= len(buf) {
				return info, 0, p.invalid(start)
			}
			quote, w := p.beginWith(buf[pos:], p.syntax.RightQuote)
			if quote {
				info.Option = buf[optionStart:pos]
				pos += w
				break
			}
			pos += w
		}
	}

	return info, pos, nil
}

func (p *Parser[U]) invalid(offset int) error {
	return errors.New(errors.PhaseFormat, errors.KindFormat).
		Codec(p.codec.Name()).
		Value(offset).
		Detail("Invalid format string.").
		Build()
}
