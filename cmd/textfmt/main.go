package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/textcore"
	"github.com/wippyai/textcore/codepage"
	"github.com/wippyai/textcore/errors"
	"github.com/wippyai/textcore/format"
	"github.com/wippyai/textcore/textio"
	"github.com/wippyai/textcore/transcoder"
)

type options struct {
	template   string
	argsJSON   string
	input      string
	from       string
	to         string
	configPath string
	positional []string
	replace    bool
}

func main() {
	var (
		template    = flag.String("format", "", "Template to expand (UTF-8), defaults to the first argument")
		argsJSON    = flag.String("args", "", "Arguments as a JSON array")
		input       = flag.String("in", "", "Expand every line of this file as a template")
		from        = flag.String("from", "", "Encoding of the -in file (default UTF-8)")
		to          = flag.String("to", "", "Output encoding (default UTF-8)")
		replace     = flag.Bool("replace", false, "Substitute unencodable text instead of failing")
		configPath  = flag.String("config", "", "Path to TOML config file")
		list        = flag.Bool("list", false, "List supported encodings and exit")
		verbose     = flag.Bool("v", false, "Log formatting and transcoding failures")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fail(err)
		}
		defer func() { _ = logger.Sync() }()
		format.SetLogger(logger)
		transcoder.SetLogger(logger)
	}

	if *list {
		if err := listEncodings(os.Stdout); err != nil {
			fail(err)
		}
		return
	}

	opts := options{
		template:   *template,
		argsJSON:   *argsJSON,
		input:      *input,
		from:       *from,
		to:         *to,
		configPath: *configPath,
		replace:    *replace,
		positional: flag.Args(),
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fail(errors.InvalidInput(errors.PhaseConfig, "interactive mode requires a terminal"))
		}
		cfg, err := loadOptions(opts)
		if err != nil {
			fail(err)
		}
		if err := runInteractive(cfg, opts.template); err != nil {
			fail(err)
		}
		return
	}

	if opts.template == "" && opts.input == "" {
		if len(opts.positional) == 0 {
			fmt.Fprintln(os.Stderr, "Usage: textfmt [-to enc] [-replace] <template> [type:value ...]")
			fmt.Fprintln(os.Stderr, "       textfmt -in <file> [-from enc] [-to enc] [-args '[...]']")
			fmt.Fprintln(os.Stderr, "       textfmt -list")
			fmt.Fprintln(os.Stderr, "       textfmt -i  (interactive mode)")
			os.Exit(1)
		}
		opts.template, opts.positional = opts.positional[0], opts.positional[1:]
	}

	if err := run(opts, os.Stdout); err != nil {
		fail(err)
	}
}

func fail(err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func loadOptions(opts options) (*Config, error) {
	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.from != "" {
		cfg.Encoding.From = opts.from
	}
	if opts.to != "" {
		cfg.Encoding.To = opts.to
	}
	if opts.replace {
		cfg.Replacement.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func collectArgs(opts options) ([]any, error) {
	var args []any
	if opts.argsJSON != "" {
		parsed, err := parseJSONArgs(opts.argsJSON)
		if err != nil {
			return nil, err
		}
		args = parsed
	}
	typed, err := parseArgs(opts.positional)
	if err != nil {
		return nil, err
	}
	return append(args, typed...), nil
}

func run(opts options, stdout io.Writer) error {
	cfg, err := loadOptions(opts)
	if err != nil {
		return err
	}
	args, err := collectArgs(opts)
	if err != nil {
		return err
	}
	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	w := textio.NewWriter(stdout, p.to)
	w.SetFormatter(p.formatter)

	if opts.input == "" {
		if err := p.writeLine(w, []byte(opts.template), codepage.UTF8, args); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return errors.Wrap(errors.PhaseIO, errors.KindNotFound, err, "open input")
	}
	defer f.Close()

	r := textio.NewReader(f, p.from)
	for n := 1; ; n++ {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := p.writeLine(w, line, p.from, args); err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Path = append([]string{opts.input + ":" + strconv.Itoa(n)}, e.Path...)
			}
			return err
		}
	}
	return w.Flush()
}

func listEncodings(out io.Writer) error {
	w := textio.NewWriter(out, codepage.UTF8)
	for _, id := range codepage.IDs() {
		codec, err := codepage.Lookup(id)
		if err != nil {
			return err
		}
		if _, err := w.FormatLine([]byte("${0}\t${1}\tmax ${2} units"), uint8(id), id.String(), codec.MaxWidth()); err != nil {
			return err
		}
	}
	return w.Flush()
}

// pipeline expands UTF-8 or -from encoded templates into the output encoding.
type pipeline struct {
	from        textcore.Codec[byte]
	to          textcore.Codec[byte]
	formatter   *format.Formatter[byte]
	replacement textcore.CodePoint
	replace     bool
}

func newPipeline(cfg *Config) (*pipeline, error) {
	from, err := codepage.ByName(cfg.Encoding.From)
	if err != nil {
		return nil, err
	}
	to, err := codepage.ByName(cfg.Encoding.To)
	if err != nil {
		return nil, err
	}
	syntax, err := cfg.FormatSyntax()
	if err != nil {
		return nil, err
	}
	replacement, err := cfg.ReplacementCodePoint()
	if err != nil {
		return nil, err
	}

	p := &pipeline{
		from:        from,
		to:          to,
		replacement: replacement,
		replace:     cfg.Replacement.Enabled,
	}
	p.formatter = &format.Formatter[byte]{
		Codec:     to,
		Converter: format.ConverterFunc[byte](p.convert),
		Syntax:    syntax,
	}
	return p, nil
}

// encode transcodes src into the output encoding.
func (p *pipeline) encode(src []byte, from textcore.Codec[byte]) ([]byte, error) {
	if p.replace {
		return transcoder.EncodeToWithReplacement(src, from, p.to, p.replacement)
	}
	return transcoder.EncodeTo(src, from, p.to)
}

func (p *pipeline) convert(out *format.Output[byte], arg any, option []byte) error {
	switch v := arg.(type) {
	case bool:
		return out.WriteString(strconv.FormatBool(v))
	case string:
		if p.replace {
			units, err := p.encode([]byte(v), codepage.UTF8)
			if err != nil {
				return err
			}
			return out.Append(units)
		}
	}
	return format.DefaultConverter[byte]{}.Convert(out, arg, option)
}

func (p *pipeline) writeLine(w *textio.Writer, line []byte, from textcore.Codec[byte], args []any) error {
	template, err := p.encode(line, from)
	if err != nil {
		return err
	}
	if err := p.formatter.Write(w, template, args...); err != nil {
		return err
	}
	_, err = w.FormatLine(nil)
	return err
}

// render expands template into the output encoding and returns the
// units together with their UTF-8 rendering.
func (p *pipeline) render(template string, args []any) ([]byte, string, error) {
	encoded, err := p.encode([]byte(template), codepage.UTF8)
	if err != nil {
		return nil, "", err
	}
	units, err := p.formatter.Format(encoded, args...)
	if err != nil {
		return nil, "", err
	}
	text, err := transcoder.EncodeToWithReplacement(units, p.to, codepage.UTF8, textcore.ReplacementChar)
	if err != nil {
		return nil, "", err
	}
	return units, string(text), nil
}
