package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseFormat    Phase = "format"    // template scanning and driving
	PhaseConvert   Phase = "convert"   // value to text conversion
	PhaseDecode    Phase = "decode"    // units to code points
	PhaseEncode    Phase = "encode"    // code points to units
	PhaseTranscode Phase = "transcode" // code page to code page
	PhaseIO        Phase = "io"        // text stream helpers
	PhaseLift      Phase = "lift"      // WASM memory to Go
	PhaseLower     Phase = "lower"     // Go to WASM memory
	PhaseConfig    Phase = "config"    // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindFormat         Kind = "format"
	KindEncodingFailed Kind = "encoding_failed"
	KindInvariant      Kind = "invariant"
	KindNotFound       Kind = "not_found"
	KindUnsupported    Kind = "unsupported"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindAllocation     Kind = "allocation"
	KindInvalidInput   Kind = "invalid_input"
)

// Sentinels matching a Kind in any Phase.
var (
	ErrFormat         = &Error{Kind: KindFormat}
	ErrEncodingFailed = &Error{Kind: KindEncodingFailed}
	ErrInvariant      = &Error{Kind: KindInvariant}
	ErrNotFound       = &Error{Kind: KindNotFound}
)

// Error is the structured error type used throughout the engine
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Codec  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.Codec != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Codec != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", codec ")
			b.WriteString(e.Codec)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("codec ")
			b.WriteString(e.Codec)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Codec != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Codec sets the codec name
func (b *Builder) Codec(name string) *Builder {
	b.err.Codec = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Format creates a format error for malformed templates, options or arguments
func Format(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFormat,
		Detail: detail,
	}
}

// EncodingFailed creates a strict-policy codec failure at a unit offset
func EncodingFailed(phase Phase, codec string, offset int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEncodingFailed,
		Codec:  codec,
		Detail: fmt.Sprintf("Encoding failed at unit %d.", offset),
		Value:  offset,
	}
}

// Unencodable creates a failure to represent a code point in a codec
func Unencodable(phase Phase, codec string, cp uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEncodingFailed,
		Codec:  codec,
		Detail: fmt.Sprintf("Encoding failed: U+%04X is not representable.", cp),
		Value:  cp,
	}
}

// Invariant creates an invariant violation for programming errors
func Invariant(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvariant,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Value:  name,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
