package textcore

// CodePoint is an abstract code point value in a codec's domain.
// It is usually a Unicode scalar value, but codecs are free to define
// their own domain.
type CodePoint uint32

// ReplacementChar is the default code point substituted for undecodable input.
const ReplacementChar CodePoint = 0xFFFD

// MaxCodePoint is the largest Unicode scalar value.
const MaxCodePoint CodePoint = 0x10FFFF

// Unit is the set of code unit types a codec may operate on.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Outcome is the result state of decoding one position of a buffer.
type Outcome uint8

const (
	// Accept means a code point was decoded.
	Accept Outcome = iota
	// Incomplete means the buffer ends in the middle of a code point.
	// It is only meaningful while a writer is still appending to the buffer.
	Incomplete
	// Reject means the units at the position are ill-formed.
	Reject
)

func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accept"
	case Incomplete:
		return "incomplete"
	case Reject:
		return "reject"
	}
	return "unknown"
}

// Result is the outcome of a single decode.
// CodePoint and Width are only valid when Outcome is Accept.
type Result struct {
	CodePoint CodePoint
	Width     int
	Outcome   Outcome
}

// Accepted builds an Accept result.
func Accepted(cp CodePoint, width int) Result {
	return Result{CodePoint: cp, Width: width, Outcome: Accept}
}

// Codec is the capability contract every code page implements.
type Codec[U Unit] interface {
	// Name returns the canonical name of the code page.
	Name() string

	// VariableWidth reports whether a code point may span more than one unit.
	VariableWidth() bool

	// MaxWidth returns the maximum number of units a single code point uses.
	MaxWidth() int

	// Decode decodes the code point at the start of src.
	// An empty src yields Incomplete.
	Decode(src []U) Result

	// Encode appends the encoding of cp to dst.
	// It reports false and returns dst unchanged if cp is not representable.
	Encode(dst []U, cp CodePoint) ([]U, bool)
}

// Valid reports whether cp is a Unicode scalar value.
func Valid(cp CodePoint) bool {
	return cp <= MaxCodePoint && (cp < 0xD800 || cp > 0xDFFF)
}
