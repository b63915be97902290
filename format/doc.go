// Package format interpolates arguments into templates over any code page.
//
// # Template Syntax
//
// Literal text is copied to the output unchanged. Placeholders start with a
// prefix token and are enclosed in quotes:
//
//	$$              a literal '$', consumes no argument
//	${}             next argument (auto indexing)
//	${2}            argument 2 (explicit indexing, 0-based)
//	${1:x}          argument 1 with option text "x"
//	${:X}           next argument with option text "X"
//
// Explicit and auto indexing cannot be mixed within one template.
// The four tokens can be replaced through Syntax.
//
// # Converters
//
// A Converter turns one argument into text. DefaultConverter handles
// integers (options b, o, d, i, x, X), floats (legacy five digit rendering, no
// options), strings and unit slices (options ignored), code points and
// fmt.Stringer values. SprintConverter renders anything through fmt.Sprint.
//
// # Sinks
//
// Output goes to a Sink. Counter only counts units and backs Size; Buffer
// collects units and backs Format. Any type with an Append method works,
// including streaming writers.
//
// # Usage
//
//	s, err := format.String("${0}, ${1:x}", 1, 255) // "1, ff"
//
//	f := format.New(codepage.UTF16)
//	units, err := f.Format(template, args...)
//
// A Parser holds the indexing state of one template walk. Create a new one for
// every top-level call; a Formatter does this internally and is safe for
// concurrent use.
package format
