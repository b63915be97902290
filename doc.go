// Package textcore provides an encoding-agnostic text engine.
//
// The engine decodes raw encoded buffers into abstract code points, converts
// values to text, interpolates them into templated format strings and
// transcodes text between code pages. It is a library consumed by higher-level
// text I/O, not an application.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	textcore/          Root package with the Codec capability and shared types
//	├── codepage/      Concrete codecs and the runtime dispatch table
//	├── codepoint/     Lazy code point iteration over encoded buffers
//	├── numfmt/        Integer and legacy floating point converters
//	├── format/        Template scanner, value converters, sinks and driver
//	├── transcoder/    Code page to code page conversion
//	├── textio/        Buffered text readers and writers
//	├── canon/         Component Model string lift/lower over WASM memory
//	├── errors/        Structured error types
//	└── cmd/textfmt/   Command line front end
//
// # Quick Start
//
// Format a template:
//
//	s, err := format.String("${0}, ${1}, ${3:x}, ${2}", 1, 2.5, -3, 18)
//	// s == "1, 2.50000, 12, -3"
//
// Transcode between code pages:
//
//	out, err := transcoder.EncodeTo(src, codepage.UTF8, codepage.UTF16)
//
// # Codecs
//
// A codec is parameterized by its code unit type (byte, uint16 or uint32).
// Codecs whose unit type is known at compile time are passed as Codec[U]
// values and used through generic functions. When the encoding is chosen at
// run time, codepage.Lookup returns a byte-oriented Codec[byte] keyed by an
// encoding identifier.
//
// # Thread Safety
//
// Codecs are immutable and safe for concurrent use. Iterators and parsers hold
// per-call state and must be used by a single goroutine.
package textcore
