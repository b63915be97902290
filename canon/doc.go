// Package canon moves strings across the WebAssembly Component Model
// boundary.
//
// Strings live in guest linear memory as a pointer and a length in one of
// three encodings:
//
//	Encoding        length counts     alignment
//	───────────────────────────────────────────
//	UTF8            bytes             1
//	UTF16           16-bit units      2
//	Latin1UTF16     bytes or units    2
//
// Latin1UTF16 stores strings that fit in ISO-8859-1 as one byte per code
// point and everything else as UTF-16; the UTF-16 form sets bit 31 of the
// length (UTF16Tag).
//
// LiftString reads guest memory into a Go string and LowerString allocates
// guest memory through the guest's realloc export and writes into it. Both
// convert through the transcoder package, so ill-formed guest text and
// unencodable host text are reported as encoding_failed errors.
package canon
