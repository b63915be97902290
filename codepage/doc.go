// Package codepage provides concrete codecs and the runtime dispatch table.
//
// Codecs whose unit type is known at compile time are exposed as typed
// variables:
//
//	UTF8      Codec[byte]    variable width, 1..4 units
//	UTF16     Codec[uint16]  variable width, 1..2 units
//	UTF32     Codec[uint32]  fixed width, one unit per code point
//	ASCII     Codec[byte]    fixed width
//	Latin1    Codec[byte]    fixed width, ISO 8859-1
//
// Multi-byte unit codecs also have byte-oriented forms with an explicit byte
// order (UTF16LE, UTF16BE, UTF32LE, UTF32BE). In a byte-oriented form one
// code unit of the scheme spans several buffer elements, so a rejected
// position reports the unit size in Result.Width.
//
// When the encoding is chosen at run time, Lookup and LookupName return the
// byte-oriented codec for an identifier:
//
//	c, err := codepage.LookupName("windows-1252")
package codepage
