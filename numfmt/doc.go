// Package numfmt converts numbers to sequences of code points.
//
// Integers are rendered in any base between 2 and 36, selected by a short
// option string:
//
//	b      binary
//	o      octal
//	d, i   decimal (default)
//	x      lowercase hexadecimal
//	X      uppercase hexadecimal
//
// Floating point values go through a legacy fixed-point converter which
// prints the truncated integer part followed by five fractional digits. It
// does not round, and it drops the sign of values between -1 and 0. Both
// behaviors are kept for compatibility with existing output:
//
//	2.5   -> "2.50000"
//	2.0   -> "2"
//	2.05  -> "2.4999"
//
// Output is written code point by code point to a Writer, so the same
// converters serve every code page.
package numfmt
