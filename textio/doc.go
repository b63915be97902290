// Package textio reads and writes encoded text over byte streams.
//
// Reader decodes one code point at a time from a buffered io.Reader, keeping
// the original units of every code point. Writer formats templates straight
// into a buffered io.Writer and terminates lines with the platform newline.
//
// Neither type owns the wrapped stream; closing it stays with the caller.
package textio
