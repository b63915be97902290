// Package transcoder converts encoded text between code pages.
//
// # Overview
//
// Transcoding decodes the source buffer one code point at a time and
// re-encodes every code point into the destination code page:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ []S ──[from.Decode]──▶ code points ──[to.Encode]──▶ []D       │
//	└──────────────────────────────────────────────────────────────┘
//
// # Policies
//
//	EncodeTo                  strict: the first ill-formed source position
//	                          or unencodable code point aborts the call
//	EncodeToWithReplacement   ill-formed source positions decode as the
//	                          replacement code point; unencodable code points
//	                          are written as the replacement, then '?'
//
// Neither variant returns partial output on error.
//
// # Runtime Dispatch
//
// When code pages are chosen at run time, Transcode and TranscodeName look
// them up in the codepage registry:
//
//	out, err := transcoder.TranscodeName("windows-1252", src, "UTF-8")
//
// # Streaming
//
// Transformer adapts a pair of byte codecs to golang.org/x/text/transform,
// so transcoding composes with transform.NewReader, transform.Chain and the
// rest of the x/text ecosystem.
package transcoder
