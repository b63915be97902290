// Package errors provides structured error types for the text engine.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: placeholder path, Go type, codec name and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindFormat).
//		Path("arg[3]").
//		GoType("bool").
//		Detail("Unformattable data.").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Format(errors.PhaseFormat, "Index out of range.")
//	err := errors.EncodingFailed(errors.PhaseDecode, "UTF-8", 12)
//
// The taxonomy has three core kinds: KindFormat for malformed templates and
// options, KindEncodingFailed for strict codec failures and KindInvariant for
// programming errors. Match them regardless of phase with the sentinels:
//
//	if errors.Is(err, errors.ErrFormat) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
