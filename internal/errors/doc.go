// Package mplerrors defines structured error types for the mplcalc CLI
// and the typed panic values the core library raises for fatal
// conditions, allowing a clear distinction between error classes
// (configuration, parse, fatal-library) and carrying the underlying
// cause where one exists.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that carry a cause implement Unwrap() to support errors.Is/errors.As.
package mplerrors
