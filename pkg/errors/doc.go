// Package errors provides structured error types with classification codes
// for consistent error handling and reporting across the semver tooling.
//
// The CLI layer wraps parse failures from pkg/semver into StructuredError
// values so user-facing output carries both the offending token and a stable
// machine-readable code, while errors.Is/As still reach the underlying
// semver.ParseError.
package errors
