// Package semver provides a semantic version value type with two precision
// levels, together with its parsing, formatting, ordering, and serialization
// contract.
//
// # Overview
//
// A version is MAJOR.MINOR with an optional BUGFIX component, optionally
// prefixed with a "v" or "V" marker:
//
//   - 0.2
//   - v1.2
//   - 1.23.4
//   - v0.5.6
//
// The marker is discarded during parsing; whether re-emitted output carries
// it is always the caller's explicit choice (String vs Prefixed). Absence of
// the bugfix component is semantically distinct from an explicit zero: an
// abridged version never renders a third component, a full version always
// does, even when it is zero.
//
// # Parsing
//
// Parse requires the grammar to match the entire input:
//
//	v, err := semver.Parse("v1.2.3")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3
//
// ParsePrefix recognizes the grammar at the start of the input and reports
// the number of bytes consumed, so the grammar can be embedded within larger
// parses:
//
//	v, n, err := semver.ParsePrefix("1.2.3-rc1")
//	// v = 1.2.3, n = 5, err = nil
//
// Both entry points are deterministic: for a given input the outcome is
// always the same, and there is no backtracking ambiguity. Parsing allocates
// no shared state, so concurrent use needs no coordination.
//
// # Ordering vs Identity
//
// Compare defines a total order, lexicographic over (Major, Minor,
// bugfix-or-zero). Under this order Abridged(1, 0) and New(1, 0, 0) compare
// equal even though they format differently. Equals is the structural
// identity comparison and keeps them distinct, matching the distinct
// formatting. Callers that key caches by version should use Equals (or the
// Version value itself as a map key); callers that sort should use Compare.
//
// # Error Handling
//
// All parse failures are *ParseError values wrapping one of the error kinds:
//
//   - ErrMalformedGrammar: no major.minor core at the required position
//   - ErrComponentOverflow: a component exceeds the uint64 range
//   - ErrTrailingInput: full-string Parse found unconsumed characters
//
// The error carries the offending byte offset and unparsed remainder for
// diagnostics; the package itself produces no user-facing message text.
//
// For constant initialization, use MustParse which panics on error:
//
//	var MinVersion = semver.MustParse("1.0")
//
// # Serialization
//
// Version implements encoding.TextMarshaler/TextUnmarshaler (picked up by
// encoding/json) and yaml.Marshaler/Unmarshaler for gopkg.in/yaml.v3, always
// in the non-prefixed String form. The Prefixed wrapper type serializes with
// the "v" marker for documents that standardize on that convention:
//
//	type Release struct {
//	    Version semver.Prefixed `json:"version" yaml:"version"`
//	}
//
// # Semantic Versioning Compatibility
//
// This package implements a subset of semantic versioning:
//
// Supported:
//   - Major.Minor and Major.Minor.Bugfix forms
//   - Optional "v"/"V" prefix
//   - Numeric components up to the uint64 range, leading zeroes tolerated
//
// Not supported:
//   - Prerelease identifiers (e.g., "1.2.3-alpha")
//   - Build metadata (e.g., "1.2.3+build.123")
//   - Version ranges or constraint operators
package semver
