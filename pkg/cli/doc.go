// Package cli implements the command-line interface for the semverctl tool.
//
// # Overview
//
// semverctl parses, compares, and sorts semantic version tokens of the form
// major.minor[.bugfix], optionally prefixed with "v". It is a thin adapter
// over pkg/semver: every command parses its tokens through the same grammar
// and renders results through pkg/serializer.
//
// # Commands
//
// parse - Parse tokens into their structured form:
//
//	semverctl parse TOKEN [TOKEN...] [--prefixed] [--output FILE] [--format yaml|json|table]
//
// compare - Compare two versions:
//
//	semverctl compare A B
//
// Reports -1/0/1 and the matching relation word. A missing bugfix compares
// as zero, so "1.0" and "1.0.0" are equal for ordering.
//
// sort - Sort versions ascending:
//
//	semverctl sort [TOKEN...] [--input FILE|-] [--reverse]
//
// latest - Print the highest version:
//
//	semverctl latest [TOKEN...] [--input FILE|-]
//
// # Global Flags
//
//	--output, -o    Output file path (default: stdout)
//	--format, -t    Output format: yaml, json, table (default: yaml)
//	--log-level     Logging verbosity (debug, info, warn, error)
//	--help, -h      Show command help
//	--version, -v   Show version information
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid token, invalid arguments, execution failure)
//
// A rejected token always produces a message naming the token and the
// expected grammar, e.g.:
//
//	[INVALID_REQUEST] invalid version "1.2.3.4" (expected major.minor[.bugfix], optionally prefixed with "v"): parsing "1.2.3.4" at byte 5: unexpected trailing characters after version
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/semver - version grammar, ordering, and serialization contract
//   - pkg/serializer - output formatting and input readers
//   - pkg/errors - structured user-facing error classification
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/semver/pkg/cli.version=1.0.0'"
package cli
