// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"errors"
	"fmt"
)

// Error kinds for version parsing failures. Every parse failure is reported
// as a *ParseError wrapping one of these, so errors.Is works against them.
var (
	// ErrMalformedGrammar indicates the input does not match the
	// major.minor[.bugfix] grammar at the required position: a missing
	// separator, an empty digit run, or a non-digit where digits are required.
	ErrMalformedGrammar = errors.New("input does not match major.minor[.bugfix] grammar")

	// ErrComponentOverflow indicates a numeric component whose digit run
	// exceeds the representable uint64 range. Overflow is rejected, never
	// wrapped or truncated.
	ErrComponentOverflow = errors.New("version component exceeds uint64 range")

	// ErrTrailingInput indicates recognized grammar followed by unconsumed
	// characters. Only the full-string Parse entry point reports it;
	// ParsePrefix returns the consumed length instead.
	ErrTrailingInput = errors.New("unexpected trailing characters after version")
)

// ParseError describes a version parse failure with positional context.
// Offset is the byte position in Input at which the failure was detected.
type ParseError struct {
	Input  string
	Offset int
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q at byte %d: %v", e.Input, e.Offset, e.Err)
}

// Unwrap returns the error kind for errors.Is and errors.As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Remainder returns the unparsed tail of the input, starting at Offset.
func (e *ParseError) Remainder() string {
	if e.Offset < 0 || e.Offset > len(e.Input) {
		return ""
	}
	return e.Input[e.Offset:]
}

func newParseError(input string, offset int, kind error) *ParseError {
	return &ParseError{
		Input:  input,
		Offset: offset,
		Err:    kind,
	}
}
