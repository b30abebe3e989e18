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
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a complete version token: the grammar must match the entire
// input, otherwise the parse fails with ErrTrailingInput carrying the offset
// of the first unconsumed byte.
//
// Supported forms: "1.2", "1.2.3", and either with a leading "v" or "V"
// marker ("v1.2", "V1.2.3"). The marker is discarded; re-emitting it is the
// caller's choice via Prefixed. Leading zeroes are tolerated ("0009.008.07"
// parses as 9.8.7). The input is expected to be an already-isolated token;
// surrounding whitespace is not part of the grammar and is rejected.
func Parse(s string) (Version, error) {
	v, n, err := ParsePrefix(s)
	if err != nil {
		return Version{}, err
	}
	if n != len(s) {
		return Version{}, newParseError(s, n, ErrTrailingInput)
	}
	return v, nil
}

// ParsePrefix parses a version at the start of the input and returns the
// parsed Version together with the number of input bytes consumed, so the
// grammar can be embedded within larger parses. Trailing input is not an
// error here; callers needing a full-string match should use Parse.
//
// The parse is deterministic with no backtracking: a "." followed by a digit
// commits the optional bugfix group, a "." not followed by a digit is left
// unconsumed. Overflow inside a committed group is a failure, not a shorter
// success.
func ParsePrefix(s string) (Version, int, error) {
	pos := 0
	if pos < len(s) && (s[pos] == 'v' || s[pos] == 'V') {
		pos++
	}

	major, n, err := scanComponent(s, pos)
	if err != nil {
		return Version{}, 0, err
	}
	pos += n

	if pos >= len(s) || s[pos] != '.' {
		return Version{}, 0, newParseError(s, pos, ErrMalformedGrammar)
	}
	pos++

	minor, n, err := scanComponent(s, pos)
	if err != nil {
		return Version{}, 0, err
	}
	pos += n

	// The bugfix group is committed only by a dot followed by a digit.
	if pos+1 < len(s) && s[pos] == '.' && isDigit(s[pos+1]) {
		pos++
		bugfix, n, err := scanComponent(s, pos)
		if err != nil {
			return Version{}, 0, err
		}
		pos += n
		return New(major, minor, bugfix), pos, nil
	}

	return Abridged(major, minor), pos, nil
}

// MustParse parses a version string and panics if parsing fails.
// Use it only for hardcoded strings, package-level values, or test data;
// for user input or runtime data always use Parse and handle the error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("semver.MustParse: %v", err))
	}
	return v
}

// scanComponent reads a run of ASCII digits starting at offset start and
// returns its uint64 value and length in bytes. An empty run fails with
// ErrMalformedGrammar, a run exceeding the uint64 range with
// ErrComponentOverflow. Both errors carry start as their offset.
func scanComponent(s string, start int) (uint64, int, error) {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == start {
		return 0, 0, newParseError(s, start, ErrMalformedGrammar)
	}

	value, err := strconv.ParseUint(s[start:end], 10, 64)
	if err != nil {
		// Digits-only input can only fail ParseUint on range.
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, 0, newParseError(s, start, ErrComponentOverflow)
		}
		return 0, 0, newParseError(s, start, ErrMalformedGrammar)
	}

	return value, end - start, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// StripPrefix removes a single leading "v" or "V" marker, if present.
// Useful for callers that need the bare token form before re-emitting it.
func StripPrefix(s string) string {
	if strings.HasPrefix(s, "v") || strings.HasPrefix(s, "V") {
		return s[1:]
	}
	return s
}
