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
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1.2")
	f.Add("v1.2")
	f.Add("V1.2")
	f.Add("1.2.3")
	f.Add("v1.2.3")
	f.Add("0.0")
	f.Add("0.0.0")
	f.Add("999.999.999")
	f.Add("18446744073709551615.0")
	f.Add("18446744073709551616.0")
	f.Add("99999999999999999999.0")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("v")
	f.Add("vv1.2")
	f.Add("-1.2")
	f.Add("1.-2")
	f.Add("a.b.c")
	f.Add("1.2.3.4")
	f.Add("1.2.3-rc1")
	f.Add("   1.2.3")
	f.Add("1.2.3   ")
	f.Add("1. 2.3")
	f.Add("0009.008.07")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)

		if err != nil {
			// Every failure is a *ParseError wrapping a known kind
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Parse(%q) error is not a *ParseError: %v", input, err)
				return
			}
			kinds := errors.Is(err, ErrMalformedGrammar) ||
				errors.Is(err, ErrComponentOverflow) ||
				errors.Is(err, ErrTrailingInput)
			if !kinds {
				t.Errorf("Parse(%q) error has unknown kind: %v", input, err)
			}
			if perr.Offset < 0 || perr.Offset > len(input) {
				t.Errorf("Parse(%q) error offset %d out of bounds", input, perr.Offset)
			}
			return
		}

		// Version should be valid
		if !v.IsValid() {
			t.Errorf("Parse(%q) returned invalid version: %+v", input, v)
		}

		// Re-parsing the canonical string should produce a structurally
		// equal version (round-trip law)
		s := v.String()
		v2, err2 := Parse(s)
		if err2 != nil {
			t.Errorf("Re-parsing %q (from %q) failed: %v", s, input, err2)
		} else if !v2.Equals(v) {
			t.Errorf("Round-trip mismatch for %q: %+v != %+v", input, v, v2)
		}

		// Prefixed output must re-parse to the same value
		v3, err3 := Parse(v.Prefixed())
		if err3 != nil {
			t.Errorf("Re-parsing prefixed %q failed: %v", v.Prefixed(), err3)
		} else if !v3.Equals(v) {
			t.Errorf("Prefixed round-trip mismatch for %q", input)
		}

		// ParsePrefix must agree with Parse on full-match inputs
		pv, n, perr2 := ParsePrefix(input)
		if perr2 != nil {
			t.Errorf("ParsePrefix(%q) failed after Parse succeeded: %v", input, perr2)
		} else {
			if n != len(input) {
				t.Errorf("ParsePrefix(%q) consumed %d of %d bytes after full Parse succeeded", input, n, len(input))
			}
			if !pv.Equals(v) {
				t.Errorf("ParsePrefix(%q) = %+v, Parse = %+v", input, pv, v)
			}
		}

		// Comparison methods don't panic and self-compare is equal
		other := New(1, 2, 3)
		_ = v.Compare(other)
		_ = v.IsNewer(other)
		_ = v.EqualsOrNewer(other)
		if v.Compare(v) != 0 || !v.Equals(v) {
			t.Errorf("Parse(%q): version does not compare equal to itself", input)
		}
	})
}
