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

	"gopkg.in/yaml.v3"
)

// Version serializes to and from a single text field in its non-prefixed
// String form. The prefixed flag is not part of Version state and is never
// persisted; callers that standardize on the prefixed form should use the
// Prefixed wrapper type instead.

// MarshalText implements encoding.TextMarshaler. encoding/json and other
// text-based codecs pick this up, so a Version field serializes as "1.2.3".
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A failed parse surfaces
// as a *ParseError through the decoder, never as a panic.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for gopkg.in/yaml.v3, which does not
// consult encoding.TextMarshaler.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for gopkg.in/yaml.v3.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("version must be a string scalar: %w", err)
	}
	return v.UnmarshalText([]byte(s))
}

// Prefixed is a Version that serializes with a leading "v" marker, for
// documents that standardize on the prefixed convention. Parsing accepts
// both prefixed and bare forms, same as Version.
type Prefixed Version

// String returns the prefixed rendering, e.g. "v1.2.3".
func (p Prefixed) String() string {
	return Version(p).Prefixed()
}

// MarshalText implements encoding.TextMarshaler.
func (p Prefixed) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Prefixed) UnmarshalText(text []byte) error {
	var v Version
	if err := v.UnmarshalText(text); err != nil {
		return err
	}
	*p = Prefixed(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Prefixed) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Prefixed) UnmarshalYAML(node *yaml.Node) error {
	var v Version
	if err := v.UnmarshalYAML(node); err != nil {
		return err
	}
	*p = Prefixed(v)
	return nil
}
