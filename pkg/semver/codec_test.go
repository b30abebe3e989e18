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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type release struct {
	Name    string  `json:"name" yaml:"name"`
	Version Version `json:"version" yaml:"version"`
}

type prefixedRelease struct {
	Name    string   `json:"name" yaml:"name"`
	Version Prefixed `json:"version" yaml:"version"`
}

func TestJSONCodec(t *testing.T) {
	r := release{Name: "stack", Version: New(1, 2, 3)}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"stack","version":"1.2.3"}`, string(data))

	var decoded release
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Version.Equals(r.Version))
}

func TestJSONCodecAbridged(t *testing.T) {
	r := release{Name: "stack", Version: Abridged(1, 2)}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"stack","version":"1.2"}`, string(data))

	var decoded release
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Version.Equals(Abridged(1, 2)))
	// The abridged form must survive the round trip, not collapse to 1.2.0.
	assert.Equal(t, "1.2", decoded.Version.String())
}

func TestJSONDecodeError(t *testing.T) {
	var decoded release
	err := json.Unmarshal([]byte(`{"name":"stack","version":"1.2.3.4"}`), &decoded)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTrailingInput), "error should carry the parse kind, got: %v", err)
}

func TestYAMLCodec(t *testing.T) {
	r := release{Name: "stack", Version: New(0, 5, 6)}

	data, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "name: stack\nversion: 0.5.6\n", string(data))

	var decoded release
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.True(t, decoded.Version.Equals(r.Version))

	// Prefixed input is accepted on decode.
	require.NoError(t, yaml.Unmarshal([]byte("name: stack\nversion: v2.3\n"), &decoded))
	assert.True(t, decoded.Version.Equals(Abridged(2, 3)))
}

func TestYAMLDecodeError(t *testing.T) {
	var decoded release
	err := yaml.Unmarshal([]byte("name: stack\nversion: nope\n"), &decoded)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedGrammar), "error should carry the parse kind, got: %v", err)

	err = yaml.Unmarshal([]byte("name: stack\nversion: [1, 2]\n"), &decoded)
	require.Error(t, err)
}

func TestPrefixedCodec(t *testing.T) {
	r := prefixedRelease{Name: "stack", Version: Prefixed(New(1, 2, 3))}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"stack","version":"v1.2.3"}`, string(data))

	var decoded prefixedRelease
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, Version(decoded.Version).Equals(New(1, 2, 3)))

	ydata, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "name: stack\nversion: v1.2.3\n", string(ydata))

	var ydecoded prefixedRelease
	require.NoError(t, yaml.Unmarshal(ydata, &ydecoded))
	assert.Equal(t, "v1.2.3", ydecoded.Version.String())

	// Bare input is accepted; the prefix is a rendering choice, not state.
	require.NoError(t, json.Unmarshal([]byte(`{"version":"4.5"}`), &decoded))
	assert.Equal(t, "v4.5", decoded.Version.String())
}
