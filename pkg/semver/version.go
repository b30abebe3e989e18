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
	"sort"
)

// Precision values for Version. The grammar always requires major and minor,
// so only two precision levels exist.
const (
	// PrecisionAbridged marks a version without a bugfix component (major.minor).
	PrecisionAbridged = 2
	// PrecisionFull marks a version with an explicit bugfix component.
	PrecisionFull = 3
)

// Version represents a semantic version with Major, Minor, and an optional
// Bugfix component. The Precision field records whether the bugfix component
// is present: an abridged version (precision 2) never renders a third
// component, a full version (precision 3) always does, even when it is zero.
//
// Version is a plain value type. Instances are never mutated after
// construction and are safe to share across goroutines without coordination.
type Version struct {
	Major  uint64
	Minor  uint64
	Bugfix uint64

	// Precision is PrecisionAbridged (2) or PrecisionFull (3).
	// Bugfix is significant only at PrecisionFull.
	Precision int
}

// New creates a full version with an explicit bugfix component.
// The bugfix is always included in the rendered output, even when zero.
func New(major, minor, bugfix uint64) Version {
	return Version{
		Major:     major,
		Minor:     minor,
		Bugfix:    bugfix,
		Precision: PrecisionFull,
	}
}

// Abridged creates a version without a bugfix component (major.minor only).
// The rendered output never includes a third component.
func Abridged(major, minor uint64) Version {
	return Version{
		Major:     major,
		Minor:     minor,
		Precision: PrecisionAbridged,
	}
}

// String returns the canonical, non-prefixed rendering of the Version:
// "Major.Minor" for abridged versions, "Major.Minor.Bugfix" for full ones.
func (v Version) String() string {
	if v.Precision == PrecisionAbridged {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix)
}

// Prefixed returns the Version rendered with a leading "v".
// Whether output carries the prefix is always the caller's choice; the parser
// discards any input marker and it is not part of the Version state.
func (v Version) Prefixed() string {
	return "v" + v.String()
}

// bugfixOrZero returns the bugfix value used for ordering: the explicit
// component for full versions, zero for abridged ones.
func (v Version) bugfixOrZero() uint64 {
	if v.Precision != PrecisionFull {
		return 0
	}
	return v.Bugfix
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
//
// The order is lexicographic over (Major, Minor, bugfix-or-zero): an abridged
// version compares equal to the same major.minor with an explicit zero bugfix.
// This is ordering equality only; use Equals for structural identity.
// The relation is a total order and transitive, so it is safe for sorting.
func (v Version) Compare(other Version) int {
	if v.Major < other.Major {
		return -1
	}
	if v.Major > other.Major {
		return 1
	}

	if v.Minor < other.Minor {
		return -1
	}
	if v.Minor > other.Minor {
		return 1
	}

	vb, ob := v.bugfixOrZero(), other.bugfixOrZero()
	if vb < ob {
		return -1
	}
	if vb > ob {
		return 1
	}

	return 0
}

// Equals reports structural identity: all components match, including the
// presence of the bugfix component. New(1, 0, 0) and Abridged(1, 0) are NOT
// structurally equal because they render differently, even though Compare
// reports them as equal for ordering. Use Equals when keying caches or
// deduplicating, so that distinctly formatted versions stay distinct.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.Precision == other.Precision &&
		v.bugfixOrZero() == other.bugfixOrZero()
}

// IsNewer returns true if v is strictly newer than other under Compare.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// EqualsOrNewer returns true if v is equal to or newer than other under Compare.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// IsValid returns true if the version has a well-formed shape:
// precision is 2 or 3, and an abridged version carries no stray bugfix value.
// Versions produced by New, Abridged, or the parsers are always valid.
func (v Version) IsValid() bool {
	switch v.Precision {
	case PrecisionFull:
		return true
	case PrecisionAbridged:
		return v.Bugfix == 0
	default:
		return false
	}
}

// Sort sorts versions in place, ascending by Compare. Versions that compare
// equal (abridged vs explicit zero bugfix) keep their relative input order.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}

// Latest returns the highest version in the slice under Compare,
// and false when the slice is empty.
func Latest(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	latest := versions[0]
	for _, v := range versions[1:] {
		if v.IsNewer(latest) {
			latest = v
		}
	}
	return latest, true
}
