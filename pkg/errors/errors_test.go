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

package errors

import (
	stderrors "errors"
	"testing"

	"github.com/NVIDIA/semver/pkg/semver"
)

func TestStructuredError(t *testing.T) {
	err := New(ErrCodeInvalidRequest, "bad token")
	if err.Error() != "[INVALID_REQUEST] bad token" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	_, parseErr := semver.Parse("1.2.3.4")
	if parseErr == nil {
		t.Fatal("expected parse error")
	}

	wrapped := Wrap(ErrCodeInvalidRequest, `invalid version "1.2.3.4"`, parseErr)

	if !stderrors.Is(wrapped, semver.ErrTrailingInput) {
		t.Errorf("wrapped error lost the parse kind: %v", wrapped)
	}

	var perr *semver.ParseError
	if !stderrors.As(wrapped, &perr) {
		t.Fatalf("wrapped error lost the *ParseError: %v", wrapped)
	}
	if perr.Offset != 5 {
		t.Errorf("Offset = %d, want 5", perr.Offset)
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := stderrors.New("boom")
	err := WrapWithContext(ErrCodeInternal, "failed", cause, map[string]any{"token": "x"})

	if err.Context["token"] != "x" {
		t.Errorf("context not preserved: %+v", err.Context)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain broken")
	}
}
