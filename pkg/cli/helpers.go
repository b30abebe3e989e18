/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/errors"
	"github.com/NVIDIA/semver/pkg/semver"
	"github.com/NVIDIA/semver/pkg/serializer"
)

const expectedGrammar = `major.minor[.bugfix], optionally prefixed with "v"`

// parseOutputFormat resolves the --format flag into a serializer.Format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %s",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// invalidTokenError builds the user-facing error for a token that failed to
// parse. The message always names the offending token and the expected
// grammar; the underlying semver.ParseError stays reachable via errors.As.
func invalidTokenError(token string, cause error) error {
	return errors.Wrap(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid version %q (expected %s)", token, expectedGrammar),
		cause)
}

// parseTokens parses a list of command-line tokens, failing on the first
// invalid one.
func parseTokens(tokens []string) ([]semver.Version, error) {
	versions := make([]semver.Version, 0, len(tokens))
	for _, token := range tokens {
		v, err := semver.Parse(token)
		if err != nil {
			return nil, invalidTokenError(token, err)
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// loadVersions collects versions from positional arguments, or from the
// --input source when no arguments are given. The input source is a JSON or
// YAML list of version tokens; "-" reads YAML from stdin (a superset of
// JSON, so either works there).
func loadVersions(cmd *cli.Command) ([]semver.Version, error) {
	if tokens := cmd.Args().Slice(); len(tokens) > 0 {
		return parseTokens(tokens)
	}

	path := cmd.String("input")
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			"no versions provided: pass tokens as arguments or use --input")
	}

	if path == "-" {
		reader, err := serializer.NewReader(serializer.FormatYAML, os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to create stdin reader: %w", err)
		}
		var versions []semver.Version
		if err := reader.Deserialize(&versions); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
				"failed to read versions from stdin", err)
		}
		return versions, nil
	}

	versions, err := serializer.FromFile[[]semver.Version](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to read versions from %q", path), err)
	}
	return *versions, nil
}

// closeSerializer closes the serializer when it holds resources.
func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}

// render picks the prefixed or bare text form.
func render(v semver.Version, prefixed bool) string {
	if prefixed {
		return v.Prefixed()
	}
	return v.String()
}
