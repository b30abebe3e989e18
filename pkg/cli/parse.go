/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/errors"
	"github.com/NVIDIA/semver/pkg/semver"
	"github.com/NVIDIA/semver/pkg/serializer"
)

// parseResult is the structured rendering of a single parsed token.
// Bugfix is nil for abridged versions so the field disappears from output
// instead of masquerading as an explicit zero.
type parseResult struct {
	Token     string  `json:"token" yaml:"token"`
	Canonical string  `json:"canonical" yaml:"canonical"`
	Major     uint64  `json:"major" yaml:"major"`
	Minor     uint64  `json:"minor" yaml:"minor"`
	Bugfix    *uint64 `json:"bugfix,omitempty" yaml:"bugfix,omitempty"`
}

func newParseResult(token string, v semver.Version, prefixed bool) parseResult {
	r := parseResult{
		Token:     token,
		Canonical: render(v, prefixed),
		Major:     v.Major,
		Minor:     v.Minor,
	}
	if v.Precision == semver.PrecisionFull {
		bugfix := v.Bugfix
		r.Bugfix = &bugfix
	}
	return r
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		ArgsUsage:             "TOKEN [TOKEN...]",
		Usage:                 "Parse version tokens into their structured form",
		Description: `Parse one or more version tokens and print their structured components.

Accepted token forms:
  - 1.2
  - 1.2.3
  - v1.2 / V1.2.3 (the marker is discarded)

An abridged token (no bugfix component) stays abridged: its canonical form
omits the third component and the bugfix field is absent from the output.

# Examples

Parse a single token:
  semverctl parse 1.2.3

Parse several tokens as a JSON report:
  semverctl parse v1.2 2.0.0 --format json

Render canonical forms with the "v" marker:
  semverctl parse 1.2.3 --prefixed`,
		Flags: []cli.Flag{
			prefixedFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			tokens := cmd.Args().Slice()
			if len(tokens) == 0 {
				return errors.New(errors.ErrCodeInvalidRequest,
					"at least one version token is required")
			}

			results := make([]parseResult, 0, len(tokens))
			for _, token := range tokens {
				v, err := semver.Parse(token)
				if err != nil {
					return invalidTokenError(token, err)
				}
				results = append(results, newParseResult(token, v, cmd.Bool("prefixed")))
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)
			return ser.Serialize(results)
		},
	}
}
