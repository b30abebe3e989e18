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

// compareResult reports the ordering of two versions. Result is -1, 0, or 1
// and Relation the corresponding word, describing A relative to B.
type compareResult struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
}

func relation(result int) string {
	switch {
	case result < 0:
		return "older"
	case result > 0:
		return "newer"
	default:
		return "equal"
	}
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		ArgsUsage:             "A B",
		Usage:                 "Compare two versions",
		Description: `Compare two version tokens and report their ordering.

The order is lexicographic over (major, minor, bugfix), with a missing
bugfix treated as zero: "1.0" and "1.0.0" compare equal even though they
are distinct tokens with distinct canonical forms.

# Examples

  semverctl compare 1.2.3 v1.3
  semverctl compare 1.0 1.0.0 --format json`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 2 {
				return errors.New(errors.ErrCodeInvalidRequest,
					"compare requires exactly two version tokens")
			}

			a, err := semver.Parse(cmd.Args().Get(0))
			if err != nil {
				return invalidTokenError(cmd.Args().Get(0), err)
			}
			b, err := semver.Parse(cmd.Args().Get(1))
			if err != nil {
				return invalidTokenError(cmd.Args().Get(1), err)
			}

			result := a.Compare(b)
			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)
			return ser.Serialize(compareResult{
				A:        a.String(),
				B:        b.String(),
				Result:   result,
				Relation: relation(result),
			})
		},
	}
}
