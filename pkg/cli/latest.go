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

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "latest",
		EnableShellCompletion: true,
		ArgsUsage:             "[TOKEN...]",
		Usage:                 "Print the highest version",
		Description: `Print the highest version among the given tokens.

Versions come from positional arguments, or from --input when no arguments
are given (same contract as sort). When several tokens compare equal at the
top ("2.0" and "2.0.0"), the first one provided wins.

# Examples

  semverctl latest 1.2.3 v2.0 1.9.9
  semverctl latest --input releases.yaml`,
		Flags: []cli.Flag{
			inputFlag(),
			prefixedFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			versions, err := loadVersions(cmd)
			if err != nil {
				return err
			}

			latest, ok := semver.Latest(versions)
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no versions to choose from")
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)
			return ser.Serialize(render(latest, cmd.Bool("prefixed")))
		},
	}
}
