/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/semver"
	"github.com/NVIDIA/semver/pkg/serializer"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		ArgsUsage:             "[TOKEN...]",
		Usage:                 "Sort versions in ascending order",
		Description: `Sort version tokens ascending (oldest first).

Versions come from positional arguments, or from --input when no arguments
are given. The input file is a JSON or YAML list of version tokens; "-"
reads from stdin. Versions that compare equal ("1.0" and "1.0.0") keep
their relative input order.

# Examples

  semverctl sort 1.2.3 v0.9 1.2
  semverctl sort --input releases.yaml --reverse
  echo '["2.0", "1.9.9"]' | semverctl sort --input -`,
		Flags: []cli.Flag{
			inputFlag(),
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort descending (newest first)",
			},
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

			semver.Sort(versions)
			if cmd.Bool("reverse") {
				for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
					versions[i], versions[j] = versions[j], versions[i]
				}
			}

			rendered := make([]string, 0, len(versions))
			for _, v := range versions {
				rendered = append(rendered, render(v, cmd.Bool("prefixed")))
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)
			return ser.Serialize(rendered)
		},
	}
}
