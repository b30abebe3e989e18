/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver/pkg/serializer"
)

// Flag constructors shared across commands. Each command gets its own flag
// instances since flags hold parse state.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("SEMVER_OUTPUT"),
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("SEMVER_FORMAT"),
	}
}

func inputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"f"},
		Usage:   `Path to a JSON/YAML file holding a list of version tokens; use "-" for stdin (parsed as YAML)`,
		Sources: cli.EnvVars("SEMVER_INPUT"),
	}
}

func prefixedFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "prefixed",
		Usage: `Render versions with a leading "v" marker`,
	}
}

func logLevelFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}
}
