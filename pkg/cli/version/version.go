// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package version contains the command that prints the build version.
package version

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/layerdoc/pkg/cli/output"
	"github.com/spatialcurrent/layerdoc/pkg/config"
	"github.com/spatialcurrent/layerdoc/pkg/document"
)

type NewCommandInput struct {
	GitBranch string
	GitCommit string
}

func NewCommand(input *NewCommandInput) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Long:  "print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.InitViper(cmd)
			if err != nil {
				return errors.Wrap(err, "error initializing viper")
			}
			return output.Write(v, map[string]interface{}{
				"branch":   input.GitBranch,
				"commit":   input.GitCommit,
				"document": document.Version,
			})
		},
	}
	output.InitOutputFlags(cmd.Flags(), "properties")
	return cmd
}
