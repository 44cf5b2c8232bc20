// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package formats contains the command that prints the supported output formats.
package formats

import (
	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/layerdoc/pkg/cli/output"
	"github.com/spatialcurrent/layerdoc/pkg/config"
)

const (
	CliUse   = "formats"
	CliShort = "print output formats supported through go-simple-serializer"
	CliLong  = "print output formats supported through go-simple-serializer"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CliUse,
		Short: CliShort,
		Long:  CliLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.InitViper(cmd)
			if err != nil {
				return errors.Wrap(err, "error initializing viper")
			}
			if err := output.CheckOutputConfig(v); err != nil {
				return errors.Wrap(err, "error with output configuration")
			}
			return output.Write(v, gss.Formats)
		},
	}
	output.InitOutputFlags(cmd.Flags(), "json")
	return cmd
}
