// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package info contains the command that summarizes a layer document.
package info

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/layerdoc/pkg/cli/input"
	"github.com/spatialcurrent/layerdoc/pkg/cli/logging"
	"github.com/spatialcurrent/layerdoc/pkg/cli/output"
	"github.com/spatialcurrent/layerdoc/pkg/config"
)

const (
	CliUse   = "info FILE"
	CliShort = "summarize the layers of a document"
	CliLong  = "summarize the layers of a document, including sizes, flags, and bounding boxes"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CliUse,
		Short: CliShort,
		Long:  CliLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.InitViper(cmd)
			if err != nil {
				return errors.Wrap(err, "error initializing viper")
			}
			if err := output.CheckOutputConfig(v); err != nil {
				return errors.Wrap(err, "error with output configuration")
			}

			logger := logging.NewLoggerFromViper(v)
			defer logger.Flush()

			ctx, cancel := input.Context(v)
			defer cancel()

			d, err := input.ReadDocument(ctx, v, args[0], logger)
			if err != nil {
				return err
			}

			layers := make([]interface{}, 0)
			for _, l := range d.Layers() {
				layers = append(layers, l.Map(ctx))
			}

			return output.Write(v, map[string]interface{}{
				"name":   d.Name(),
				"bbox":   d.BoundingBox().String(),
				"layers": layers,
			})
		},
	}
	input.InitInputFlags(cmd.Flags())
	output.InitOutputFlags(cmd.Flags(), "json")
	return cmd
}
