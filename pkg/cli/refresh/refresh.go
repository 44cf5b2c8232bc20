// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package refresh contains the command that reloads the special layers of a document.
package refresh

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/layerdoc/pkg/cli/input"
	"github.com/spatialcurrent/layerdoc/pkg/cli/logging"
	"github.com/spatialcurrent/layerdoc/pkg/config"
	"github.com/spatialcurrent/layerdoc/pkg/layer"
)

const (
	CliUse   = "refresh FILE"
	CliShort = "reload the special layers of a document from their sources"
	CliLong  = "reload the special layers of a document from their sources and write the document"

	FlagOutput = "output"
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

			logger := logging.NewLoggerFromViper(v)
			defer logger.Flush()

			ctx, cancel := input.Context(v)
			defer cancel()

			d, err := input.ReadDocument(ctx, v, args[0], logger)
			if err != nil {
				return err
			}

			if err := d.RefreshSpecialLayers(ctx); err != nil {
				return errors.Wrap(err, "error refreshing special layers")
			}

			for _, l := range d.Layers() {
				if s, ok := l.(*layer.SpecialLayer); ok {
					logger.Info(map[string]interface{}{
						"msg":      "refreshed",
						"layer":    s.Name(),
						"features": s.Size(),
					})
				}
			}

			out := v.GetString(FlagOutput)
			if len(out) == 0 {
				out = args[0]
			}
			return input.WriteDocument(ctx, d, out, v.GetString(input.FlagInputCompression), false)
		},
	}
	cmd.Flags().StringP(FlagOutput, "o", "", "the output path, defaults to overwriting the input")
	input.InitInputFlags(cmd.Flags())
	return cmd
}
