// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package filter contains the command that evaluates a filter expression against a document.
package filter

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/layerdoc/pkg/cli/input"
	"github.com/spatialcurrent/layerdoc/pkg/cli/logging"
	"github.com/spatialcurrent/layerdoc/pkg/cli/output"
	"github.com/spatialcurrent/layerdoc/pkg/config"
	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/geo"
	"github.com/spatialcurrent/layerdoc/pkg/layer"
	"github.com/spatialcurrent/layerdoc/pkg/parser"
)

const (
	CliUse   = "filter FILE"
	CliShort = "list the features of a document matching a filter expression"
	CliLong  = `list the features of a document matching a filter expression.

The expression is written in DFL and evaluated against the tags of every feature in the
map, drawing, and track layers.  For example: @highway == 'residential'`

	FlagExpression = "expression"
	FlagName       = "name"
	FlagSave       = "save"
	FlagBBox       = "bbox"
	FlagTile       = "tile"
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

			expression := v.GetString(FlagExpression)
			if len(expression) == 0 {
				return errors.New("expression is required")
			}

			extent, err := initExtent(v.GetString(FlagBBox), v.GetString(FlagTile))
			if err != nil {
				return err
			}

			logger := logging.NewLoggerFromViper(v)
			defer logger.Flush()

			ctx, cancel := input.Context(v)
			defer cancel()

			d, err := input.ReadDocument(ctx, v, args[0], logger)
			if err != nil {
				return err
			}

			fl, err := layer.NewFilterLayer(layer.NewId(), v.GetString(FlagName), expression)
			if err != nil {
				return errors.Wrapf(err, "error compiling expression %q", expression)
			}
			if err := d.AddLayer(fl); err != nil {
				return errors.Wrap(err, "error adding filter layer")
			}

			start := time.Now()
			members, err := fl.Members()
			if err != nil {
				return errors.Wrap(err, "error evaluating filter")
			}
			logger.Debug(map[string]interface{}{
				"msg":     "evaluated filter",
				"filter":  expression,
				"matches": len(members),
				"elapsed": time.Since(start).String(),
			})

			if save := v.GetString(FlagSave); len(save) > 0 {
				if err := input.WriteDocument(ctx, d, save, v.GetString(input.FlagInputCompression), false); err != nil {
					return err
				}
			}

			features := make([]interface{}, 0, len(members))
			for _, f := range members {
				if extent != nil && !extent.Intersects(f.BoundingBox()) {
					continue
				}
				features = append(features, f.Map())
			}
			return output.Write(v, features)
		},
	}
	cmd.Flags().StringP(FlagExpression, "e", "", "the filter expression")
	cmd.Flags().String(FlagName, "Filter", "the name of the filter layer")
	cmd.Flags().String(FlagBBox, "", "only list features intersecting the extent [minlon, minlat, maxlon, maxlat]")
	cmd.Flags().String(FlagTile, "", "only list features intersecting the tile z/x/y")
	cmd.Flags().String(FlagSave, "", "write the document with the filter layer added to this path")
	input.InitInputFlags(cmd.Flags())
	output.InitOutputFlags(cmd.Flags(), "jsonl")
	return cmd
}

// initExtent returns the extent limiting the output, or nil.
func initExtent(bbox string, tile string) (*feature.CoordBox, error) {
	if len(bbox) > 0 && len(tile) > 0 {
		return nil, errors.New("cannot use both bbox and tile")
	}
	if len(bbox) > 0 {
		box, err := parser.ParseCoordBox(bbox, FlagBBox)
		if err != nil {
			return nil, err
		}
		return &box, nil
	}
	if len(tile) > 0 {
		z, x, y, err := geo.ParseTile(tile)
		if err != nil {
			return nil, err
		}
		box := geo.TileBox(z, x, y)
		return &box, nil
	}
	return nil, nil
}
