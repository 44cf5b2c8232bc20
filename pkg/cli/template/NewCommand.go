// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package template

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/layerdoc/pkg/cli/input"
	"github.com/spatialcurrent/layerdoc/pkg/cli/logging"
	"github.com/spatialcurrent/layerdoc/pkg/cli/output"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// NewCommand returns a new instance of the template command.
func NewCommand() *cobra.Command {
	templateCommand := &cobra.Command{
		Use:   CliUse,
		Short: CliShort,
		Long:  CliLong,
	}
	InitTemplateFlags(templateCommand.PersistentFlags())

	exportCommand := &cobra.Command{
		Use:   "export FILE",
		Short: "write a document as a template",
		Long:  "write a document with every layer's metadata and flags but no features",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := initViper(cmd)
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
			return input.WriteDocument(ctx, d, v.GetString(output.FlagOutputUri), v.GetString(output.FlagOutputCompression), true)
		},
	}
	exportCommand.Flags().StringP(output.FlagOutputUri, "o", output.DefaultOutputUri, "the output uri")
	exportCommand.Flags().String(output.FlagOutputCompression, "", "the output compression algorithm")
	input.InitInputFlags(exportCommand.Flags())
	templateCommand.AddCommand(exportCommand)

	saveCommand := &cobra.Command{
		Use:   "save FILE",
		Short: "save a layer of a document as a named template",
		Long:  "save a layer of a document as a named template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := initViper(cmd)
			if err != nil {
				return err
			}
			name := v.GetString(FlagName)
			if len(name) == 0 {
				return ErrMissingTemplateName
			}

			logger := logging.NewLoggerFromViper(v)
			defer logger.Flush()

			ctx, cancel := input.Context(v)
			defer cancel()

			d, err := input.ReadDocument(ctx, v, args[0], logger)
			if err != nil {
				return err
			}
			id := v.GetString(FlagLayer)
			l := d.Layer(id)
			if l == nil {
				return &lerrors.ErrMissingObject{Type: "layer", Name: id}
			}

			store, err := openStore(v)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(name, l); err != nil {
				return err
			}
			logger.Info(map[string]interface{}{"msg": "saved template", "name": name, "layer": l.Name()})
			return nil
		},
	}
	saveCommand.Flags().String(FlagLayer, "", "the id of the layer")
	saveCommand.Flags().String(FlagName, "", "the name of the template")
	input.InitInputFlags(saveCommand.Flags())
	templateCommand.AddCommand(saveCommand)

	listCommand := &cobra.Command{
		Use:   "list",
		Short: "list the stored templates",
		Long:  "list the stored templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := initViper(cmd)
			if err != nil {
				return err
			}
			if err := output.CheckOutputConfig(v); err != nil {
				return errors.Wrap(err, "error with output configuration")
			}
			store, err := openStore(v)
			if err != nil {
				return err
			}
			defer store.Close()
			entries, err := store.List()
			if err != nil {
				return err
			}
			return output.Write(v, entries)
		},
	}
	output.InitOutputFlags(listCommand.Flags(), "json")
	templateCommand.AddCommand(listCommand)

	showCommand := &cobra.Command{
		Use:   "show NAME",
		Short: "instantiate a template and print the new layer",
		Long:  "instantiate a template and print the new layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := initViper(cmd)
			if err != nil {
				return err
			}
			if err := output.CheckOutputConfig(v); err != nil {
				return errors.Wrap(err, "error with output configuration")
			}
			store, err := openStore(v)
			if err != nil {
				return err
			}
			defer store.Close()
			l, err := store.Load(args[0])
			if err != nil {
				return err
			}
			return output.Write(v, l.Map(cmd.Context()))
		},
	}
	output.InitOutputFlags(showCommand.Flags(), "json")
	templateCommand.AddCommand(showCommand)

	templateCommand.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "delete a stored template",
		Long:  "delete a stored template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := initViper(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(v)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Delete(args[0])
		},
	})

	return templateCommand
}
