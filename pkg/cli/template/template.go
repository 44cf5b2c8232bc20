// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package template contains the commands that manage layer templates.
package template

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/layerdoc/pkg/config"
	"github.com/spatialcurrent/layerdoc/pkg/templates"
)

const (
	CliUse   = "template"
	CliShort = "commands for exporting and storing layer templates"
	CliLong  = "commands for exporting and storing layer templates.  A template is a layer without its features."

	FlagTemplateDatabase = "template-db"
	FlagLayer            = "layer"
	FlagName             = "name"

	DefaultTemplateDatabase = "layerdoc-templates.db"
)

var (
	ErrMissingTemplateDatabase = errors.New("missing template database")
	ErrMissingTemplateName     = errors.New("missing template name")
)

func InitTemplateFlags(flag *pflag.FlagSet) {
	flag.String(FlagTemplateDatabase, DefaultTemplateDatabase, "path to the template database")
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v, err := config.InitViper(cmd)
	if err != nil {
		return nil, errors.Wrap(err, "error initializing viper")
	}
	return v, nil
}

func openStore(v *viper.Viper) (*templates.Store, error) {
	path := v.GetString(FlagTemplateDatabase)
	if len(path) == 0 {
		return nil, ErrMissingTemplateDatabase
	}
	return templates.Open(path)
}
