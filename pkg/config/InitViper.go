// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package config binds command line flags, environment variables, and config files with viper.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	FlagConfigUri = "config-uri"
	EnvPrefix     = "LAYERDOC"
)

// InitViper returns a viper bound to the flags of the command.
// Environment variables such as LAYERDOC_OUTPUT_FORMAT override the flag defaults.
func InitViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "error binding flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := MergeConfigs(v, v.GetStringSlice(FlagConfigUri)); err != nil {
		return nil, errors.Wrap(err, "error merging config")
	}
	return v, nil
}
