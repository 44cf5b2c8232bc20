// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spf13/viper"
)

// MergeConfigs merges the config files at the given paths, in order, into the viper.
// The format is inferred from the file extension.
func MergeConfigs(v *viper.Viper, configUris []string) error {
	for _, configUri := range configUris {
		if err := MergeConfig(v, configUri); err != nil {
			return err
		}
	}
	return nil
}

func MergeConfig(v *viper.Viper, configUri string) error {
	ext := strings.TrimPrefix(filepath.Ext(configUri), ".")
	if len(ext) == 0 {
		return errors.Errorf("cannot infer format of config uri %q", configUri)
	}
	v.SetConfigType(ext)

	configReader, _, err := grw.ReadFromResource(&grw.ReadFromResourceInput{
		Uri:        configUri,
		Alg:        "",
		Dict:       grw.NoDict,
		BufferSize: grw.DefaultBufferSize,
	})
	if err != nil {
		return errors.Wrapf(err, "error opening config uri %q", configUri)
	}

	configBytes, err := configReader.ReadAllAndClose()
	if err != nil {
		return errors.Wrapf(err, "error reading config uri %q", configUri)
	}

	if len(configBytes) > 0 {
		if err := v.MergeConfig(bytes.NewReader(configBytes)); err != nil {
			return errors.Wrapf(err, "error merging config from uri %q", configUri)
		}
	}
	return nil
}
