// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/viper"
)

func CheckOutputConfig(v *viper.Viper) error {
	format := v.GetString(FlagOutputFormat)
	if !stringSliceContains(gss.Formats, format) {
		return &ErrInvalidOutputFormat{Value: format, Expected: gss.Formats}
	}
	compression := v.GetString(FlagOutputCompression)
	if len(compression) > 0 && !stringSliceContains(grw.Algorithms, compression) {
		return &ErrInvalidOutputCompression{Value: compression, Expected: grw.Algorithms}
	}
	return nil
}

func stringSliceContains(slice []string, str string) bool {
	for _, x := range slice {
		if x == str {
			return true
		}
	}
	return false
}
