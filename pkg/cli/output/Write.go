// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/viper"

	"github.com/spatialcurrent/layerdoc/pkg/serializer"
)

// Write serializes the object to the output uri using the output flags.
func Write(v *viper.Viper, object interface{}) error {
	return serializer.Serialize(&serializer.SerializeInput{
		Uri:               v.GetString(FlagOutputUri),
		Alg:               v.GetString(FlagOutputCompression),
		Append:            v.GetBool(FlagOutputAppend),
		Parents:           v.GetBool(FlagOutputMkdirs),
		Object:            object,
		Format:            v.GetString(FlagOutputFormat),
		Header:            gss.NoHeader,
		Limit:             v.GetInt(FlagOutputLimit),
		Pretty:            v.GetBool(FlagOutputPretty),
		Sorted:            v.GetBool(FlagOutputSorted),
		LineSeparator:     v.GetString(FlagOutputLineSep),
		KeyValueSeparator: "=",
	})
}
