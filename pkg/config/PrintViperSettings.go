// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/viper"
)

// PrintViperSettings writes the resolved settings as properties.
func PrintViperSettings(w io.Writer, v *viper.Viper) error {
	b, err := gss.SerializeBytes(&gss.SerializeBytesInput{
		Object:            v.AllSettings(),
		Format:            "properties",
		Header:            gss.NoHeader,
		Limit:             gss.NoLimit,
		LineSeparator:     "\n",
		KeyValueSeparator: "=",
		Sorted:            true,
	})
	if err != nil {
		return errors.Wrap(err, "error serializing viper settings")
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
