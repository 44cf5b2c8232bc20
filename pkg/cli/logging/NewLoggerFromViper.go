// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logging

import (
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
	"github.com/spf13/viper"
)

func NewLoggerFromViper(v *viper.Viper) *gsl.Logger {
	return gsl.CreateApplicationLogger(&gsl.CreateApplicationLoggerInput{
		ErrorDestination: v.GetString(FlagErrorDestination),
		ErrorCompression: v.GetString(FlagErrorCompression),
		ErrorFormat:      v.GetString(FlagErrorFormat),
		InfoDestination:  v.GetString(FlagInfoDestination),
		InfoCompression:  v.GetString(FlagInfoCompression),
		InfoFormat:       v.GetString(FlagInfoFormat),
		Verbose:          v.GetBool(FlagVerbose),
	})
}
