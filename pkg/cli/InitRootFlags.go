// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"github.com/spf13/pflag"

	"github.com/spatialcurrent/layerdoc/pkg/cli/logging"
	"github.com/spatialcurrent/layerdoc/pkg/config"
)

// InitRootFlags initializes the root flags.
func InitRootFlags(flag *pflag.FlagSet) {
	logging.InitLoggingFlags(flag)

	flag.StringSlice(config.FlagConfigUri, []string{}, "the path(s) to config files")
}
