// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"strings"

	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/pflag"
)

// InitOutputFlags initializes the output flags.
func InitOutputFlags(flag *pflag.FlagSet, defaultOutputFormat string) {
	flag.StringP(FlagOutputUri, "o", DefaultOutputUri, "the output uri")
	flag.String(FlagOutputCompression, "", "the output compression algorithm, one of: "+strings.Join(grw.Algorithms, ", "))
	flag.String(FlagOutputFormat, defaultOutputFormat, "the output format")
	flag.BoolP(FlagOutputPretty, "p", false, "output pretty format")
	flag.Bool(FlagOutputSorted, false, "sort output")
	flag.Int(FlagOutputLimit, gss.NoLimit, "maximum number of objects to send to output")
	flag.Bool(FlagOutputAppend, false, "append to output files")
	flag.Bool(FlagOutputMkdirs, false, "make directories if missing for output files")
	flag.String(FlagOutputLineSep, DefaultOutputLineSeparator, "override new line value.  Used with properties and JSONL formats.")
}
