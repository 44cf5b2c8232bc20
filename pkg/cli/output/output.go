// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package output contains the flags for serializing command results.
package output

const (
	FlagOutputUri         = "output-uri"
	FlagOutputCompression = "output-compression"
	FlagOutputFormat      = "output-format"
	FlagOutputPretty      = "output-pretty"
	FlagOutputSorted      = "output-sorted"
	FlagOutputLimit       = "output-limit"
	FlagOutputAppend      = "output-append"
	FlagOutputMkdirs      = "output-mkdirs"
	FlagOutputLineSep     = "output-line-separator"

	DefaultOutputUri           = "stdout"
	DefaultOutputLineSeparator = "\n"
)
