// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package cli contains the command line interface of layerdoc.
package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/layerdoc/pkg/cli/filter"
	"github.com/spatialcurrent/layerdoc/pkg/cli/formats"
	"github.com/spatialcurrent/layerdoc/pkg/cli/info"
	"github.com/spatialcurrent/layerdoc/pkg/cli/refresh"
	"github.com/spatialcurrent/layerdoc/pkg/cli/template"
	"github.com/spatialcurrent/layerdoc/pkg/cli/version"
)

// Execute handles command line calls to layerdoc.
func Execute(gitBranch string, gitCommit string) error {

	//
	// Root Command
	//

	var rootCmd = &cobra.Command{
		Use:   "layerdoc",
		Short: "a tool for inspecting and editing layer documents",
		Long: `layerdoc is a tool for inspecting and editing layer documents.
Through go-simple-serializer, supports the follow output formats: ` + strings.Join(gss.Formats, ", "),
		SilenceUsage: true,
	}
	InitRootFlags(rootCmd.PersistentFlags())

	//
	// Completion Command
	//

	completionCommandLong := ""
	if _, err := os.Stat("/etc/bash_completion.d/"); !os.IsNotExist(err) {
		completionCommandLong = "To install completion scripts run:\nlayerdoc completion > /etc/bash_completion.d/layerdoc"
	} else {
		completionCommandLong = "To install completion scripts run:\nlayerdoc completion > .../bash_completion.d/layerdoc"
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long:  completionCommandLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(os.Stdout)
		},
	})

	rootCmd.AddCommand(version.NewCommand(&version.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	rootCmd.AddCommand(info.NewCommand())
	rootCmd.AddCommand(filter.NewCommand())
	rootCmd.AddCommand(refresh.NewCommand())
	rootCmd.AddCommand(template.NewCommand())
	rootCmd.AddCommand(formats.NewCommand())

	return rootCmd.ExecuteContext(context.Background())
}
