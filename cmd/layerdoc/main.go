// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// layerdoc is the command line interface for layer documents.
//
// Usage
//
//	layerdoc info map.xml
//	layerdoc filter map.xml -e "@highway == 'residential'"
//	layerdoc template export map.xml -o template.xml
//
package main

import (
	"fmt"
	"os"

	"github.com/spatialcurrent/layerdoc/pkg/cli"
)

var gitBranch string
var gitCommit string

func main() {
	if err := cli.Execute(gitBranch, gitCommit); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
