// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package document

import (
	"io"

	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"

	"github.com/spatialcurrent/layerdoc/pkg/progress"
)

type DecodeInput struct {
	Reader   io.Reader
	Progress progress.Progress
	Logger   *gsl.Logger // optional
}
