// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"fmt"
)

// ErrDuplicateFeature is returned when a feature id is already indexed by a layer.
type ErrDuplicateFeature struct {
	Layer string
	Id    string
}

func (e *ErrDuplicateFeature) Error() string {
	return fmt.Sprintf("layer %q already contains feature %s", e.Layer, e.Id)
}
