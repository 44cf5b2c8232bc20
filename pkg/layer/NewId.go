// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"github.com/oklog/ulid/v2"
)

// NewId returns a new layer id.  Ids sort by creation time.
func NewId() string {
	return ulid.Make().String()
}
