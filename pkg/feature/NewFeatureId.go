// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	"sync/atomic"
)

var lastNewId int64

// NewFeatureId allocates a process-unique local id of the given kind.
func NewFeatureId(kind IdKind) FeatureId {
	return FeatureId{Kind: kind, Numeric: atomic.AddInt64(&lastNewId, -1)}
}
