// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package selector compiles tag selector expressions into predicates over features.
//
// Expressions use the Dynamic Filter Language (DFL).  The feature tags are
// available as attributes of the context, e.g., "@highway == 'primary'", and the
// feature metadata through the reserved attributes @_id, @_kind, @_dirty, and @_deleted.
package selector

import (
	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// Selector is a predicate over features.
type Selector interface {
	Matches(f *feature.Feature) (bool, error)
	String() string
}
