// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package selector

import (
	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// Func adapts a plain function into a Selector for hosts with their own predicate language.
type Func struct {
	Name      string
	Predicate func(f *feature.Feature) bool
}

func (s Func) Matches(f *feature.Feature) (bool, error) {
	return s.Predicate(f), nil
}

func (s Func) String() string {
	return s.Name
}

// None matches no feature.
var None Selector = Func{Name: "", Predicate: func(f *feature.Feature) bool { return false }}
