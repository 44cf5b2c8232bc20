// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package source

import (
	"context"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// Static returns a fixed set of features, or a fixed error.
type Static struct {
	Items []*feature.Feature
	Err   error
}

func (s *Static) Features(ctx context.Context) ([]*feature.Feature, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	features := make([]*feature.Feature, len(s.Items))
	copy(features, s.Items)
	return features, nil
}
