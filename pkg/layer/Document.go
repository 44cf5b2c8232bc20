// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"context"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// Document is the host that owns the layers.
type Document interface {
	// Layers returns the layers of the document in order.
	Layers() []Layer
	// ResolveFeatureSource returns the external source backing a special layer.
	ResolveFeatureSource(ctx context.Context, l *SpecialLayer) (FeatureSource, error)
}

// FeatureSource supplies the complete current contents of a special layer.
type FeatureSource interface {
	Features(ctx context.Context) ([]*feature.Feature, error)
}
