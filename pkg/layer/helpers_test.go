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

type testDocument struct {
	layers  []Layer
	sources map[string]FeatureSource
}

func newTestDocument(layers ...Layer) *testDocument {
	d := &testDocument{sources: map[string]FeatureSource{}}
	for _, l := range layers {
		d.add(l)
	}
	return d
}

func (d *testDocument) add(l Layer) {
	l.SetDocument(d)
	d.layers = append(d.layers, l)
}

func (d *testDocument) Layers() []Layer {
	return d.layers
}

func (d *testDocument) ResolveFeatureSource(ctx context.Context, l *SpecialLayer) (FeatureSource, error) {
	if s, ok := d.sources[l.Id()]; ok {
		return s, nil
	}
	return nil, context.Canceled
}

type testSource struct {
	features []*feature.Feature
	err      error
}

func (s *testSource) Features(ctx context.Context) ([]*feature.Feature, error) {
	return s.features, s.err
}

func newFeature(kind feature.IdKind, numeric int64, box feature.CoordBox) *feature.Feature {
	return feature.New(feature.FeatureId{Kind: kind, Numeric: numeric}, box)
}

func newNode(numeric int64) *feature.Feature {
	f := newFeature(feature.KindNode, numeric, feature.NewCoordBox(float64(numeric), float64(numeric), float64(numeric), float64(numeric)))
	if numeric%2 == 0 {
		f.SetTag("parity", "even")
	} else {
		f.SetTag("parity", "odd")
	}
	return f
}
