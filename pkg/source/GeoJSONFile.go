// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package source

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/geojson"
)

// GeoJSONFile reads features from a GeoJSON feature collection at a uri.
type GeoJSONFile struct {
	Uri  string
	Alg  string // compression algorithm, empty for none
	Kind feature.IdKind
}

// Features reads the whole collection.  Any invalid feature fails the read.
func (s *GeoJSONFile) Features(ctx context.Context) ([]*feature.Feature, error) {
	reader, _, err := grw.ReadFromResource(&grw.ReadFromResourceInput{
		Uri:        s.Uri,
		Alg:        s.Alg,
		Dict:       grw.NoDict,
		BufferSize: grw.DefaultBufferSize,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening %q", s.Uri)
	}
	b, err := reader.ReadAllAndClose()
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %q", s.Uri)
	}
	fc, err := geojson.Unmarshal(b)
	if err != nil {
		return nil, errors.Wrapf(err, "error decoding file %q", s.Uri)
	}
	kind := s.Kind
	if kind == feature.KindUndefined {
		kind = feature.KindSpecial
	}
	features := make([]*feature.Feature, 0, len(fc.Features))
	for i := range fc.Features {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := fc.Features[i].ToFeature(kind)
		if err != nil {
			return nil, errors.Wrapf(err, "error converting feature %d of file %q", i, s.Uri)
		}
		features = append(features, f)
	}
	return features, nil
}
