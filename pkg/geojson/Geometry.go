// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

type Geometry interface {
	Type() string
	Bounds() feature.CoordBox
	json.Marshaler
}

// UnmarshalGeometry decodes a geometry object.  Unsupported geometry types return an error.
func UnmarshalGeometry(b []byte) (Geometry, error) {
	g := struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}{}
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, errors.Wrap(err, "error decoding geometry")
	}
	switch g.Type {
	case TypeNamePoint:
		p := Point{}
		if err := json.Unmarshal(g.Coordinates, &p); err != nil {
			return nil, errors.Wrap(err, "error decoding point coordinates")
		}
		if len(p) < 2 {
			return nil, errors.Errorf("invalid number of elements in point (%d), expecting at least 2", len(p))
		}
		return p, nil
	case TypeNameLineString, TypeNameMultiPoint:
		ls := LineString{}
		if err := json.Unmarshal(g.Coordinates, &ls); err != nil {
			return nil, errors.Wrapf(err, "error decoding %s coordinates", g.Type)
		}
		return ls, nil
	case TypeNamePolygon:
		poly := Polygon{}
		if err := json.Unmarshal(g.Coordinates, &poly); err != nil {
			return nil, errors.Wrap(err, "error decoding polygon coordinates")
		}
		return poly, nil
	}
	return nil, errors.Errorf("unsupported geometry type %q", g.Type)
}
