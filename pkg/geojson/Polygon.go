// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"encoding/json"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// Polygon is a list of rings.  The first ring is the exterior.
type Polygon []LineString

func (poly Polygon) Type() string {
	return TypeNamePolygon
}

func (poly Polygon) Bounds() feature.CoordBox {
	if len(poly) == 0 {
		return feature.EmptyBox()
	}
	return poly[0].Bounds()
}

func (poly Polygon) MarshalJSON() ([]byte, error) {
	rings := make([][][]float64, 0, len(poly))
	for _, ring := range poly {
		coordinates := make([][]float64, 0, len(ring))
		for _, p := range ring {
			coordinates = append(coordinates, p)
		}
		rings = append(rings, coordinates)
	}
	return json.Marshal(map[string]interface{}{
		"type":        TypeNamePolygon,
		"coordinates": rings,
	})
}
