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

type Point []float64

func (p Point) Type() string {
	return TypeNamePoint
}

func (p Point) Bounds() feature.CoordBox {
	if len(p) < 2 {
		return feature.EmptyBox()
	}
	return feature.NewCoordBox(p[0], p[1], p[0], p[1])
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":        TypeNamePoint,
		"coordinates": []float64(p),
	})
}
