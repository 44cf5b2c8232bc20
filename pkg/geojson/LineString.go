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

type LineString []Point

func (ls LineString) Type() string {
	return TypeNameLineString
}

func (ls LineString) Bounds() feature.CoordBox {
	box := feature.EmptyBox()
	for _, p := range ls {
		box.Merge(p.Bounds())
	}
	return box
}

func (ls LineString) MarshalJSON() ([]byte, error) {
	coordinates := make([][]float64, 0, len(ls))
	for _, p := range ls {
		coordinates = append(coordinates, p)
	}
	return json.Marshal(map[string]interface{}{
		"type":        TypeNameLineString,
		"coordinates": coordinates,
	})
}
