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
)

type FeatureCollection struct {
	Features []Feature `json:"features"`
}

func (fc FeatureCollection) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":     TypeNameFeatureCollection,
		"features": fc.Features,
	})
}

// Unmarshal decodes a feature collection.
func Unmarshal(b []byte) (*FeatureCollection, error) {
	fc := &FeatureCollection{}
	if err := json.Unmarshal(b, fc); err != nil {
		return nil, errors.Wrap(err, "error decoding feature collection")
	}
	return fc, nil
}
