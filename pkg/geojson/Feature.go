// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/layerdoc/pkg/feature"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

type FeatureId int64

type Feature struct {
	Id         FeatureId              `json:"id" yaml:"id"`
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

func (f *Feature) Type() string {
	return TypeNameFeature
}

func (f *Feature) UnmarshalJSON(b []byte) error {
	s := struct {
		Id         FeatureId              `json:"id"`
		Properties map[string]interface{} `json:"properties"`
		Geometry   json.RawMessage        `json:"geometry"`
	}{}

	err := json.Unmarshal(b, &s)
	if err != nil {
		return errors.Wrap(err, "error decoding feature")
	}

	f.Id = s.Id
	f.Properties = s.Properties
	f.Geometry = nil

	if len(s.Geometry) > 0 && string(s.Geometry) != "null" {
		g, err := UnmarshalGeometry(s.Geometry)
		if err != nil {
			return errors.Wrapf(err, "error decoding geometry of feature %d", s.Id)
		}
		f.Geometry = g
	}

	return nil
}

func (f Feature) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"id":         f.Id,
		"type":       TypeNameFeature,
		"properties": f.Properties,
		"geometry":   f.Geometry,
	})
}

// ToFeature converts the GeoJSON feature into a document feature of the given kind.
// Properties become tags in key order.  Features without a geometry are rejected.
func (f *Feature) ToFeature(kind feature.IdKind) (*feature.Feature, error) {
	if f.Geometry == nil {
		return nil, &lerrors.ErrInvalidObject{Reason: "feature has no geometry", Value: f.Properties}
	}
	out := feature.New(feature.FeatureId{Kind: kind, Numeric: int64(f.Id)}, f.Geometry.Bounds())
	keys := make([]string, 0, len(f.Properties))
	for k := range f.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := f.Properties[k]; v != nil {
			out.SetTag(k, fmt.Sprint(v))
		}
	}
	return out, nil
}
