// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// LayerType is the classification tag of a layer.
type LayerType int

const (
	UndefinedType LayerType = iota
	DeletedLayerType
	DirtyLayerType
	DrawingLayerType
	ExtractedLayerType
	ImageLayerType
	TrackLayerType
	UploadedLayerType
	FilterLayerType
	OsmBugsLayer
	MapDustLayer
)

var layerTypeNames = []string{
	"Undefined",
	"Deleted",
	"Dirty",
	"Drawing",
	"Extracted",
	"Image",
	"Track",
	"Uploaded",
	"Filter",
	"OsmBugs",
	"MapDust",
}

func (t LayerType) String() string {
	if t < 0 || int(t) >= len(layerTypeNames) {
		return layerTypeNames[UndefinedType]
	}
	return layerTypeNames[t]
}

// ParseLayerType is the inverse of LayerType.String.
func ParseLayerType(str string) (LayerType, error) {
	for i, name := range layerTypeNames {
		if name == str {
			return LayerType(i), nil
		}
	}
	return UndefinedType, &lerrors.ErrInvalidParameter{Name: "layer type", Value: str}
}

// IsSpecialType reports whether a SpecialLayer can carry the type.
func IsSpecialType(t LayerType) bool {
	return t == OsmBugsLayer || t == MapDustLayer
}
