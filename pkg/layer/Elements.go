// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

const (
	ElementDrawingLayer  = "DrawingLayer"
	ElementTrackLayer    = "TrackLayer"
	ElementSpecialLayer  = "SpecialLayer"
	ElementDirtyLayer    = "DirtyLayer"
	ElementUploadedLayer = "UploadedLayer"
	ElementDeletedLayer  = "DeletedLayer"
	ElementFilterLayer   = "FilterLayer"
	ElementFeatures      = "features"
)

// Elements are the type tags of the serialized layer variants.
var Elements = []string{
	ElementDrawingLayer,
	ElementTrackLayer,
	ElementSpecialLayer,
	ElementDirtyLayer,
	ElementUploadedLayer,
	ElementDeletedLayer,
	ElementFilterLayer,
}

// IsElement returns true if name is the type tag of a layer variant.
func IsElement(name string) bool {
	for _, e := range Elements {
		if e == name {
			return true
		}
	}
	return false
}

// ElementName returns the type tag of the variant of l.
func ElementName(l Layer) string {
	switch l.(type) {
	case *DrawingLayer:
		return ElementDrawingLayer
	case *TrackLayer:
		return ElementTrackLayer
	case *SpecialLayer:
		return ElementSpecialLayer
	case *DirtyLayer:
		return ElementDirtyLayer
	case *UploadedLayer:
		return ElementUploadedLayer
	case *DeletedLayer:
		return ElementDeletedLayer
	case *FilterLayer:
		return ElementFilterLayer
	}
	return ""
}
