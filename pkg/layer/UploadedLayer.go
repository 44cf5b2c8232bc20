// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

// UploadedLayer collects the features that were successfully uploaded.  There is one per document.
type UploadedLayer struct {
	Base
}

func NewUploadedLayer(name string) *UploadedLayer {
	l := &UploadedLayer{}
	l.init(l, name)
	return l
}

func (l *UploadedLayer) ClassType() LayerType {
	return UploadedLayerType
}

func (l *UploadedLayer) ClassGroups() LayerGroups {
	return GroupMap | GroupDraw
}

func (l *UploadedLayer) CanDelete() bool {
	return false
}
