// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

// DirtyLayer collects the locally modified features of a document.  There is one per document.
type DirtyLayer struct {
	Base
}

func NewDirtyLayer(name string) *DirtyLayer {
	l := &DirtyLayer{}
	l.init(l, name)
	return l
}

func (l *DirtyLayer) ClassType() LayerType {
	return DirtyLayerType
}

func (l *DirtyLayer) ClassGroups() LayerGroups {
	return GroupMap | GroupDraw
}

func (l *DirtyLayer) CanDelete() bool {
	return false
}
