// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// DeletedLayer retains tombstones of deleted features so deletions can be uploaded
// and survive a reload.  There is one per document.
type DeletedLayer struct {
	Base
}

func NewDeletedLayer(name string) *DeletedLayer {
	l := &DeletedLayer{}
	l.init(l, name)
	l.uploadable = false
	l.visible = false
	return l
}

func (l *DeletedLayer) ClassType() LayerType {
	return DeletedLayerType
}

func (l *DeletedLayer) ClassGroups() LayerGroups {
	return GroupNone
}

func (l *DeletedLayer) IsUploadable() bool {
	return false
}

// SetUploadable is ignored.
func (l *DeletedLayer) SetUploadable(b bool) {
}

func (l *DeletedLayer) CanDelete() bool {
	return false
}

// DeleteFeature marks the feature deleted and retains it as a tombstone.
func (l *DeletedLayer) DeleteFeature(f *feature.Feature) error {
	if !f.IsDeleted() {
		f.SetDeleted(true)
	}
	if l.Exists(f) {
		return nil
	}
	return l.Add(f)
}
