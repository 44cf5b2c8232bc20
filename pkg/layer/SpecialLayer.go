// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"context"

	"github.com/pkg/errors"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// SpecialLayer is a track-like layer whose contents come from an external source,
// e.g., a bug tracker.  Its class type is chosen at construction.
type SpecialLayer struct {
	Base
	filename    string
	specialType LayerType
}

func NewSpecialLayer(name string, specialType LayerType, filename string) *SpecialLayer {
	l := &SpecialLayer{filename: filename, specialType: specialType}
	l.init(l, name)
	l.uploadable = false
	return l
}

func (l *SpecialLayer) ClassType() LayerType {
	return l.specialType
}

func (l *SpecialLayer) ClassGroups() LayerGroups {
	return GroupSpecial
}

func (l *SpecialLayer) Filename() string {
	return l.filename
}

// IsUploadable is always false for special layers.
func (l *SpecialLayer) IsUploadable() bool {
	return false
}

// SetUploadable is ignored.
func (l *SpecialLayer) SetUploadable(b bool) {
}

func (l *SpecialLayer) IsTrack() bool {
	return true
}

// Refresh replaces the contents of the layer with the current state of its source.
// The new contents are loaded completely before they are swapped in.  On error the layer is unchanged.
func (l *SpecialLayer) Refresh(ctx context.Context) error {
	if l.document == nil {
		return &lerrors.ErrSourceFailed{Layer: l.name, Err: errors.New("layer is not attached to a document")}
	}
	src, err := l.document.ResolveFeatureSource(ctx, l)
	if err != nil {
		return &lerrors.ErrSourceFailed{Layer: l.name, Err: errors.Wrap(err, "error resolving feature source")}
	}
	features, err := src.Features(ctx)
	if err != nil {
		return &lerrors.ErrSourceFailed{Layer: l.name, Err: errors.Wrap(err, "error reading features")}
	}
	if err := l.replace(features); err != nil {
		return &lerrors.ErrSourceFailed{Layer: l.name, Err: err}
	}
	return nil
}

func (l *SpecialLayer) Map(ctx context.Context) map[string]interface{} {
	m := l.Base.Map(ctx)
	m["filename"] = l.filename
	m["specialType"] = l.specialType.String()
	return m
}
