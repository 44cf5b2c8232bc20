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

	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// TrackLayer holds an imported GPS track.
type TrackLayer struct {
	Base
	filename string
}

func NewTrackLayer(name string, filename string) *TrackLayer {
	l := &TrackLayer{filename: filename}
	l.init(l, name)
	return l
}

func (l *TrackLayer) ClassType() LayerType {
	return TrackLayerType
}

func (l *TrackLayer) ClassGroups() LayerGroups {
	return GroupTracks
}

// Filename is the file the track was imported from.
func (l *TrackLayer) Filename() string {
	return l.filename
}

// IsUploadable is always true for tracks.
func (l *TrackLayer) IsUploadable() bool {
	return true
}

func (l *TrackLayer) IsTrack() bool {
	return true
}

// Extract copies the visible track features into a new drawing layer.
// The copies get new local ids so they can be edited independently of the track.
func (l *TrackLayer) Extract(name string) (*DrawingLayer, error) {
	d := NewDrawingLayer(name)
	d.SetDescription("extracted from " + l.name)
	for _, f := range l.features {
		if f.IsDeleted() {
			continue
		}
		if err := d.Add(f.Clone(feature.NewFeatureId(f.Id().Kind))); err != nil {
			return nil, errors.Wrapf(err, "error extracting track %q", l.name)
		}
	}
	return d, nil
}

func (l *TrackLayer) Map(ctx context.Context) map[string]interface{} {
	m := l.Base.Map(ctx)
	m["filename"] = l.filename
	return m
}
