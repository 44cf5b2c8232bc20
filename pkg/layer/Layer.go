// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package layer implements the typed layers of a document and their serialization.
//
// The set of layer variants is closed: DrawingLayer, TrackLayer, SpecialLayer,
// DirtyLayer, UploadedLayer, DeletedLayer, and FilterLayer.  Every variant embeds
// Base, which holds the ordered feature references and the id index.
//
// Layers are not safe for concurrent use.  A host that shares a document between
// goroutines must serialize all mutating calls itself.
package layer

import (
	"context"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// NotFound is returned by IndexOf when the feature is not in the layer.
const NotFound = -1

// Layer is the contract shared by every layer variant.
type Layer interface {
	feature.Owner

	SetId(id string)
	Name() string
	SetName(name string)
	Description() string
	SetDescription(description string)

	IsVisible() bool
	SetVisible(b bool)
	IsSelected() bool
	SetSelected(b bool)
	IsEnabled() bool
	SetEnabled(b bool)
	IsReadonly() bool
	SetReadonly(b bool)
	IsUploadable() bool
	SetUploadable(b bool)
	Alpha() float64
	SetAlpha(alpha float64)

	Add(f *feature.Feature) error
	Remove(f *feature.Feature) error
	DeleteFeature(f *feature.Feature) error
	Clear() error
	DeleteAll() error

	Exists(f *feature.Feature) bool
	Size() int
	DisplaySize() int
	DirtySize() int
	IndexOf(f *feature.Feature) int
	Features() []*feature.Feature
	At(i int) (*feature.Feature, error)
	Find(id feature.FeatureId) *feature.Feature
	NotifyIdUpdate(old feature.FeatureId, f *feature.Feature)

	DirtyLevel() int
	IncDirtyLevel(n int) (int, error)
	DecDirtyLevel(n int) (int, error)
	SetDirtyLevel(n int) (int, error)

	BoundingBox() feature.CoordBox
	ClassType() LayerType
	ClassGroups() LayerGroups
	CanDelete() bool
	IsTrack() bool

	Document() Document
	SetDocument(d Document)
	Revision() uint64
	CheckConsistency() error
	Map(ctx context.Context) map[string]interface{}

	base() *Base
}
