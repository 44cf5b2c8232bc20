// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package document implements the host that owns the layers of a document.
//
// Every document has exactly one dirty, uploaded, and deleted layer.  They are
// created with the document and cannot be removed.
package document

import (
	"context"
	"time"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/layer"
	"github.com/spatialcurrent/layerdoc/pkg/source"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

const (
	DefaultDirtyLayerName    = "Dirty layer"
	DefaultUploadedLayerName = "Uploaded layer"
	DefaultDeletedLayerName  = "Deleted layer"
)

// SourceFactory returns the feature source of a special layer.
type SourceFactory func(ctx context.Context, l *layer.SpecialLayer) (layer.FeatureSource, error)

type Document struct {
	name     string
	layers   []layer.Layer
	dirty    *layer.DirtyLayer
	uploaded *layer.UploadedLayer
	deleted  *layer.DeletedLayer
	sources  map[layer.LayerType]SourceFactory
	cacheTTL time.Duration
}

// New returns a document with its bookkeeping layers.
func New(name string) *Document {
	d := newEmpty(name)
	d.ensureBookkeeping()
	return d
}

func newEmpty(name string) *Document {
	return &Document{
		name:    name,
		layers:  make([]layer.Layer, 0),
		sources: map[layer.LayerType]SourceFactory{},
	}
}

func (d *Document) ensureBookkeeping() {
	if d.dirty == nil {
		d.dirty = layer.NewDirtyLayer(DefaultDirtyLayerName)
		d.attach(d.dirty)
	}
	if d.uploaded == nil {
		d.uploaded = layer.NewUploadedLayer(DefaultUploadedLayerName)
		d.attach(d.uploaded)
	}
	if d.deleted == nil {
		d.deleted = layer.NewDeletedLayer(DefaultDeletedLayerName)
		d.attach(d.deleted)
	}
}

func (d *Document) Name() string {
	return d.name
}

func (d *Document) SetName(name string) {
	d.name = name
}

// Layers returns the layers in order.
func (d *Document) Layers() []layer.Layer {
	layers := make([]layer.Layer, len(d.layers))
	copy(layers, d.layers)
	return layers
}

// Layer returns the layer with the given id, or nil.
func (d *Document) Layer(id string) layer.Layer {
	for _, l := range d.layers {
		if l.Id() == id {
			return l
		}
	}
	return nil
}

func (d *Document) DirtyLayer() *layer.DirtyLayer {
	return d.dirty
}

func (d *Document) UploadedLayer() *layer.UploadedLayer {
	return d.uploaded
}

func (d *Document) DeletedLayer() *layer.DeletedLayer {
	return d.deleted
}

// AddLayer appends a layer.  Layer ids must be unique and the bookkeeping layers cannot be added twice.
func (d *Document) AddLayer(l layer.Layer) error {
	if d.Layer(l.Id()) != nil {
		return &lerrors.ErrInvalidParameter{Name: "layer id", Value: l.Id()}
	}
	switch l.(type) {
	case *layer.DirtyLayer, *layer.UploadedLayer, *layer.DeletedLayer:
		return &lerrors.ErrInvalidParameter{Name: "layer type", Value: l.ClassType().String()}
	}
	d.attach(l)
	return nil
}

func (d *Document) attach(l layer.Layer) {
	l.SetDocument(d)
	if fl, ok := l.(*layer.FilterLayer); ok {
		d.applyCache(fl)
	}
	d.layers = append(d.layers, l)
}

// SetFilterCache caches the members of the filter layers of the document, current and
// future, for the duration.  A duration of zero or less disables the cache.
func (d *Document) SetFilterCache(ttl time.Duration) {
	d.cacheTTL = ttl
	for _, l := range d.layers {
		if fl, ok := l.(*layer.FilterLayer); ok {
			d.applyCache(fl)
		}
	}
}

func (d *Document) applyCache(fl *layer.FilterLayer) {
	if d.cacheTTL > 0 {
		fl.EnableCache(d.cacheTTL)
	} else {
		fl.DisableCache()
	}
}

// RemoveLayer removes a layer that can be deleted.
// The features of the layer are not deleted, they are released by the layer.
func (d *Document) RemoveLayer(l layer.Layer) error {
	if !l.CanDelete() {
		return &lerrors.ErrUndeletableLayer{Name: l.Name(), Type: l.ClassType().String()}
	}
	for i, x := range d.layers {
		if x == l {
			d.layers = append(d.layers[:i], d.layers[i+1:]...)
			if _, ok := l.(*layer.FilterLayer); !ok {
				if err := l.Clear(); err != nil {
					return err
				}
			}
			l.SetDocument(nil)
			return nil
		}
	}
	return &lerrors.ErrMissingObject{Type: "layer", Name: l.Id()}
}

// MoveLayer moves the layer to position i, changing the draw order.
func (d *Document) MoveLayer(l layer.Layer, i int) error {
	if i < 0 || i >= len(d.layers) {
		return &lerrors.ErrIndexOutOfRange{Index: i, Size: len(d.layers)}
	}
	for j, x := range d.layers {
		if x == l {
			d.layers = append(d.layers[:j], d.layers[j+1:]...)
			d.layers = append(d.layers[:i], append([]layer.Layer{l}, d.layers[i:]...)...)
			return nil
		}
	}
	return &lerrors.ErrMissingObject{Type: "layer", Name: l.Id()}
}

// BoundingBox returns the union of the boxes of the map, drawing, and track layers.
func (d *Document) BoundingBox() feature.CoordBox {
	box := feature.EmptyBox()
	for _, l := range d.layers {
		if layer.IsFilterable(l) {
			box.Merge(l.BoundingBox())
		}
	}
	return box
}

// RegisterSource sets the source factory for special layers of the given type.
func (d *Document) RegisterSource(t layer.LayerType, factory SourceFactory) {
	d.sources[t] = factory
}

// ResolveFeatureSource returns the registered source for the type of the layer.
// Without a registered source, layers with a filename are read as GeoJSON files.
func (d *Document) ResolveFeatureSource(ctx context.Context, l *layer.SpecialLayer) (layer.FeatureSource, error) {
	if factory, ok := d.sources[l.ClassType()]; ok {
		return factory(ctx, l)
	}
	if len(l.Filename()) > 0 {
		return &source.GeoJSONFile{Uri: l.Filename(), Kind: feature.KindSpecial}, nil
	}
	return nil, &lerrors.ErrMissingObject{Type: "feature source", Name: l.ClassType().String()}
}

// RefreshSpecialLayers refreshes every special layer.  It stops at the first failure.
func (d *Document) RefreshSpecialLayers(ctx context.Context) error {
	for _, l := range d.layers {
		if s, ok := l.(*layer.SpecialLayer); ok {
			if err := s.Refresh(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindFeature searches the layers in order for a feature with the given id.
func (d *Document) FindFeature(id feature.FeatureId) (*feature.Feature, layer.Layer) {
	for _, l := range d.layers {
		if _, ok := l.(*layer.FilterLayer); ok {
			continue
		}
		if f := l.Find(id); f != nil {
			return f, l
		}
	}
	return nil, nil
}
