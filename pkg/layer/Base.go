// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"context"
	"fmt"
	"math"

	"github.com/spatialcurrent/layerdoc/pkg/feature"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// Base holds the state and behavior shared by all layer variants.
type Base struct {
	self        Layer
	id          string
	name        string
	description string
	features    []*feature.Feature
	index       map[feature.FeatureId]*feature.Feature
	visible     bool
	selected    bool
	enabled     bool
	readonly    bool
	uploadable  bool
	alpha       float64
	dirtyLevel  int
	document    Document
	revision    uint64
}

// init must be called by every variant constructor with the outer layer.
func (b *Base) init(self Layer, name string) {
	b.self = self
	b.id = NewId()
	b.name = name
	b.features = make([]*feature.Feature, 0)
	b.index = map[feature.FeatureId]*feature.Feature{}
	b.visible = true
	b.enabled = true
	b.uploadable = true
	b.alpha = 1.0
}

func (b *Base) base() *Base {
	return b
}

func (b *Base) Id() string {
	return b.id
}

// SetId renames the layer identity.  Ids are otherwise immutable.
func (b *Base) SetId(id string) {
	b.id = id
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) SetName(name string) {
	b.name = name
}

func (b *Base) Description() string {
	return b.description
}

func (b *Base) SetDescription(description string) {
	b.description = description
}

func (b *Base) IsVisible() bool {
	return b.visible
}

func (b *Base) SetVisible(visible bool) {
	b.visible = visible
}

func (b *Base) IsSelected() bool {
	return b.selected
}

func (b *Base) SetSelected(selected bool) {
	b.selected = selected
}

func (b *Base) IsEnabled() bool {
	return b.enabled
}

func (b *Base) SetEnabled(enabled bool) {
	b.enabled = enabled
}

func (b *Base) IsReadonly() bool {
	return b.readonly
}

func (b *Base) SetReadonly(readonly bool) {
	b.readonly = readonly
}

func (b *Base) IsUploadable() bool {
	return b.uploadable
}

func (b *Base) SetUploadable(uploadable bool) {
	b.uploadable = uploadable
}

func (b *Base) Alpha() float64 {
	return b.alpha
}

// SetAlpha sets the opacity, clamped into [0, 1].
func (b *Base) SetAlpha(alpha float64) {
	if math.IsNaN(alpha) {
		return
	}
	b.alpha = math.Max(0, math.Min(1, alpha))
}

func (b *Base) CanDelete() bool {
	return true
}

func (b *Base) IsTrack() bool {
	return false
}

func (b *Base) Document() Document {
	return b.document
}

func (b *Base) SetDocument(d Document) {
	b.document = d
}

// Touch marks the layer as changed.  Features call it when they are modified.
func (b *Base) Touch() {
	b.revision++
}

// Revision increases on every structural change of the layer or change of an indexed feature.
func (b *Base) Revision() uint64 {
	return b.revision
}

// Add appends the feature and indexes it under its current id.  Features without an id kind are rejected.
func (b *Base) Add(f *feature.Feature) error {
	if f.Id().Kind == feature.KindUndefined {
		return &lerrors.ErrInvalidParameter{Name: "feature id", Value: f.Id().String()}
	}
	if _, exists := b.index[f.Id()]; exists {
		return &lerrors.ErrDuplicateFeature{Layer: b.name, Id: f.Id().String()}
	}
	b.features = append(b.features, f)
	b.index[f.Id()] = f
	f.SetOwner(b.self)
	b.mutated()
	return nil
}

// Remove drops the feature from the layer.  Removing an absent feature is a no-op.
func (b *Base) Remove(f *feature.Feature) error {
	i := b.IndexOf(f)
	if i == NotFound {
		return nil
	}
	b.features = append(b.features[:i], b.features[i+1:]...)
	if g, ok := b.index[f.Id()]; ok && g == f {
		delete(b.index, f.Id())
	}
	b.release(f)
	b.mutated()
	return nil
}

// DeleteFeature removes the feature and marks it deleted.
func (b *Base) DeleteFeature(f *feature.Feature) error {
	if !b.Exists(f) {
		return nil
	}
	f.SetDeleted(true)
	return b.Remove(f)
}

// Clear drops every feature reference.  Flags and the dirty level are unchanged.
func (b *Base) Clear() error {
	for _, f := range b.features {
		b.release(f)
	}
	b.features = make([]*feature.Feature, 0)
	b.index = map[feature.FeatureId]*feature.Feature{}
	b.mutated()
	return nil
}

// DeleteAll marks every feature deleted and clears the layer.
func (b *Base) DeleteAll() error {
	for _, f := range b.features {
		if !f.IsDeleted() {
			f.SetDeleted(true)
		}
	}
	return b.Clear()
}

func (b *Base) Exists(f *feature.Feature) bool {
	return b.IndexOf(f) != NotFound
}

func (b *Base) Size() int {
	return len(b.features)
}

// DisplaySize is the number of features that are not logically deleted.
func (b *Base) DisplaySize() int {
	n := 0
	for _, f := range b.features {
		if !f.IsDeleted() {
			n++
		}
	}
	return n
}

// DirtySize is the number of features with their dirty flag set.
func (b *Base) DirtySize() int {
	n := 0
	for _, f := range b.features {
		if f.IsDirty() {
			n++
		}
	}
	return n
}

// IndexOf returns the position of the feature or NotFound.
func (b *Base) IndexOf(f *feature.Feature) int {
	for i, g := range b.features {
		if g == f {
			return i
		}
	}
	return NotFound
}

// Features returns a snapshot of the features in order.
func (b *Base) Features() []*feature.Feature {
	features := make([]*feature.Feature, len(b.features))
	copy(features, b.features)
	return features
}

func (b *Base) At(i int) (*feature.Feature, error) {
	if i < 0 || i >= len(b.features) {
		return nil, &lerrors.ErrIndexOutOfRange{Index: i, Size: len(b.features)}
	}
	return b.features[i], nil
}

// Find returns the feature indexed under id, or nil.
func (b *Base) Find(id feature.FeatureId) *feature.Feature {
	return b.index[id]
}

// NotifyIdUpdate re-keys the index after the id of a member feature changed from old.
// Callers that change the id of an indexed feature must call it, the layer cannot detect the change.
func (b *Base) NotifyIdUpdate(old feature.FeatureId, f *feature.Feature) {
	if g, ok := b.index[old]; ok && g == f {
		delete(b.index, old)
	}
	if !b.Exists(f) {
		b.mutated()
		return
	}
	if g, ok := b.index[f.Id()]; ok && g != f {
		// the new id belongs to another member, which keeps its entry
		if debugChecks {
			panic(&lerrors.ErrDuplicateFeature{Layer: b.name, Id: f.Id().String()})
		}
		b.revision++
		return
	}
	b.index[f.Id()] = f
	b.mutated()
}

func (b *Base) DirtyLevel() int {
	return b.dirtyLevel
}

// IncDirtyLevel adds n to the dirty level and returns the new level.
func (b *Base) IncDirtyLevel(n int) (int, error) {
	if n < 0 {
		return b.DecDirtyLevel(-n)
	}
	b.dirtyLevel += n
	return b.dirtyLevel, nil
}

// DecDirtyLevel subtracts n from the dirty level and returns the new level.
// A decrement below zero fails and leaves the level unchanged.
func (b *Base) DecDirtyLevel(n int) (int, error) {
	if n < 0 {
		return b.IncDirtyLevel(-n)
	}
	if n > b.dirtyLevel {
		return b.dirtyLevel, &lerrors.ErrDirtyLevelUnderflow{Level: b.dirtyLevel, Decrement: n}
	}
	b.dirtyLevel -= n
	return b.dirtyLevel, nil
}

// SetDirtyLevel sets the dirty level and returns the previous level.
func (b *Base) SetDirtyLevel(n int) (int, error) {
	old := b.dirtyLevel
	if n < 0 {
		return old, &lerrors.ErrInvalidParameter{Name: "dirty level", Value: n}
	}
	b.dirtyLevel = n
	return old, nil
}

// BoundingBox returns the union of the feature boxes, or the empty box.
func (b *Base) BoundingBox() feature.CoordBox {
	box := feature.EmptyBox()
	for _, f := range b.features {
		box.Merge(f.BoundingBox())
	}
	return box
}

// CheckConsistency verifies that the index holds exactly the ids of the member features.
func (b *Base) CheckConsistency() error {
	if len(b.index) != len(b.features) {
		return fmt.Errorf("layer %q indexes %d features but holds %d", b.name, len(b.index), len(b.features))
	}
	for _, f := range b.features {
		if g, ok := b.index[f.Id()]; !ok || g != f {
			return fmt.Errorf("layer %q does not index feature %s under its id", b.name, f.Id())
		}
	}
	for id, f := range b.index {
		if f.Id() != id {
			return fmt.Errorf("layer %q indexes feature %s under stale id %s", b.name, f.Id(), id)
		}
	}
	return nil
}

// Map returns a summary of the layer.
func (b *Base) Map(ctx context.Context) map[string]interface{} {
	m := map[string]interface{}{
		"id":          b.id,
		"name":        b.name,
		"description": b.description,
		"type":        b.self.ClassType().String(),
		"groups":      b.self.ClassGroups().String(),
		"visible":     b.visible,
		"selected":    b.selected,
		"enabled":     b.enabled,
		"readonly":    b.self.IsReadonly(),
		"uploadable":  b.self.IsUploadable(),
		"alpha":       b.alpha,
		"dirtyLevel":  b.dirtyLevel,
		"size":        b.self.Size(),
		"displaySize": b.self.DisplaySize(),
		"dirtySize":   b.self.DirtySize(),
	}
	if extent := b.self.BoundingBox().Extent(); extent != nil {
		m["extent"] = extent
	}
	return m
}

// replace swaps in a new feature set after checking it for duplicate ids.
// On error the layer is unchanged.
func (b *Base) replace(features []*feature.Feature) error {
	index := make(map[feature.FeatureId]*feature.Feature, len(features))
	for _, f := range features {
		if _, exists := index[f.Id()]; exists {
			return &lerrors.ErrDuplicateFeature{Layer: b.name, Id: f.Id().String()}
		}
		index[f.Id()] = f
	}
	for _, f := range b.features {
		b.release(f)
	}
	b.features = make([]*feature.Feature, len(features))
	copy(b.features, features)
	b.index = index
	for _, f := range b.features {
		f.SetOwner(b.self)
	}
	b.mutated()
	return nil
}

func (b *Base) release(f *feature.Feature) {
	if f.Owner() == b.self {
		f.SetOwner(nil)
	}
}

func (b *Base) mutated() {
	b.revision++
	if debugChecks {
		if err := b.CheckConsistency(); err != nil {
			panic(err)
		}
	}
}
