// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

// Feature is a tagged geographic entity with a bounding box.
// Features are owned by the document.  Layers only index them.
type Feature struct {
	id       FeatureId
	box      CoordBox
	tags     []Tag
	dirty    bool
	deleted  bool
	owner    Owner
	revision uint64
}

func New(id FeatureId, box CoordBox) *Feature {
	return &Feature{
		id:   id,
		box:  box,
		tags: make([]Tag, 0),
	}
}

func (f *Feature) Id() FeatureId {
	return f.id
}

// SetId changes the identity of the feature and returns the old id.
// The owning layer is not re-keyed, the caller must call NotifyIdUpdate on it.
func (f *Feature) SetId(id FeatureId) FeatureId {
	old := f.id
	f.id = id
	f.touch()
	return old
}

func (f *Feature) BoundingBox() CoordBox {
	return f.box
}

func (f *Feature) SetBoundingBox(box CoordBox) {
	f.box = box
	f.touch()
}

// Tags returns a copy of the tags in insertion order.
func (f *Feature) Tags() []Tag {
	tags := make([]Tag, len(f.tags))
	copy(tags, f.tags)
	return tags
}

func (f *Feature) Tag(key string) (string, bool) {
	for _, t := range f.tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// SetTag replaces the value of an existing tag or appends a new one.
func (f *Feature) SetTag(key string, value string) {
	defer f.touch()
	for i, t := range f.tags {
		if t.Key == key {
			f.tags[i].Value = value
			return
		}
	}
	f.tags = append(f.tags, Tag{Key: key, Value: value})
}

func (f *Feature) ClearTag(key string) {
	for i, t := range f.tags {
		if t.Key == key {
			f.tags = append(f.tags[:i], f.tags[i+1:]...)
			f.touch()
			return
		}
	}
}

func (f *Feature) IsDirty() bool {
	return f.dirty
}

func (f *Feature) SetDirty(dirty bool) {
	f.dirty = dirty
	f.touch()
}

// IsDeleted returns true if the feature was removed from the visible document
// but is retained so the removal can be undone or uploaded.
func (f *Feature) IsDeleted() bool {
	return f.deleted
}

func (f *Feature) SetDeleted(deleted bool) {
	f.deleted = deleted
	f.touch()
}

func (f *Feature) Owner() Owner {
	return f.owner
}

// SetOwner records the layer indexing the feature.  Use nil to release it.
func (f *Feature) SetOwner(owner Owner) {
	f.owner = owner
}

// Revision increases every time the feature is modified.
func (f *Feature) Revision() uint64 {
	return f.revision
}

// Clone returns an unowned copy of the feature with the given id.
func (f *Feature) Clone(id FeatureId) *Feature {
	return &Feature{
		id:      id,
		box:     f.box,
		tags:    f.Tags(),
		dirty:   f.dirty,
		deleted: f.deleted,
	}
}

// Map returns the feature as a map for expression evaluation.
// Tags are top-level keys.  The feature metadata uses the reserved keys _id, _kind, _dirty, and _deleted.
func (f *Feature) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(f.tags)+4)
	for _, t := range f.tags {
		m[t.Key] = t.Value
	}
	m["_id"] = f.id.Numeric
	m["_kind"] = f.id.Kind.String()
	m["_dirty"] = f.dirty
	m["_deleted"] = f.deleted
	return m
}

func (f *Feature) touch() {
	f.revision++
	if f.owner != nil {
		f.owner.Touch()
	}
}
