// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"context"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/selector"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// FilterLayer is a derived view over the features of the other layers of its document.
// Its members are the features selected by its expression.  They are computed on
// demand and cannot be edited through the filter layer.
type FilterLayer struct {
	Base
	expression string
	selector   selector.Selector
	cache      *gocache.Cache
}

// NewFilterLayer returns a filter layer for the given tag selector expression.
func NewFilterLayer(id string, name string, expression string) (*FilterLayer, error) {
	s, err := selector.Compile(expression)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating filter layer %q", name)
	}
	l := &FilterLayer{expression: expression, selector: s}
	l.init(l, name)
	if len(id) > 0 {
		l.id = id
	}
	l.uploadable = false
	return l, nil
}

// NewFilterLayerWithSelector returns a filter layer for a selector supplied by the host.
// The selector is serialized by its String value and decoded as an expression.
func NewFilterLayerWithSelector(id string, name string, s selector.Selector) *FilterLayer {
	l := &FilterLayer{expression: s.String(), selector: s}
	l.init(l, name)
	if len(id) > 0 {
		l.id = id
	}
	l.uploadable = false
	return l
}

func (l *FilterLayer) ClassType() LayerType {
	return FilterLayerType
}

func (l *FilterLayer) ClassGroups() LayerGroups {
	return GroupFilters
}

// SetFilter replaces the selector expression.  On error the previous selector is kept.
func (l *FilterLayer) SetFilter(expression string) error {
	s, err := selector.Compile(expression)
	if err != nil {
		return errors.Wrapf(err, "error setting filter of layer %q", l.name)
	}
	l.expression = expression
	l.selector = s
	l.mutated()
	return nil
}

func (l *FilterLayer) SetSelector(s selector.Selector) {
	l.expression = s.String()
	l.selector = s
	l.mutated()
}

// Filter returns the selector expression.
func (l *FilterLayer) Filter() string {
	return l.expression
}

func (l *FilterLayer) Selector() selector.Selector {
	return l.selector
}

// EnableCache keeps computed memberships for ttl.  Cached memberships are keyed by
// the revisions of the sibling layers and their features, so any change to them
// bypasses the cache.
func (l *FilterLayer) EnableCache(ttl time.Duration) {
	l.cache = gocache.New(ttl, 2*ttl)
}

func (l *FilterLayer) DisableCache() {
	l.cache = nil
}

func (l *FilterLayer) IsCached() bool {
	return l.cache != nil
}

// Members evaluates the selector over the features of the filterable sibling layers,
// in layer order then feature order.  Logically deleted features are skipped.
func (l *FilterLayer) Members() ([]*feature.Feature, error) {
	if l.document == nil || l.selector == nil {
		return make([]*feature.Feature, 0), nil
	}
	siblings := make([]Layer, 0)
	for _, s := range l.document.Layers() {
		if s.base() == &l.Base || !IsFilterable(s) {
			continue
		}
		siblings = append(siblings, s)
	}

	var key string
	if l.cache != nil {
		key = l.cacheKey(siblings)
		if item, found := l.cache.Get(key); found {
			if members, ok := item.([]*feature.Feature); ok {
				return copyFeatures(members), nil
			}
		}
	}

	members := make([]*feature.Feature, 0)
	for _, s := range siblings {
		for _, f := range s.base().features {
			if f.IsDeleted() {
				continue
			}
			ok, err := l.selector.Matches(f)
			if err != nil {
				return make([]*feature.Feature, 0), errors.Wrapf(err, "error evaluating filter layer %q", l.name)
			}
			if ok {
				members = append(members, f)
			}
		}
	}

	if l.cache != nil {
		l.cache.Set(key, copyFeatures(members), gocache.DefaultExpiration)
	}

	return members, nil
}

func (l *FilterLayer) cacheKey(siblings []Layer) string {
	var sb strings.Builder
	sb.WriteString(l.expression)
	sb.WriteString("|")
	sb.WriteString(strconv.FormatUint(l.revision, 10))
	for _, s := range siblings {
		sb.WriteString("|")
		sb.WriteString(s.Id())
		sb.WriteString(":")
		sb.WriteString(strconv.FormatUint(s.Revision(), 10))
		sb.WriteString(":")
		sb.WriteString(strconv.FormatUint(featureRevisions(s), 10))
	}
	return sb.String()
}

// featureRevisions sums the revisions of the layer's features.  A feature shared with
// another layer may have lost its owner, so its changes do not reach the layer revision.
func featureRevisions(l Layer) uint64 {
	sum := uint64(0)
	for _, f := range l.base().features {
		sum += f.Revision()
	}
	return sum
}

// Features returns the current members.  Features the selector fails on are treated as not selected.
func (l *FilterLayer) Features() []*feature.Feature {
	members, err := l.Members()
	if err != nil {
		return l.members()
	}
	return members
}

// members evaluates the selector feature by feature, skipping evaluation errors.
func (l *FilterLayer) members() []*feature.Feature {
	members := make([]*feature.Feature, 0)
	if l.document == nil || l.selector == nil {
		return members
	}
	for _, s := range l.document.Layers() {
		if s.base() == &l.Base || !IsFilterable(s) {
			continue
		}
		for _, f := range s.base().features {
			if f.IsDeleted() {
				continue
			}
			if ok, err := l.selector.Matches(f); err == nil && ok {
				members = append(members, f)
			}
		}
	}
	return members
}

func (l *FilterLayer) Size() int {
	return len(l.Features())
}

func (l *FilterLayer) DisplaySize() int {
	return l.Size()
}

func (l *FilterLayer) DirtySize() int {
	n := 0
	for _, f := range l.Features() {
		if f.IsDirty() {
			n++
		}
	}
	return n
}

func (l *FilterLayer) IndexOf(f *feature.Feature) int {
	for i, g := range l.Features() {
		if g == f {
			return i
		}
	}
	return NotFound
}

func (l *FilterLayer) Exists(f *feature.Feature) bool {
	return l.IndexOf(f) != NotFound
}

func (l *FilterLayer) At(i int) (*feature.Feature, error) {
	members := l.Features()
	if i < 0 || i >= len(members) {
		return nil, &lerrors.ErrIndexOutOfRange{Index: i, Size: len(members)}
	}
	return members[i], nil
}

func (l *FilterLayer) Find(id feature.FeatureId) *feature.Feature {
	for _, f := range l.Features() {
		if f.Id() == id {
			return f
		}
	}
	return nil
}

func (l *FilterLayer) BoundingBox() feature.CoordBox {
	box := feature.EmptyBox()
	for _, f := range l.Features() {
		box.Merge(f.BoundingBox())
	}
	return box
}

// IsReadonly is always true, filter layers cannot be edited.
func (l *FilterLayer) IsReadonly() bool {
	return true
}

func (l *FilterLayer) IsUploadable() bool {
	return false
}

// SetUploadable is ignored.
func (l *FilterLayer) SetUploadable(b bool) {
}

func (l *FilterLayer) Add(f *feature.Feature) error {
	return l.unsupported("add")
}

func (l *FilterLayer) Remove(f *feature.Feature) error {
	return l.unsupported("remove")
}

func (l *FilterLayer) DeleteFeature(f *feature.Feature) error {
	return l.unsupported("deleteFeature")
}

func (l *FilterLayer) Clear() error {
	return l.unsupported("clear")
}

func (l *FilterLayer) DeleteAll() error {
	return l.unsupported("deleteAll")
}

// NotifyIdUpdate is a no-op, filter layers do not index features.
func (l *FilterLayer) NotifyIdUpdate(old feature.FeatureId, f *feature.Feature) {
}

// CheckConsistency always succeeds, there is no stored state to check.
func (l *FilterLayer) CheckConsistency() error {
	return nil
}

func (l *FilterLayer) Map(ctx context.Context) map[string]interface{} {
	m := l.Base.Map(ctx)
	m["filter"] = l.expression
	return m
}

func (l *FilterLayer) unsupported(operation string) error {
	return &lerrors.ErrUnsupportedOperation{Type: "FilterLayer", Operation: operation}
}

func copyFeatures(features []*feature.Feature) []*feature.Feature {
	c := make([]*feature.Feature, len(features))
	copy(c, features)
	return c
}
