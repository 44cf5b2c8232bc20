// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/layer"
	"github.com/spatialcurrent/layerdoc/pkg/source"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

func node(numeric int64) *feature.Feature {
	f := feature.New(feature.FeatureId{Kind: feature.KindNode, Numeric: numeric}, feature.NewCoordBox(float64(numeric), 0, float64(numeric), 1))
	if numeric%2 == 0 {
		f.SetTag("parity", "even")
	} else {
		f.SetTag("parity", "odd")
	}
	return f
}

func TestNew(t *testing.T) {
	d := New("test")
	assert.Equal(t, "test", d.Name())
	require.Len(t, d.Layers(), 3)
	assert.NotNil(t, d.DirtyLayer())
	assert.NotNil(t, d.UploadedLayer())
	assert.NotNil(t, d.DeletedLayer())
	for _, l := range d.Layers() {
		assert.Equal(t, layer.Document(d), l.Document())
	}
	assert.Equal(t, layer.Layer(d.DirtyLayer()), d.Layer(d.DirtyLayer().Id()))
	assert.Nil(t, d.Layer("missing"))
}

func TestRemoveBookkeepingLayer(t *testing.T) {
	d := New("test")
	for _, l := range []layer.Layer{d.DirtyLayer(), d.UploadedLayer(), d.DeletedLayer()} {
		err := d.RemoveLayer(l)
		require.Error(t, err)
		_, ok := err.(*lerrors.ErrUndeletableLayer)
		assert.True(t, ok)
	}
	assert.Len(t, d.Layers(), 3)
}

func TestAddRemoveLayer(t *testing.T) {
	d := New("test")
	drawing := layer.NewDrawingLayer("drawing")
	f := node(1)
	require.NoError(t, drawing.Add(f))

	require.NoError(t, d.AddLayer(drawing))
	assert.Len(t, d.Layers(), 4)
	assert.Equal(t, layer.Document(d), drawing.Document())

	assert.Error(t, d.AddLayer(drawing))
	assert.Error(t, d.AddLayer(layer.NewDirtyLayer("second dirty")))

	require.NoError(t, d.RemoveLayer(drawing))
	assert.Len(t, d.Layers(), 3)
	assert.Nil(t, drawing.Document())
	assert.Nil(t, f.Owner())

	err := d.RemoveLayer(drawing)
	require.Error(t, err)
	_, ok := err.(*lerrors.ErrMissingObject)
	assert.True(t, ok)
}

func TestMoveLayer(t *testing.T) {
	d := New("test")
	drawing := layer.NewDrawingLayer("drawing")
	require.NoError(t, d.AddLayer(drawing))

	require.NoError(t, d.MoveLayer(drawing, 0))
	assert.Equal(t, layer.Layer(drawing), d.Layers()[0])
	assert.Len(t, d.Layers(), 4)

	assert.Error(t, d.MoveLayer(drawing, 4))
	assert.Error(t, d.MoveLayer(layer.NewDrawingLayer("other"), 0))
}

func TestBoundingBox(t *testing.T) {
	d := New("test")
	drawing := layer.NewDrawingLayer("drawing")
	require.NoError(t, drawing.Add(node(1)))
	require.NoError(t, drawing.Add(node(3)))
	special := layer.NewSpecialLayer("bugs", layer.OsmBugsLayer, "")
	require.NoError(t, special.Add(node(100)))
	require.NoError(t, d.AddLayer(drawing))
	require.NoError(t, d.AddLayer(special))

	assert.Equal(t, []float64{1, 0, 3, 1}, d.BoundingBox().Extent())
}

func TestFilterLayerInDocument(t *testing.T) {
	d := New("test")
	drawing := layer.NewDrawingLayer("drawing")
	for i := int64(1); i <= 4; i++ {
		require.NoError(t, drawing.Add(node(i)))
	}
	require.NoError(t, d.AddLayer(drawing))
	require.NoError(t, d.DirtyLayer().Add(node(6)))

	fl, err := layer.NewFilterLayer("", "even", "@parity == 'even'")
	require.NoError(t, err)
	require.NoError(t, d.AddLayer(fl))

	members, err := fl.Members()
	require.NoError(t, err)
	numerics := make([]int64, 0)
	for _, f := range members {
		numerics = append(numerics, f.Id().Numeric)
	}
	assert.Equal(t, []int64{6, 2, 4}, numerics)

	f, l := d.FindFeature(feature.FeatureId{Kind: feature.KindNode, Numeric: 4})
	require.NotNil(t, f)
	assert.Equal(t, layer.Layer(drawing), l)
}

func TestResolveFeatureSource(t *testing.T) {
	d := New("test")
	ctx := context.Background()

	named := layer.NewSpecialLayer("bugs", layer.OsmBugsLayer, "bugs.geojson")
	s, err := d.ResolveFeatureSource(ctx, named)
	require.NoError(t, err)
	assert.Equal(t, &source.GeoJSONFile{Uri: "bugs.geojson", Kind: feature.KindSpecial}, s)

	unnamed := layer.NewSpecialLayer("dust", layer.MapDustLayer, "")
	_, err = d.ResolveFeatureSource(ctx, unnamed)
	require.Error(t, err)
	_, ok := err.(*lerrors.ErrMissingObject)
	assert.True(t, ok)

	static := &source.Static{Items: []*feature.Feature{node(1)}}
	d.RegisterSource(layer.MapDustLayer, func(ctx context.Context, l *layer.SpecialLayer) (layer.FeatureSource, error) {
		return static, nil
	})
	s, err = d.ResolveFeatureSource(ctx, unnamed)
	require.NoError(t, err)
	assert.Equal(t, static, s)
}

func TestRefreshSpecialLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bugs.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "id": 1, "properties": {"status": "open"}, "geometry": {"type": "Point", "coordinates": [1, 2]}}
	]}`), 0644))

	d := New("test")
	bugs := layer.NewSpecialLayer("bugs", layer.OsmBugsLayer, path)
	dust := layer.NewSpecialLayer("dust", layer.MapDustLayer, "")
	require.NoError(t, d.AddLayer(bugs))
	require.NoError(t, d.AddLayer(dust))
	d.RegisterSource(layer.MapDustLayer, func(ctx context.Context, l *layer.SpecialLayer) (layer.FeatureSource, error) {
		return &source.Static{Items: []*feature.Feature{node(7), node(8)}}, nil
	})

	require.NoError(t, d.RefreshSpecialLayers(context.Background()))
	assert.Equal(t, 1, bugs.Size())
	assert.Equal(t, 2, dust.Size())
}

func TestMarkUploaded(t *testing.T) {
	d := New("test")
	f := node(-1)
	f.SetDirty(true)
	require.NoError(t, d.DirtyLayer().Add(f))

	permanent := feature.FeatureId{Kind: feature.KindNode, Numeric: 1001}
	require.NoError(t, d.MarkUploaded(f, permanent))

	assert.Equal(t, permanent, f.Id())
	assert.False(t, f.IsDirty())
	assert.Equal(t, 0, d.DirtyLayer().Size())
	assert.Equal(t, f, d.UploadedLayer().Find(permanent))
	assert.Equal(t, layer.Layer(d.UploadedLayer()), f.Owner())
	assert.NoError(t, d.UploadedLayer().CheckConsistency())
	assert.NoError(t, d.DirtyLayer().CheckConsistency())
}

func TestMarkUploadedOtherLayer(t *testing.T) {
	d := New("test")
	drawing := layer.NewDrawingLayer("drawing")
	require.NoError(t, d.AddLayer(drawing))
	f := node(-2)
	require.NoError(t, drawing.Add(f))

	permanent := feature.FeatureId{Kind: feature.KindNode, Numeric: 2002}
	require.NoError(t, d.MarkUploaded(f, permanent))
	assert.Equal(t, f, drawing.Find(permanent))
	assert.NoError(t, drawing.CheckConsistency())
	assert.Equal(t, 0, d.UploadedLayer().Size())
}

func TestMarkUploadedTakenId(t *testing.T) {
	d := New("test")
	permanent := feature.FeatureId{Kind: feature.KindNode, Numeric: 7}
	require.NoError(t, d.UploadedLayer().Add(node(7)))
	f := node(-7)
	f.SetDirty(true)
	require.NoError(t, d.DirtyLayer().Add(f))
	old := f.Id()

	err := d.MarkUploaded(f, permanent)
	require.Error(t, err)
	_, ok := err.(*lerrors.ErrDuplicateFeature)
	assert.True(t, ok)

	assert.Equal(t, old, f.Id())
	assert.True(t, f.IsDirty())
	assert.Equal(t, layer.Layer(d.DirtyLayer()), f.Owner())
	assert.Equal(t, f, d.DirtyLayer().Find(old))
	found, _ := d.FindFeature(old)
	assert.Equal(t, f, found)
	assert.Equal(t, 1, d.UploadedLayer().Size())
	assert.NoError(t, d.DirtyLayer().CheckConsistency())
	assert.NoError(t, d.UploadedLayer().CheckConsistency())
}

func TestMarkUploadedUndefinedKind(t *testing.T) {
	d := New("test")
	f := node(-8)
	require.NoError(t, d.DirtyLayer().Add(f))

	err := d.MarkUploaded(f, feature.FeatureId{Numeric: 8})
	require.Error(t, err)
	_, ok := err.(*lerrors.ErrInvalidParameter)
	assert.True(t, ok)
	assert.Equal(t, f, d.DirtyLayer().Find(f.Id()))
}

func TestSetFilterCache(t *testing.T) {
	d := New("test")
	before, err := layer.NewFilterLayer("", "before", "@parity == 'even'")
	require.NoError(t, err)
	require.NoError(t, d.AddLayer(before))
	assert.False(t, before.IsCached())

	d.SetFilterCache(time.Minute)
	assert.True(t, before.IsCached())

	after, err := layer.NewFilterLayer("", "after", "@parity == 'odd'")
	require.NoError(t, err)
	require.NoError(t, d.AddLayer(after))
	assert.True(t, after.IsCached())

	d.SetFilterCache(0)
	assert.False(t, before.IsCached())
	assert.False(t, after.IsCached())
}

func TestDeleteFeature(t *testing.T) {
	d := New("test")
	drawing := layer.NewDrawingLayer("drawing")
	require.NoError(t, d.AddLayer(drawing))
	uploaded, local := node(5), node(-5)
	require.NoError(t, drawing.Add(uploaded))
	require.NoError(t, drawing.Add(local))

	require.NoError(t, d.DeleteFeature(uploaded))
	require.NoError(t, d.DeleteFeature(local))

	assert.Equal(t, 0, drawing.Size())
	assert.True(t, uploaded.IsDeleted())
	assert.True(t, local.IsDeleted())
	assert.True(t, d.DeletedLayer().Exists(uploaded))
	assert.False(t, d.DeletedLayer().Exists(local))
	assert.Equal(t, layer.Layer(d.DeletedLayer()), uploaded.Owner())
}
