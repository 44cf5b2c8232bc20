// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/progress"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

func encodeString(t *testing.T, l Layer, asTemplate bool) string {
	buf := new(bytes.Buffer)
	enc := xml.NewEncoder(buf)
	require.NoError(t, Encode(enc, l, asTemplate, nil))
	require.NoError(t, enc.Flush())
	return buf.String()
}

func decodeString(str string, p progress.Progress) (Layer, error) {
	dec := xml.NewDecoder(strings.NewReader(str))
	for {
		token, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := token.(xml.StartElement); ok {
			return Decode(dec, start, p)
		}
	}
}

// populate sets every base field to a non-default value.
func populate(t *testing.T, l Layer) {
	l.SetDescription("a \"quoted\" <description>")
	l.SetVisible(false)
	l.SetSelected(true)
	l.SetEnabled(false)
	l.SetReadonly(true)
	l.SetUploadable(false)
	l.SetAlpha(0.5)
	_, err := l.SetDirtyLevel(3)
	require.NoError(t, err)
}

func assertSameLayer(t *testing.T, expected Layer, actual Layer, asTemplate bool) {
	assert.IsType(t, expected, actual)
	assert.Equal(t, expected.Id(), actual.Id())
	assert.Equal(t, expected.Name(), actual.Name())
	assert.Equal(t, expected.Description(), actual.Description())
	assert.Equal(t, expected.IsVisible(), actual.IsVisible())
	assert.Equal(t, expected.IsSelected(), actual.IsSelected())
	assert.Equal(t, expected.IsEnabled(), actual.IsEnabled())
	assert.Equal(t, expected.IsReadonly(), actual.IsReadonly())
	assert.Equal(t, expected.IsUploadable(), actual.IsUploadable())
	assert.Equal(t, expected.Alpha(), actual.Alpha())
	assert.Equal(t, expected.DirtyLevel(), actual.DirtyLevel())
	assert.Equal(t, expected.ClassType(), actual.ClassType())

	if _, ok := expected.(*FilterLayer); ok {
		return
	}
	if asTemplate {
		assert.Equal(t, 0, actual.Size())
		return
	}

	written := make([]*feature.Feature, 0)
	_, tombstones := expected.(*DeletedLayer)
	for _, f := range expected.Features() {
		if !f.IsDeleted() || tombstones {
			written = append(written, f)
		}
	}
	require.Equal(t, len(written), actual.Size())
	for i, f := range written {
		g, err := actual.At(i)
		require.NoError(t, err)
		assert.Equal(t, f.Id(), g.Id())
		assert.Equal(t, f.BoundingBox(), g.BoundingBox())
		assert.Equal(t, f.Tags(), g.Tags())
		assert.Equal(t, f.IsDirty(), g.IsDirty())
		assert.Equal(t, f.IsDeleted(), g.IsDeleted())
		assert.Equal(t, actual, g.Owner())
	}
	assert.NoError(t, actual.CheckConsistency())
}

func testLayers(t *testing.T) []Layer {
	drawing := NewDrawingLayer("drawing")
	track := NewTrackLayer("track", "walk.gpx")
	special := NewSpecialLayer("bugs", MapDustLayer, "bugs.geojson")
	dirty := NewDirtyLayer("dirty")
	uploaded := NewUploadedLayer("uploaded")
	deleted := NewDeletedLayer("deleted")
	fl, err := NewFilterLayer("", "filter", "@parity == 'even'")
	require.NoError(t, err)

	for i, l := range []Layer{drawing, track, special, dirty, uploaded} {
		for j := int64(1); j <= 3; j++ {
			f := newNode(int64(i)*10 + j)
			f.SetDirty(j == 2)
			require.NoError(t, l.Add(f))
		}
	}
	hidden := newNode(99)
	hidden.SetDeleted(true)
	require.NoError(t, drawing.Add(hidden))
	require.NoError(t, deleted.DeleteFeature(newNode(100)))
	require.NoError(t, deleted.DeleteFeature(newFeature(feature.KindWay, 101, feature.EmptyBox())))

	return []Layer{drawing, track, special, dirty, uploaded, deleted, fl}
}

func TestRoundTrip(t *testing.T) {
	for _, asTemplate := range []bool{false, true} {
		for _, l := range testLayers(t) {
			populate(t, l)
			str := encodeString(t, l, asTemplate)
			decoded, err := decodeString(str, nil)
			require.NoError(t, err, str)
			assertSameLayer(t, l, decoded, asTemplate)
		}
	}
}

func TestRoundTripDefaults(t *testing.T) {
	for _, l := range testLayers(t) {
		decoded, err := decodeString(encodeString(t, l, false), nil)
		require.NoError(t, err)
		assertSameLayer(t, l, decoded, false)
	}
}

func TestRoundTripVariantFields(t *testing.T) {
	for _, l := range testLayers(t) {
		decoded, err := decodeString(encodeString(t, l, false), nil)
		require.NoError(t, err)
		switch v := l.(type) {
		case *TrackLayer:
			assert.Equal(t, v.Filename(), decoded.(*TrackLayer).Filename())
		case *SpecialLayer:
			assert.Equal(t, v.Filename(), decoded.(*SpecialLayer).Filename())
			assert.Equal(t, MapDustLayer, decoded.ClassType())
		case *FilterLayer:
			assert.Equal(t, v.Filter(), decoded.(*FilterLayer).Filter())
		}
	}
}

func TestTrackLayerTemplateScenario(t *testing.T) {
	track := NewTrackLayer("morning run", "run.gpx")
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, track.Add(newFeature(feature.KindTrackPoint, i, feature.NewCoordBox(0, 0, float64(i), float64(i)))))
	}
	track.SetSelected(true)
	_, err := track.SetDirtyLevel(2)
	require.NoError(t, err)

	str := encodeString(t, track, true)
	assert.Contains(t, str, "<features></features>")

	decoded, err := decodeString(str, nil)
	require.NoError(t, err)
	d, ok := decoded.(*TrackLayer)
	require.True(t, ok)
	assert.Equal(t, 0, d.Size())
	assert.Equal(t, "morning run", d.Name())
	assert.Equal(t, "run.gpx", d.Filename())
	assert.True(t, d.IsSelected())
	assert.True(t, d.IsVisible())
	assert.Equal(t, 2, d.DirtyLevel())
}

func TestEncodeAttributeOrder(t *testing.T) {
	l := NewTrackLayer("t", "a.gpx")
	l.SetId("layer-1")
	str := encodeString(t, l, false)
	expected := `<TrackLayer id="layer-1" name="t" description="" visible="true" selected="false" enabled="true" readonly="false" uploadable="true" alpha="1" dirtylevel="0" filename="a.gpx"><features count="0"></features></TrackLayer>`
	assert.Equal(t, expected, str)
}

func TestEncodeSkipsDeletedFeatures(t *testing.T) {
	l := NewDrawingLayer("d")
	f := newNode(1)
	f.SetDeleted(true)
	require.NoError(t, l.Add(f))
	require.NoError(t, l.Add(newNode(2)))

	str := encodeString(t, l, false)
	assert.Contains(t, str, `<features count="1">`)
	assert.NotContains(t, str, `id="1"`)
}

func TestEncodeCancelled(t *testing.T) {
	l := NewDrawingLayer("d")
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, l.Add(newNode(i)))
	}
	enc := xml.NewEncoder(new(bytes.Buffer))
	err := Encode(enc, l, false, &progress.Counter{Limit: 2})
	require.Error(t, err)
	_, ok := err.(*lerrors.ErrCancelled)
	assert.True(t, ok)

	require.NoError(t, Encode(xml.NewEncoder(new(bytes.Buffer)), l, true, &progress.Counter{Limit: 1}))
}

func TestDecodeCancelled(t *testing.T) {
	l := NewDrawingLayer("d")
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, l.Add(newNode(i)))
	}
	str := encodeString(t, l, false)

	decoded, err := decodeString(str, &progress.Counter{Limit: 1})
	require.Error(t, err)
	assert.Nil(t, decoded)
	_, ok := err.(*lerrors.ErrCancelled)
	assert.True(t, ok)
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		`<DrawingLayer name="a"><features/></DrawingLayer>`,
		`<DrawingLayer id="1"><features/></DrawingLayer>`,
		`<BogusLayer id="1" name="a"><features/></BogusLayer>`,
		`<SpecialLayer id="1" name="a"><features/></SpecialLayer>`,
		`<SpecialLayer id="1" name="a" specialtype="Nope"><features/></SpecialLayer>`,
		`<SpecialLayer id="1" name="a" specialtype="Extracted"><features/></SpecialLayer>`,
		`<SpecialLayer id="1" name="a" specialtype="Image"><features/></SpecialLayer>`,
		`<SpecialLayer id="1" name="a" specialtype="Drawing"><features/></SpecialLayer>`,
		`<SpecialLayer id="1" name="a" specialtype="Undefined"><features/></SpecialLayer>`,
		`<FilterLayer id="1" name="a"><features/></FilterLayer>`,
		`<DrawingLayer id="1" name="a" visible="maybe"><features/></DrawingLayer>`,
		`<DrawingLayer id="1" name="a" alpha="x"><features/></DrawingLayer>`,
		`<DrawingLayer id="1" name="a" dirtylevel="-1"><features/></DrawingLayer>`,
		`<DrawingLayer id="1" name="a"><features><feature kind="node"/></features></DrawingLayer>`,
		`<DrawingLayer id="1" name="a"><features><feature kind="undefined" id="1"/></features></DrawingLayer>`,
		`<DrawingLayer id="1" name="a"><features><feature kind="node" id="1"/><feature kind="node" id="1"/></features></DrawingLayer>`,
		`<DrawingLayer id="1" name="a"><features>`,
	}
	for _, str := range cases {
		l, err := decodeString(str, nil)
		require.Error(t, err, str)
		assert.Nil(t, l, str)
		_, ok := err.(*lerrors.ErrMalformedDocument)
		assert.True(t, ok, str)
	}
}

func TestDecodeIgnoresUnknown(t *testing.T) {
	str := `<DrawingLayer id="1" name="a" color="red"><style width="2"/><features count="1"><feature kind="node" id="5"/><note/></features></DrawingLayer>`
	l, err := decodeString(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Size())
	assert.Equal(t, "1", l.Id())
}

func TestDecodeForcesNotUploadable(t *testing.T) {
	for _, str := range []string{
		`<SpecialLayer id="1" name="a" uploadable="true" specialtype="OsmBugs"><features/></SpecialLayer>`,
		`<DeletedLayer id="1" name="a" uploadable="true"><features/></DeletedLayer>`,
		`<FilterLayer id="1" name="a" uploadable="true" filter=""><features/></FilterLayer>`,
	} {
		l, err := decodeString(str, nil)
		require.NoError(t, err, str)
		assert.False(t, l.IsUploadable(), str)
	}
}
