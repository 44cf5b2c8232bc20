// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

func TestFeatureMarshalXML(t *testing.T) {
	f := New(FeatureId{Kind: KindNode, Numeric: -3}, NewCoordBox(0, 0, 1.5, 2))
	f.SetTag("amenity", "cafe")
	f.SetDirty(true)

	b, err := xml.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `<feature kind="node" id="-3" dirty="true" deleted="false" minlon="0" minlat="0" maxlon="1.5" maxlat="2"><tag k="amenity" v="cafe"></tag></feature>`, string(b))

	g := &Feature{}
	require.NoError(t, xml.Unmarshal(b, g))
	assert.Equal(t, f.Id(), g.Id())
	assert.Equal(t, f.BoundingBox(), g.BoundingBox())
	assert.Equal(t, f.Tags(), g.Tags())
	assert.True(t, g.IsDirty())
	assert.False(t, g.IsDeleted())
}

func TestFeatureMarshalXMLEmptyBox(t *testing.T) {
	f := New(FeatureId{Kind: KindWay, Numeric: 1}, EmptyBox())
	b, err := xml.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `<feature kind="way" id="1" dirty="false" deleted="false"></feature>`, string(b))

	g := &Feature{}
	require.NoError(t, xml.Unmarshal(b, g))
	assert.True(t, g.BoundingBox().IsEmpty())
}

func TestFeatureUnmarshalXMLMissingId(t *testing.T) {
	g := &Feature{}
	err := xml.Unmarshal([]byte(`<feature kind="way"></feature>`), g)
	require.Error(t, err)
	_, ok := err.(*lerrors.ErrMalformedDocument)
	assert.True(t, ok)
}

func TestFeatureUnmarshalXMLSkipsUnknown(t *testing.T) {
	g := &Feature{}
	err := xml.Unmarshal([]byte(`<feature kind="way" id="5" color="red"><style/><tag k="a" v="b"/></feature>`), g)
	require.NoError(t, err)
	assert.Equal(t, []Tag{{Key: "a", Value: "b"}}, g.Tags())
}
