// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayerType(t *testing.T) {
	for _, lt := range []LayerType{DeletedLayerType, DirtyLayerType, DrawingLayerType, TrackLayerType, UploadedLayerType, FilterLayerType, OsmBugsLayer, MapDustLayer} {
		parsed, err := ParseLayerType(lt.String())
		require.NoError(t, err)
		assert.Equal(t, lt, parsed)
	}
	_, err := ParseLayerType("Nope")
	assert.Error(t, err)
	assert.Equal(t, "Undefined", LayerType(100).String())
}

func TestLayerGroups(t *testing.T) {
	assert.True(t, (GroupMap | GroupDraw).Has(GroupDraw))
	assert.False(t, GroupTracks.Has(GroupMap|GroupDraw))
	assert.Equal(t, "None", GroupNone.String())
	assert.Equal(t, "Map|Draw", (GroupMap | GroupDraw).String())
}

func TestIsFilterable(t *testing.T) {
	fl, err := NewFilterLayer("", "f", "")
	require.NoError(t, err)
	assert.True(t, IsFilterable(NewDrawingLayer("d")))
	assert.True(t, IsFilterable(NewTrackLayer("t", "")))
	assert.True(t, IsFilterable(NewDirtyLayer("dirty")))
	assert.False(t, IsFilterable(NewSpecialLayer("s", OsmBugsLayer, "")))
	assert.False(t, IsFilterable(NewDeletedLayer("deleted")))
	assert.False(t, IsFilterable(fl))
}

func TestNewId(t *testing.T) {
	a, b := NewId(), NewId()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 26)
}
