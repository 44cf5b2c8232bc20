// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileBox(t *testing.T) {
	b := TileBox(0, 0, 0)
	assert.InDelta(t, -180.0, b.Min.Lon, 1e-9)
	assert.InDelta(t, 180.0, b.Max.Lon, 1e-9)
	assert.InDelta(t, -85.0511287798, b.Min.Lat, 1e-6)
	assert.InDelta(t, 85.0511287798, b.Max.Lat, 1e-6)

	b = TileBox(1, 1, 0)
	assert.InDelta(t, 0.0, b.Min.Lon, 1e-9)
	assert.InDelta(t, 0.0, b.Min.Lat, 1e-9)
}

func TestLongitudeLatitudeToTile(t *testing.T) {
	assert.Equal(t, 1, LongitudeToTile(10, 1))
	assert.Equal(t, 0, LongitudeToTile(-10, 1))
	assert.Equal(t, 0, LatitudeToTile(10, 1))
	assert.Equal(t, 1, LatitudeToTile(-10, 1))
}

func TestParseTile(t *testing.T) {
	z, x, y, err := ParseTile("3/2/1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, []int{z, x, y})

	for _, str := range []string{"", "1/2", "a/b/c", "1/2/0", "-1/0/0"} {
		_, _, _, err := ParseTile(str)
		assert.Error(t, err, str)
	}
}
