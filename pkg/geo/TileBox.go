// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

// TileBox returns the bounding box of the tile.  Tile rows count down from the north.
func TileBox(z int, x int, y int) feature.CoordBox {
	return feature.NewCoordBox(
		TileToLongitude(x, z),
		TileToLatitude(y+1, z),
		TileToLongitude(x+1, z),
		TileToLatitude(y, z),
	)
}
