// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

func TileToLongitude(x int, z int) float64 {
	return float64(x)/float64(int64(1)<<uint(z))*360 - 180
}
