// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"math"
)

func LatitudeToTile(lat float64, z int) int {
	r := lat * D2R
	return int((1.0 - math.Log(math.Tan(r)+1/math.Cos(r))/math.Pi) / 2.0 * math.Pow(float64(2), float64(z)))
}
