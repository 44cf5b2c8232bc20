// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package geo converts between geographic coordinates and web mercator tiles.
package geo

import (
	"math"
)

var R2D = 180 / math.Pi

var D2R = math.Pi / 180
