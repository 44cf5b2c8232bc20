// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"github.com/spatialcurrent/layerdoc/pkg/feature"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// ParseCoordBox parses an extent expression as [minlon, minlat, maxlon, maxlat].
func ParseCoordBox(expression string, name string) (feature.CoordBox, error) {
	extent, err := ParseFloat64Array(expression, name)
	if err != nil {
		return feature.EmptyBox(), err
	}
	if len(extent) != 4 {
		return feature.EmptyBox(), &lerrors.ErrInvalidParameter{Name: name, Value: expression}
	}
	return feature.NewCoordBox(extent[0], extent[1], extent[2], extent[3]), nil
}
