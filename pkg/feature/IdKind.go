// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// IdKind is the kind half of a feature id.  Numeric ids are only unique within a kind.
type IdKind uint8

const (
	KindUndefined IdKind = iota
	KindNode
	KindWay
	KindRelation
	KindTrackPoint
	KindTrackSegment
	KindSpecial
)

var kindNames = map[IdKind]string{
	KindUndefined:    "undefined",
	KindNode:         "node",
	KindWay:          "way",
	KindRelation:     "relation",
	KindTrackPoint:   "trackpoint",
	KindTrackSegment: "tracksegment",
	KindSpecial:      "special",
}

func (k IdKind) String() string {
	if str, ok := kindNames[k]; ok {
		return str
	}
	return kindNames[KindUndefined]
}

// ParseIdKind is the inverse of IdKind.String.
func ParseIdKind(str string) (IdKind, error) {
	for k, name := range kindNames {
		if k != KindUndefined && name == str {
			return k, nil
		}
	}
	return KindUndefined, &lerrors.ErrInvalidParameter{Name: "kind", Value: str}
}
