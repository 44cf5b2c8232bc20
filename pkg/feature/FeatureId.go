// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	"strconv"
	"strings"

	lerrors "github.com/spatialcurrent/layerdoc/pkg/errors"
)

// FeatureId identifies a feature across the whole document.
// Negative numeric values are assigned locally and are replaced by a permanent id on upload.
type FeatureId struct {
	Kind    IdKind
	Numeric int64
}

// IsNew returns true if the id has not been assigned by the upstream server yet.
func (id FeatureId) IsNew() bool {
	return id.Numeric < 0
}

func (id FeatureId) IsZero() bool {
	return id.Kind == KindUndefined && id.Numeric == 0
}

func (id FeatureId) String() string {
	return id.Kind.String() + "/" + strconv.FormatInt(id.Numeric, 10)
}

// ParseFeatureId parses an id in the "kind/numeric" form produced by FeatureId.String.
func ParseFeatureId(str string) (FeatureId, error) {
	parts := strings.SplitN(str, "/", 2)
	if len(parts) != 2 {
		return FeatureId{}, &lerrors.ErrInvalidParameter{Name: "id", Value: str}
	}
	kind, err := ParseIdKind(parts[0])
	if err != nil {
		return FeatureId{}, err
	}
	numeric, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return FeatureId{}, &lerrors.ErrInvalidParameter{Name: "id", Value: str}
	}
	return FeatureId{Kind: kind, Numeric: numeric}, nil
}
