// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geo

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseTile parses a tile written as z/x/y.
func ParseTile(str string) (int, int, int, error) {
	parts := strings.Split(str, "/")
	if len(parts) != 3 {
		return 0, 0, 0, errors.Errorf("invalid tile %q, expecting z/x/y", str)
	}
	values := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, 0, errors.Wrapf(err, "invalid tile %q", str)
		}
		values[i] = v
	}
	z, x, y := values[0], values[1], values[2]
	if z < 0 || z > 30 || x < 0 || y < 0 || x >= 1<<uint(z) || y >= 1<<uint(z) {
		return 0, 0, 0, errors.Errorf("tile %q is out of range", str)
	}
	return z, x, y, nil
}
