// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"strings"
)

// LayerGroups is the set of document partitions a layer belongs to.
type LayerGroups uint32

const (
	GroupNone    LayerGroups = 0x00000000
	GroupMap     LayerGroups = 0x00000001
	GroupDraw    LayerGroups = 0x00000002
	GroupTracks  LayerGroups = 0x00000004
	GroupFilters LayerGroups = 0x00000008
	GroupSpecial LayerGroups = 0x00000010
	GroupAll     LayerGroups = 0x0000ffff
)

// Has returns true if g shares any group with o.
func (g LayerGroups) Has(o LayerGroups) bool {
	return g&o != 0
}

func (g LayerGroups) String() string {
	if g == GroupNone {
		return "None"
	}
	names := make([]string, 0)
	for _, x := range []struct {
		group LayerGroups
		name  string
	}{
		{GroupMap, "Map"},
		{GroupDraw, "Draw"},
		{GroupTracks, "Tracks"},
		{GroupFilters, "Filters"},
		{GroupSpecial, "Special"},
	} {
		if g&x.group != 0 {
			names = append(names, x.name)
		}
	}
	return strings.Join(names, "|")
}
