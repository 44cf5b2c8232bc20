// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

// IsFilterable returns true if filter layers evaluate their selector over the features of l.
// Only map, drawing, and track layers are filtered.  Special, deleted, and filter layers are not.
func IsFilterable(l Layer) bool {
	if l.ClassGroups().Has(GroupSpecial | GroupFilters) {
		return false
	}
	return l.ClassGroups().Has(GroupMap | GroupDraw | GroupTracks)
}
