// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package feature

import (
	"fmt"
	"math"
)

type Coord struct {
	Lon float64
	Lat float64
}

// CoordBox is an axis-aligned bounding box.  The zero value is not empty, use EmptyBox.
type CoordBox struct {
	Min Coord
	Max Coord
}

// EmptyBox returns the sentinel box that contains nothing and is the identity of Union.
func EmptyBox() CoordBox {
	return CoordBox{
		Min: Coord{Lon: math.Inf(1), Lat: math.Inf(1)},
		Max: Coord{Lon: math.Inf(-1), Lat: math.Inf(-1)},
	}
}

func NewCoordBox(minLon, minLat, maxLon, maxLat float64) CoordBox {
	return CoordBox{
		Min: Coord{Lon: math.Min(minLon, maxLon), Lat: math.Min(minLat, maxLat)},
		Max: Coord{Lon: math.Max(minLon, maxLon), Lat: math.Max(minLat, maxLat)},
	}
}

func (b CoordBox) IsEmpty() bool {
	return b.Min.Lon > b.Max.Lon || b.Min.Lat > b.Max.Lat
}

// Union returns the smallest box containing both boxes.
func (b CoordBox) Union(o CoordBox) CoordBox {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return CoordBox{
		Min: Coord{Lon: math.Min(b.Min.Lon, o.Min.Lon), Lat: math.Min(b.Min.Lat, o.Min.Lat)},
		Max: Coord{Lon: math.Max(b.Max.Lon, o.Max.Lon), Lat: math.Max(b.Max.Lat, o.Max.Lat)},
	}
}

// Merge grows the box in place to include o.
func (b *CoordBox) Merge(o CoordBox) {
	*b = b.Union(o)
}

func (b CoordBox) Contains(c Coord) bool {
	return !b.IsEmpty() && c.Lon >= b.Min.Lon && c.Lon <= b.Max.Lon && c.Lat >= b.Min.Lat && c.Lat <= b.Max.Lat
}

// Intersects returns true if the boxes share at least one coordinate.
func (b CoordBox) Intersects(o CoordBox) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Min.Lon <= o.Max.Lon && o.Min.Lon <= b.Max.Lon && b.Min.Lat <= o.Max.Lat && o.Min.Lat <= b.Max.Lat
}

// Extent returns the box as [minLon, minLat, maxLon, maxLat], or nil if empty.
func (b CoordBox) Extent() []float64 {
	if b.IsEmpty() {
		return nil
	}
	return []float64{b.Min.Lon, b.Min.Lat, b.Max.Lon, b.Max.Lat}
}

func (b CoordBox) String() string {
	if b.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("(%g,%g)-(%g,%g)", b.Min.Lon, b.Min.Lat, b.Max.Lon, b.Max.Lat)
}
