// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package geojson reads GeoJSON feature collections and converts them into document features.
package geojson

const (
	TypeNameFeature           = "Feature"
	TypeNameFeatureCollection = "FeatureCollection"
	TypeNamePoint             = "Point"
	TypeNameMultiPoint        = "MultiPoint"
	TypeNameLineString        = "LineString"
	TypeNamePolygon           = "Polygon"
)
