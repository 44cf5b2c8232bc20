// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package templates stores layer templates in a SQLite database.
//
// A template is a layer encoded in template mode: the metadata and flags without features.
// Loading a template instantiates a new layer with a fresh id.
package templates

const (
	DriverName = "sqlite3"

	schema = `CREATE TABLE IF NOT EXISTS templates (
	name TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	body TEXT NOT NULL,
	updated TEXT NOT NULL
)`
)
