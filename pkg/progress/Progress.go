// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package progress defines the cooperative cancellation and progress reporting
// collaborator polled by long running encode and decode operations.
package progress

// Progress is polled between features during serialization.
type Progress interface {
	IsCancelled() bool
	Advance(n int)
}

// None never cancels and discards progress.
var None Progress = none{}

type none struct{}

func (none) IsCancelled() bool { return false }

func (none) Advance(n int) {}

// OrNone returns p, or None if p is nil.
func OrNone(p Progress) Progress {
	if p == nil {
		return None
	}
	return p
}
