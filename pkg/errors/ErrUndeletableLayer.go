// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrUndeletableLayer struct {
	Name string
	Type string
}

func (e *ErrUndeletableLayer) Error() string {
	return e.Type + " " + e.Name + " cannot be deleted"
}
