// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

// ErrUnsupportedOperation is returned by layers whose contents cannot be edited directly.
type ErrUnsupportedOperation struct {
	Type      string
	Operation string
}

func (e *ErrUnsupportedOperation) Error() string {
	return e.Type + " does not support operation " + e.Operation
}
