// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

type ErrCancelled struct {
	Operation string
}

func (e *ErrCancelled) Error() string {
	return e.Operation + " cancelled"
}
