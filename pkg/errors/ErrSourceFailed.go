// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

// ErrSourceFailed wraps the failure of an external feature source.
type ErrSourceFailed struct {
	Layer string
	Err   error
}

func (e *ErrSourceFailed) Error() string {
	if e.Err == nil {
		return "feature source for layer " + e.Layer + " failed"
	}
	return "feature source for layer " + e.Layer + " failed: " + e.Err.Error()
}

func (e *ErrSourceFailed) Cause() error {
	return e.Err
}

func (e *ErrSourceFailed) Unwrap() error {
	return e.Err
}
