// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"fmt"
)

// ErrMalformedDocument is returned when a serialized document cannot be decoded.
// Element is the xml element being decoded and Attribute the offending attribute, if any.
type ErrMalformedDocument struct {
	Element   string
	Attribute string
	Reason    string
}

func (e *ErrMalformedDocument) Error() string {
	if len(e.Attribute) > 0 {
		return fmt.Sprintf("malformed document: element %q attribute %q: %s", e.Element, e.Attribute, e.Reason)
	}
	if len(e.Element) > 0 {
		return fmt.Sprintf("malformed document: element %q: %s", e.Element, e.Reason)
	}
	return "malformed document: " + e.Reason
}
