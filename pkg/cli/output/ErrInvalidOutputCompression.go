// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"fmt"
	"strings"
)

type ErrInvalidOutputCompression struct {
	Value    string
	Expected []string
}

func (e *ErrInvalidOutputCompression) Error() string {
	return fmt.Sprintf("invalid output compression %q, expecting one of %s", e.Value, strings.Join(e.Expected, ", "))
}
