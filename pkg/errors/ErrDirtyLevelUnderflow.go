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

type ErrDirtyLevelUnderflow struct {
	Level     int
	Decrement int
}

func (e *ErrDirtyLevelUnderflow) Error() string {
	return fmt.Sprintf("dirty level %d cannot be decremented by %d", e.Level, e.Decrement)
}
