// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package progress

import (
	"sync/atomic"
)

// Counter cancels once Limit steps have been advanced.  A Limit of zero never cancels.
type Counter struct {
	Limit int64
	count int64
}

func (c *Counter) IsCancelled() bool {
	return c.Limit > 0 && atomic.LoadInt64(&c.count) >= c.Limit
}

func (c *Counter) Advance(n int) {
	atomic.AddInt64(&c.count, int64(n))
}

func (c *Counter) Count() int64 {
	return atomic.LoadInt64(&c.count)
}
