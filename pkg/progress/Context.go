// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package progress

import (
	"context"
	"sync/atomic"
)

// Context adapts a context.Context into a Progress and counts advanced steps.
type Context struct {
	ctx   context.Context
	count int64
}

func FromContext(ctx context.Context) *Context {
	return &Context{ctx: ctx}
}

func (c *Context) IsCancelled() bool {
	return c.ctx.Err() != nil
}

func (c *Context) Advance(n int) {
	atomic.AddInt64(&c.count, int64(n))
}

// Count returns the total number of steps advanced.
func (c *Context) Count() int64 {
	return atomic.LoadInt64(&c.count)
}
