// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNone(t *testing.T) {
	assert.Equal(t, None, OrNone(nil))
	assert.False(t, OrNone(nil).IsCancelled())
}

func TestCounter(t *testing.T) {
	c := &Counter{Limit: 2}
	assert.False(t, c.IsCancelled())
	c.Advance(1)
	assert.False(t, c.IsCancelled())
	c.Advance(1)
	assert.True(t, c.IsCancelled())
	assert.Equal(t, int64(2), c.Count())

	unlimited := &Counter{}
	unlimited.Advance(1000)
	assert.False(t, unlimited.IsCancelled())
}

func TestContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := FromContext(ctx)
	p.Advance(3)
	assert.False(t, p.IsCancelled())
	cancel()
	assert.True(t, p.IsCancelled())
	assert.Equal(t, int64(3), p.Count())
}
