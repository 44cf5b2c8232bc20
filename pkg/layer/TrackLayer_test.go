// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/layerdoc/pkg/feature"
)

func TestTrackLayerExtract(t *testing.T) {
	track := NewTrackLayer("run", "run.gpx")
	points := make([]*feature.Feature, 0)
	for i := int64(1); i <= 3; i++ {
		f := newFeature(feature.KindTrackPoint, i, feature.NewCoordBox(float64(i), 0, float64(i), 0))
		f.SetTag("ele", "10")
		points = append(points, f)
		require.NoError(t, track.Add(f))
	}
	points[1].SetDeleted(true)

	d, err := track.Extract("extracted")
	require.NoError(t, err)
	assert.Equal(t, "extracted", d.Name())
	assert.Equal(t, 2, d.Size())
	assert.Equal(t, 3, track.Size())

	for _, f := range d.Features() {
		assert.True(t, f.Id().IsNew())
		assert.Equal(t, feature.KindTrackPoint, f.Id().Kind)
		assert.Equal(t, Layer(d), f.Owner())
		v, _ := f.Tag("ele")
		assert.Equal(t, "10", v)
	}
	for _, f := range points {
		assert.Equal(t, Layer(track), f.Owner())
	}
	assert.NoError(t, d.CheckConsistency())
}
