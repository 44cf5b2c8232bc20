// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialcurrent/layerdoc/pkg/cli/logging"
	"github.com/spatialcurrent/layerdoc/pkg/document"
	"github.com/spatialcurrent/layerdoc/pkg/feature"
	"github.com/spatialcurrent/layerdoc/pkg/layer"
)

func testViper() *viper.Viper {
	v := viper.New()
	v.Set(logging.FlagErrorDestination, logging.DefaultErrorDestination)
	v.Set(logging.FlagErrorFormat, logging.DefaultFormat)
	v.Set(logging.FlagInfoDestination, logging.DefaultErrorDestination)
	v.Set(logging.FlagInfoFormat, logging.DefaultFormat)
	return v
}

func TestWriteReadDocument(t *testing.T) {
	d := document.New("city")
	drawing := layer.NewDrawingLayer("drawing")
	require.NoError(t, drawing.Add(feature.New(feature.FeatureId{Kind: feature.KindNode, Numeric: 1}, feature.NewCoordBox(1, 1, 1, 1))))
	require.NoError(t, d.AddLayer(drawing))
	fl, err := layer.NewFilterLayer("", "all", "@_kind == 'node'")
	require.NoError(t, err)
	require.NoError(t, d.AddLayer(fl))

	path := filepath.Join(t.TempDir(), "city.xml.gz")
	require.NoError(t, WriteDocument(context.Background(), d, path, "gzip", false))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(b) > 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, b[:2])
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	v := testViper()
	v.Set(FlagInputCompression, "gzip")
	v.Set(FlagFilterCacheTTL, time.Minute)
	decoded, err := ReadDocument(context.Background(), v, path, logging.NewLoggerFromViper(v))
	require.NoError(t, err)
	assert.Equal(t, "city", decoded.Name())
	require.Len(t, decoded.Layers(), 5)
	assert.Equal(t, 1, decoded.Layers()[3].Size())

	decodedFilter, ok := decoded.Layers()[4].(*layer.FilterLayer)
	require.True(t, ok)
	assert.True(t, decodedFilter.IsCached())
	assert.Equal(t, 1, decodedFilter.Size())
}

func TestReadDocumentMissing(t *testing.T) {
	v := testViper()
	_, err := ReadDocument(context.Background(), v, filepath.Join(t.TempDir(), "missing.xml"), logging.NewLoggerFromViper(v))
	assert.Error(t, err)
}
