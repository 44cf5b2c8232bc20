// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialcurrent/go-simple-serializer/pkg/gss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	err := Serialize(&SerializeInput{
		Uri:    path,
		Object: map[string]interface{}{"name": "roads"},
		Format: "json",
		Header: gss.NoHeader,
		Limit:  gss.NoLimit,
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name"`)
	assert.Contains(t, string(b), `"roads"`)
	assert.Equal(t, byte('\n'), b[len(b)-1])
}

func TestSerializeAppendParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.jsonl")
	input := &SerializeInput{
		Uri:           path,
		Parents:       true,
		Object:        []interface{}{map[string]interface{}{"id": 1}},
		Format:        "jsonl",
		Header:        gss.NoHeader,
		Limit:         gss.NoLimit,
		LineSeparator: "\n",
	}
	require.NoError(t, Serialize(input))
	input.Append = true
	require.NoError(t, Serialize(input))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(b), `"id"`))
}
