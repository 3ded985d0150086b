// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/jpegify/internal/convert"
	"github.com/pdiddy/jpegify/pkg/types"
)

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")

	result := convert.BatchResult{
		Results: []types.Conversion{
			{Source: "a.png", Output: "images/a.jpg", Status: types.ConversionDone},
			{Source: "b.gif", Status: types.ConversionFailed, Error: "decode failed"},
		},
		Converted: 1,
		Failed:    1,
	}

	require.NoError(t, WriteManifest(result, "/repo", "/repo/images", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))

	assert.Equal(t, "/repo", m.Root)
	assert.Equal(t, "/repo/images", m.OutputDir)
	assert.NotEmpty(t, m.GeneratedAt)
	assert.Equal(t, 1, m.Converted)
	assert.Equal(t, 1, m.Failed)
	require.Len(t, m.Conversions, 2)
	assert.Equal(t, types.ConversionDone, m.Conversions[0].Status)
	assert.Equal(t, "decode failed", m.Conversions[1].Error)
	// Successful records do not serialize an error field.
	assert.Empty(t, m.Conversions[0].Error)
}

func TestWriteManifest_BadPath(t *testing.T) {
	err := WriteManifest(convert.BatchResult{}, ".", "./images", filepath.Join(t.TempDir(), "missing", "m.yaml"))
	require.Error(t, err)
}
