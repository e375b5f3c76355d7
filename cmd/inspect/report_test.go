package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/kevmo314/go-mvf/pkg/rawfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectorsCoverCatalog(t *testing.T) {
	for _, f := range pixfmt.All() {
		assert.Contains(t, inspectors, f, f.String())
	}
}

func TestInspectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.raw")
	require.NoError(t, os.WriteFile(path, []byte{
		10, 20, 30, 0,
		40, 50, 60, 0,
	}, 0o644))

	r, err := inspectFile(pixfmt.PixFmtMono8, path, 3, 2, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, r.Length)
	assert.Len(t, r.Rows, 2)
	assert.Contains(t, r.Geometry, "width: 3")
	require.NotNil(t, r.Preview)
	assert.Equal(t, 2, r.Preview.Bounds().Dx())
	assert.Equal(t, 1, r.Preview.Bounds().Dy())
}

func TestInspectFileNoPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.raw")
	require.NoError(t, os.WriteFile(path, make([]byte, 6), 0o644))

	r, err := inspectFile(pixfmt.PixFmtNV12, path, 2, 2, 3, 64)
	require.NoError(t, err)
	assert.Nil(t, r.Preview)
	assert.Len(t, r.Rows, 2)
}

func TestInspectFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.raw")
	require.NoError(t, os.WriteFile(path, make([]byte, 3), 0o644))

	_, err := inspectFile(pixfmt.PixFmtRGB8, path, 2, 2, 6, 64)
	assert.Error(t, err)

	_, err = inspectFile(pixfmt.PixFmtUnknown, path, 1, 1, 1, 64)
	assert.Error(t, err)
}

func TestPackedStrideMatchesRawfile(t *testing.T) {
	assert.Equal(t, rawfile.PackedStride[pixfmt.RGB8](7), packedStride(pixfmt.PixFmtRGB8, 7))
	assert.Equal(t, rawfile.PackedStride[pixfmt.NV12](7), packedStride(pixfmt.PixFmtNV12, 7))
}
