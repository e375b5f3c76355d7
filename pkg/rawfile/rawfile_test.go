package rawfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kevmo314/go-mvf"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.raw")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMap(t *testing.T) {
	path := writeFile(t, []byte{1, 2, 3, 0, 4, 5, 6})

	m, err := Map[pixfmt.Mono8](path, 3, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, m.Len())

	im, err := m.Image()
	require.NoError(t, err)
	var rows [][]byte
	for _, row := range mvf.Rows[pixfmt.Mono8](im) {
		rows = append(rows, bytes.Clone(row))
	}
	assert.Equal(t, [][]byte{{1, 2, 3}, {4, 5, 6}}, rows)

	require.NoError(t, m.Close())
	_, err = m.Image()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Close(), ErrClosed)
}

func TestMapTooSmall(t *testing.T) {
	path := writeFile(t, []byte{1, 2, 3, 0, 4, 5})
	_, err := Map[pixfmt.Mono8](path, 3, 2, 4)
	assert.ErrorIs(t, err, mvf.ErrBufferTooSmall)
}

func TestMapEmpty(t *testing.T) {
	path := writeFile(t, nil)
	m, err := Map[pixfmt.Mono8](path, 4, 0, 4)
	require.NoError(t, err)
	im, err := m.Image()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), im.Height())
	require.NoError(t, m.Close())
}

func TestMapMissing(t *testing.T) {
	_, err := Map[pixfmt.Mono8](filepath.Join(t.TempDir(), "missing.raw"), 1, 1, 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadOwned(t *testing.T) {
	path := writeFile(t, []byte{1, 2, 3, 4, 5, 6})
	im, err := ReadOwned[pixfmt.RGB8](path, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, im.IntoBytes())

	_, err = ReadOwned[pixfmt.RGB8](path, 2, 2, 6)
	assert.ErrorIs(t, err, mvf.ErrBufferTooSmall)
}

func TestWriteDropsPadding(t *testing.T) {
	src, err := mvf.NewImageRef[pixfmt.Mono8](2, 3, 4, []byte{
		1, 2, 9, 9,
		3, 4, 9, 9,
		5, 6,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.raw")
	require.NoError(t, Write[pixfmt.Mono8](path, src))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, got)

	im, err := ReadOwned[pixfmt.Mono8](path, 2, 3, PackedStride[pixfmt.Mono8](2))
	require.NoError(t, err)
	assert.Equal(t, 2, im.Stride())
}

func TestWriteTo(t *testing.T) {
	im, err := mvf.Zeros[pixfmt.RGBA8](2, 2, 12)
	require.NoError(t, err)
	var buf bytes.Buffer
	n, err := WriteTo[pixfmt.RGBA8](&buf, im)
	require.NoError(t, err)
	assert.Equal(t, int64(16), n)
	assert.Equal(t, 16, buf.Len())
}

func TestPackedStride(t *testing.T) {
	assert.Equal(t, 30, PackedStride[pixfmt.RGB8](10))
	assert.Equal(t, 40, PackedStride[pixfmt.Mono32f](10))
	assert.Equal(t, 15, PackedStride[pixfmt.NV12](10))
}
