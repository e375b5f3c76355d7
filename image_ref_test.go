package mvf

import (
	"math"
	"testing"

	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageRefMinimumLength(t *testing.T) {
	for _, width := range []uint32{1, 3, 640} {
		for _, height := range []uint32{1, 2, 480} {
			rowWidth := int(width) * 3
			for _, stride := range []int{rowWidth, rowWidth + 10} {
				need := stride*(int(height)-1) + rowWidth

				im, err := NewImageRef[pixfmt.RGB8](width, height, stride, make([]byte, need))
				require.NoError(t, err, "%dx%d stride %d", width, height, stride)
				assert.Equal(t, width, im.Width())
				assert.Equal(t, height, im.Height())
				assert.Equal(t, stride, im.Stride())

				_, err = NewImageRef[pixfmt.RGB8](width, height, stride, make([]byte, need-1))
				assert.ErrorIs(t, err, ErrBufferTooSmall, "%dx%d stride %d", width, height, stride)

				_, err = NewImageRefMut[pixfmt.RGB8](width, height, stride, make([]byte, need))
				assert.NoError(t, err)
				_, err = NewImageRefMut[pixfmt.RGB8](width, height, stride, make([]byte, need-1))
				assert.ErrorIs(t, err, ErrBufferTooSmall)
			}
		}
	}
}

func TestNewImageRefZeroHeight(t *testing.T) {
	for _, n := range []int{0, 1, 1000} {
		var buf []byte
		if n > 0 {
			buf = make([]byte, n)
		}
		im, err := NewImageRef[pixfmt.Mono8](640, 0, 640, buf)
		require.NoError(t, err)
		assert.Len(t, im.BufferRef().Data, n)

		_, err = NewImageRefMut[pixfmt.Mono8](640, 0, 640, buf)
		require.NoError(t, err)
	}
}

func TestNewImageRefRejectsBadStride(t *testing.T) {
	_, err := NewImageRef[pixfmt.RGB8](10, 2, 29, make([]byte, 1000))
	assert.ErrorIs(t, err, ErrInvalidStride)

	_, err = NewImageRef[pixfmt.Mono8](10, 0, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidStride)
}

func TestNewImageRefOverflow(t *testing.T) {
	_, err := NewImageRef[pixfmt.Mono8](math.MaxUint32, math.MaxUint32, math.MaxInt, make([]byte, 16))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestNewImageRefTruncatesPartialBytes(t *testing.T) {
	// NV12 is 12 bits per pixel: 3 pixels occupy 4.5 bytes, counted as 4.
	im, err := NewImageRef[pixfmt.NV12](3, 1, 4, make([]byte, 4))
	require.NoError(t, err)
	assert.Equal(t, uint32(3), im.Width())
}

func TestImageRefBufferCopies(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	im, err := NewImageRef[pixfmt.Mono8](2, 2, 2, data)
	require.NoError(t, err)

	assert.Same(t, &data[0], &im.BufferRef().Data[0])

	buf := im.Buffer()
	assert.Equal(t, data, buf.Data)
	buf.Data[0] = 42
	assert.Equal(t, byte(1), data[0])
}

func TestImageRefMutWritesThrough(t *testing.T) {
	data := make([]byte, 4)
	im, err := NewImageRefMut[pixfmt.Mono8](2, 2, 2, data)
	require.NoError(t, err)

	im.BufferMutRef().Data[3] = 9
	assert.Equal(t, byte(9), data[3])
	assert.Equal(t, byte(9), im.BufferRef().Data[3])

	buf := im.Buffer()
	buf.Data[3] = 0
	assert.Equal(t, byte(9), data[3])
}

func TestImageRefString(t *testing.T) {
	im, err := NewImageRef[pixfmt.RGB8](4, 2, 12, make([]byte, 24))
	require.NoError(t, err)
	assert.Equal(t, "ImageRef{fmt: RGB8, width: 4, height: 2, stride: 12}", im.String())

	imm, err := NewImageRefMut[pixfmt.Mono8](4, 2, 4, make([]byte, 8))
	require.NoError(t, err)
	assert.Equal(t, "ImageRefMut{fmt: Mono8, width: 4, height: 2, stride: 4}", imm.String())
}
