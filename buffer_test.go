package mvf

import (
	"testing"

	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/stretchr/testify/assert"
)

func TestBufferViewsToBufferCopies(t *testing.T) {
	data := []byte{1, 2, 3, 4}

	ref := NewImageBufferRef[pixfmt.Mono8](data)
	owned := ref.ToBuffer()
	assert.Equal(t, data, owned.Data)
	owned.Data[0] = 100
	assert.Equal(t, byte(1), data[0])

	mut := NewImageBufferMutRef[pixfmt.Mono8](data)
	mut.Data[1] = 200
	assert.Equal(t, byte(200), data[1], "mutable view aliases its bytes")
	owned = mut.ToBuffer()
	owned.Data[1] = 0
	assert.Equal(t, byte(200), data[1])
}

func TestNewImageBufferKeepsSlice(t *testing.T) {
	data := make([]byte, 8)
	buf := NewImageBuffer[pixfmt.RGB8](data)
	assert.Same(t, &data[0], &buf.Data[0])
}
