package mvf

import (
	"bytes"

	"github.com/kevmo314/go-mvf/pkg/pixfmt"
)

// ImageBufferRef is a read-only view of image bytes in pixel format F.
//
// It is a plain slice with a format tag attached; constructing one performs no
// validation. Data aliases memory owned elsewhere and must not be modified.
type ImageBufferRef[F pixfmt.PixelFormat] struct {
	Data []byte
}

func NewImageBufferRef[F pixfmt.PixelFormat](data []byte) ImageBufferRef[F] {
	return ImageBufferRef[F]{Data: data}
}

// ToBuffer copies the data into a new owned buffer.
func (b ImageBufferRef[F]) ToBuffer() ImageBuffer[F] {
	return ImageBuffer[F]{Data: bytes.Clone(b.Data)}
}

// ImageBufferMutRef is a mutable view of image bytes in pixel format F. While
// it is in use no other view of the same bytes may be.
type ImageBufferMutRef[F pixfmt.PixelFormat] struct {
	Data []byte
}

func NewImageBufferMutRef[F pixfmt.PixelFormat](data []byte) ImageBufferMutRef[F] {
	return ImageBufferMutRef[F]{Data: data}
}

// ToBuffer copies the data into a new owned buffer.
func (b ImageBufferMutRef[F]) ToBuffer() ImageBuffer[F] {
	return ImageBuffer[F]{Data: bytes.Clone(b.Data)}
}

// ImageBuffer holds image bytes in pixel format F that belong to the holder.
type ImageBuffer[F pixfmt.PixelFormat] struct {
	Data []byte
}

func NewImageBuffer[F pixfmt.PixelFormat](data []byte) ImageBuffer[F] {
	return ImageBuffer[F]{Data: data}
}
