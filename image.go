package mvf

import (
	"github.com/kevmo314/go-mvf/internal/borrow"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
)

// ImageData is an image in pixel format F.
type ImageData[F pixfmt.PixelFormat] interface {
	// Width is the number of pixel columns. It is not the stride.
	Width() uint32
	// Height is the number of pixel rows.
	Height() uint32
	// BufferRef returns a view of the raw image data without copying.
	BufferRef() ImageBufferRef[F]
	// Buffer consumes the image and returns its data. Implementations move
	// the bytes when they own them and copy otherwise.
	Buffer() ImageBuffer[F]
}

// ImageMutData is an image whose data can be modified in place.
type ImageMutData[F pixfmt.PixelFormat] interface {
	ImageData[F]
	// BufferMutRef returns a mutable view of the raw image data without
	// copying.
	BufferMutRef() ImageBufferMutRef[F]
}

// Stride is implemented by images whose successive rows start a fixed number
// of bytes apart. This is sometimes also called "pitch".
type Stride interface {
	Stride() int
}

type ImageStride[F pixfmt.PixelFormat] interface {
	ImageData[F]
	Stride
}

type ImageMutStride[F pixfmt.PixelFormat] interface {
	ImageMutData[F]
	Stride
}

// OwnedImage is an image that can hand over its buffer without copying.
// After IntoBytes the image must not be used again.
type OwnedImage[F pixfmt.PixelFormat] interface {
	ImageData[F]
	IntoBytes() []byte
}

type OwnedImageStride[F pixfmt.PixelFormat] interface {
	OwnedImage[F]
	Stride
}

// ImageDataBytes returns the raw bytes of im without copying.
func ImageDataBytes[F pixfmt.PixelFormat](im ImageData[F]) []byte {
	return im.BufferRef().Data
}

// guarded is implemented by images that track outstanding views of their
// buffer.
type guarded interface {
	borrowFlag() *borrow.Flag
}

func acquire(im any, excl bool) (release func()) {
	if g, ok := im.(guarded); ok {
		if f := g.borrowFlag(); f != nil {
			return f.Acquire(excl)
		}
	}
	return func() {}
}
