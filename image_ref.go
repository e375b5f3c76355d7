package mvf

import (
	"github.com/kevmo314/go-mvf/internal/borrow"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
)

// ImageRef is a read-only view of an image in pixel format F whose bytes are
// owned elsewhere. The ImageRef must not outlive the buffer it views.
type ImageRef[F pixfmt.PixelFormat] struct {
	buf    []byte
	width  uint32
	height uint32
	stride int
}

// NewImageRef uses buf as the backing store of an image without copying it.
//
// It returns ErrBufferTooSmall if buf cannot hold an image of the requested
// geometry and ErrInvalidStride if stride is shorter than a row. An image
// with zero height accepts any buffer, including an empty one.
func NewImageRef[F pixfmt.PixelFormat](width, height uint32, stride int, buf []byte) (*ImageRef[F], error) {
	if err := checkGeometry[F](width, height, stride, len(buf)); err != nil {
		return nil, err
	}
	return &ImageRef[F]{buf: buf, width: width, height: height, stride: stride}, nil
}

func (im *ImageRef[F]) Width() uint32 { return im.width }

func (im *ImageRef[F]) Height() uint32 { return im.height }

func (im *ImageRef[F]) Stride() int { return im.stride }

func (im *ImageRef[F]) BufferRef() ImageBufferRef[F] {
	return NewImageBufferRef[F](im.buf)
}

// Buffer copies the viewed bytes, since an ImageRef does not own them.
func (im *ImageRef[F]) Buffer() ImageBuffer[F] {
	return im.BufferRef().ToBuffer()
}

func (im *ImageRef[F]) String() string {
	return describe("ImageRef", pixfmt.Of[F](), im.width, im.height, im.stride)
}

// ImageRefMut is a mutable view of an image in pixel format F whose bytes are
// owned elsewhere. No other view of the same bytes may be used while the
// ImageRefMut is alive.
type ImageRefMut[F pixfmt.PixelFormat] struct {
	buf    []byte
	width  uint32
	height uint32
	stride int
	flag   borrow.Flag
}

// NewImageRefMut uses buf as the mutable backing store of an image without
// copying it. Validation is the same as for NewImageRef.
func NewImageRefMut[F pixfmt.PixelFormat](width, height uint32, stride int, buf []byte) (*ImageRefMut[F], error) {
	if err := checkGeometry[F](width, height, stride, len(buf)); err != nil {
		return nil, err
	}
	return &ImageRefMut[F]{buf: buf, width: width, height: height, stride: stride}, nil
}

func (im *ImageRefMut[F]) Width() uint32 { return im.width }

func (im *ImageRefMut[F]) Height() uint32 { return im.height }

func (im *ImageRefMut[F]) Stride() int { return im.stride }

func (im *ImageRefMut[F]) BufferRef() ImageBufferRef[F] {
	im.flag.Check(false)
	return NewImageBufferRef[F](im.buf)
}

func (im *ImageRefMut[F]) BufferMutRef() ImageBufferMutRef[F] {
	im.flag.Check(true)
	return NewImageBufferMutRef[F](im.buf)
}

// Buffer copies the viewed bytes, since an ImageRefMut does not own them.
func (im *ImageRefMut[F]) Buffer() ImageBuffer[F] {
	return im.BufferRef().ToBuffer()
}

func (im *ImageRefMut[F]) String() string {
	return describe("ImageRefMut", pixfmt.Of[F](), im.width, im.height, im.stride)
}

func (im *ImageRefMut[F]) borrowFlag() *borrow.Flag { return &im.flag }
