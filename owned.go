package mvf

import (
	"bytes"
	"math"

	"github.com/kevmo314/go-mvf/internal/borrow"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
)

// OImage is an image in pixel format F that owns its buffer.
//
// Buffer and IntoBytes move the bytes out of the image; after either call the
// image is spent and any further access to its buffer panics with ErrMoved.
type OImage[F pixfmt.PixelFormat] struct {
	buf    []byte
	width  uint32
	height uint32
	stride int
	moved  bool
	flag   borrow.Flag
}

// NewOImage takes ownership of buf as the backing store of an image. The
// caller must not use buf afterwards. Validation is the same as for
// NewImageRef.
func NewOImage[F pixfmt.PixelFormat](width, height uint32, stride int, buf []byte) (*OImage[F], error) {
	if err := checkGeometry[F](width, height, stride, len(buf)); err != nil {
		return nil, err
	}
	return &OImage[F]{buf: buf, width: width, height: height, stride: stride}, nil
}

// Zeros allocates the minimum buffer for an image of the given geometry and
// fills it with zeros. The buffer is empty when height is zero.
func Zeros[F pixfmt.PixelFormat](width, height uint32, stride int) (*OImage[F], error) {
	bpp := pixfmt.BitsPerPixel[F]()
	if err := geometryError(bpp, width, height, stride, math.MaxInt); err != nil {
		return nil, err
	}
	n, _ := requiredLen(bpp, width, height, stride)
	return &OImage[F]{buf: make([]byte, n), width: width, height: height, stride: stride}, nil
}

// CopyFrom makes an owned copy of frame, keeping its width, height, stride
// and entire backing buffer.
func CopyFrom[F pixfmt.PixelFormat](frame ImageStride[F]) *OImage[F] {
	return &OImage[F]{
		buf:    bytes.Clone(ImageDataBytes[F](frame)),
		width:  frame.Width(),
		height: frame.Height(),
		stride: frame.Stride(),
	}
}

// FromOwned moves the buffer out of orig without copying and re-validates
// the geometry.
func FromOwned[F pixfmt.PixelFormat](orig OwnedImageStride[F]) (*OImage[F], error) {
	width, height, stride := orig.Width(), orig.Height(), orig.Stride()
	return NewOImage[F](width, height, stride, orig.IntoBytes())
}

func (im *OImage[F]) Width() uint32 { return im.width }

func (im *OImage[F]) Height() uint32 { return im.height }

func (im *OImage[F]) Stride() int { return im.stride }

func (im *OImage[F]) BufferRef() ImageBufferRef[F] {
	im.flag.Check(false)
	return NewImageBufferRef[F](im.data())
}

func (im *OImage[F]) BufferMutRef() ImageBufferMutRef[F] {
	im.flag.Check(true)
	return NewImageBufferMutRef[F](im.data())
}

// Buffer moves the data out of the image without copying.
func (im *OImage[F]) Buffer() ImageBuffer[F] {
	return NewImageBuffer[F](im.IntoBytes())
}

// IntoBytes moves the data out of the image without copying.
func (im *OImage[F]) IntoBytes() []byte {
	im.flag.Check(true)
	buf := im.data()
	im.buf = nil
	im.moved = true
	return buf
}

// Clone returns a deep copy of the image.
func (im *OImage[F]) Clone() *OImage[F] {
	return &OImage[F]{
		buf:    bytes.Clone(im.BufferRef().Data),
		width:  im.width,
		height: im.height,
		stride: im.stride,
	}
}

func (im *OImage[F]) String() string {
	return describe("OImage", pixfmt.Of[F](), im.width, im.height, im.stride)
}

func (im *OImage[F]) data() []byte {
	if im.moved {
		panic(ErrMoved)
	}
	return im.buf
}

func (im *OImage[F]) borrowFlag() *borrow.Flag { return &im.flag }
