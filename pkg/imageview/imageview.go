// Package imageview exposes strided mvf images as image.Image values and
// standard library images as mvf images. Nothing is copied: both sides share
// the same bytes, and no color conversion is performed.
package imageview

import (
	"errors"
	"fmt"
	"image"

	"github.com/kevmo314/go-mvf"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
)

var ErrUnsupportedFormat = errors.New("pixel format has no image.Image equivalent")

// ToImage returns an image.Image sharing im's buffer. Mono8 maps to
// *image.Gray, RGB8 to *RGB and RGBA8 to *image.NRGBA.
func ToImage[F pixfmt.PixelFormat](im mvf.ImageStride[F]) (image.Image, error) {
	rect := image.Rect(0, 0, int(im.Width()), int(im.Height()))
	pix := im.BufferRef().Data
	switch f := pixfmt.Of[F](); f {
	case pixfmt.PixFmtMono8:
		return &image.Gray{Pix: pix, Stride: im.Stride(), Rect: rect}, nil
	case pixfmt.PixFmtRGB8:
		return &RGB{Pix: pix, Stride: im.Stride(), Rect: rect}, nil
	case pixfmt.PixFmtRGBA8:
		return &image.NRGBA{Pix: pix, Stride: im.Stride(), Rect: rect}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// FromGray returns a mutable Mono8 view of img's pixels.
func FromGray(img *image.Gray) (*mvf.ImageRefMut[pixfmt.Mono8], error) {
	return newRef[pixfmt.Mono8](img.Rect, img.Stride, img.Pix)
}

// FromRGB returns a mutable RGB8 view of img's pixels.
func FromRGB(img *RGB) (*mvf.ImageRefMut[pixfmt.RGB8], error) {
	return newRef[pixfmt.RGB8](img.Rect, img.Stride, img.Pix)
}

// FromNRGBA returns a mutable RGBA8 view of img's pixels.
func FromNRGBA(img *image.NRGBA) (*mvf.ImageRefMut[pixfmt.RGBA8], error) {
	return newRef[pixfmt.RGBA8](img.Rect, img.Stride, img.Pix)
}

func newRef[F pixfmt.PixelFormat](r image.Rectangle, stride int, pix []byte) (*mvf.ImageRefMut[F], error) {
	if r.Empty() {
		return mvf.NewImageRefMut[F](0, 0, stride, pix)
	}
	return mvf.NewImageRefMut[F](uint32(r.Dx()), uint32(r.Dy()), stride, pix)
}
