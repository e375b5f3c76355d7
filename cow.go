package mvf

import (
	"github.com/kevmo314/go-mvf/internal/borrow"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
)

// CowImage is a copy-on-write image holding either a borrowed ImageRef or an
// owned OImage. It behaves as a zero-copy view until Owned is called.
type CowImage[F pixfmt.PixelFormat] struct {
	borrowed *ImageRef[F]
	owned    *OImage[F]
}

// CowFromRef wraps a borrowed image.
func CowFromRef[F pixfmt.PixelFormat](im *ImageRef[F]) *CowImage[F] {
	return &CowImage[F]{borrowed: im}
}

// CowFromOwned wraps an owned image.
func CowFromOwned[F pixfmt.PixelFormat](im *OImage[F]) *CowImage[F] {
	return &CowImage[F]{owned: im}
}

func (c *CowImage[F]) IsBorrowed() bool { return c.borrowed != nil }

func (c *CowImage[F]) IsOwned() bool { return c.owned != nil }

// Owned consumes c and returns an owned image. A borrowed image is copied
// into a new buffer with the same geometry; an owned image is returned as is.
func (c *CowImage[F]) Owned() *OImage[F] {
	if c.owned != nil {
		im := c.owned
		c.owned = nil
		return im
	}
	src := c.borrowed
	c.borrowed = nil
	Logger().Debug("copying borrowed image into owned buffer",
		"format", pixfmt.Of[F](),
		"bytes", len(src.buf))
	im, err := NewOImage[F](src.width, src.height, src.stride, src.Buffer().Data)
	if err != nil {
		// src passed the same validation when it was constructed.
		panic(err)
	}
	return im
}

func (c *CowImage[F]) image() ImageStride[F] {
	if c.owned != nil {
		return c.owned
	}
	if c.borrowed != nil {
		return c.borrowed
	}
	panic(ErrMoved)
}

func (c *CowImage[F]) Width() uint32 { return c.image().Width() }

func (c *CowImage[F]) Height() uint32 { return c.image().Height() }

func (c *CowImage[F]) Stride() int { return c.image().Stride() }

func (c *CowImage[F]) BufferRef() ImageBufferRef[F] { return c.image().BufferRef() }

// Buffer consumes c and returns its data, copying only if it is borrowed.
func (c *CowImage[F]) Buffer() ImageBuffer[F] {
	buf := c.image().Buffer()
	c.borrowed, c.owned = nil, nil
	return buf
}

func (c *CowImage[F]) String() string {
	switch {
	case c.owned != nil:
		return "CowImage{Owned: " + c.owned.String() + "}"
	case c.borrowed != nil:
		return "CowImage{Borrowed: " + c.borrowed.String() + "}"
	}
	return "CowImage{}"
}

func (c *CowImage[F]) borrowFlag() *borrow.Flag {
	if c.owned != nil {
		return &c.owned.flag
	}
	return nil
}
