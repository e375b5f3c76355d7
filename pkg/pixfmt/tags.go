package pixfmt

import "fmt"

// PixelFormat is implemented by the zero-size tag types below. Image types
// take a PixelFormat as a type parameter.
type PixelFormat interface {
	PixFmt() PixFmt
}

type (
	Mono8      struct{}
	Mono32f    struct{}
	RGB8       struct{}
	RGBA8      struct{}
	BayerRG8   struct{}
	BayerRG32f struct{}
	BayerBG8   struct{}
	BayerBG32f struct{}
	BayerGB8   struct{}
	BayerGB32f struct{}
	BayerGR8   struct{}
	BayerGR32f struct{}
	YUV444     struct{}
	YUV422     struct{}
	NV12       struct{}
)

func (Mono8) PixFmt() PixFmt      { return PixFmtMono8 }
func (Mono32f) PixFmt() PixFmt    { return PixFmtMono32f }
func (RGB8) PixFmt() PixFmt       { return PixFmtRGB8 }
func (RGBA8) PixFmt() PixFmt      { return PixFmtRGBA8 }
func (BayerRG8) PixFmt() PixFmt   { return PixFmtBayerRG8 }
func (BayerRG32f) PixFmt() PixFmt { return PixFmtBayerRG32f }
func (BayerBG8) PixFmt() PixFmt   { return PixFmtBayerBG8 }
func (BayerBG32f) PixFmt() PixFmt { return PixFmtBayerBG32f }
func (BayerGB8) PixFmt() PixFmt   { return PixFmtBayerGB8 }
func (BayerGB32f) PixFmt() PixFmt { return PixFmtBayerGB32f }
func (BayerGR8) PixFmt() PixFmt   { return PixFmtBayerGR8 }
func (BayerGR32f) PixFmt() PixFmt { return PixFmtBayerGR32f }
func (YUV444) PixFmt() PixFmt     { return PixFmtYUV444 }
func (YUV422) PixFmt() PixFmt     { return PixFmtYUV422 }
func (NV12) PixFmt() PixFmt       { return PixFmtNV12 }

// Of returns the runtime format for the tag type F.
func Of[F PixelFormat]() PixFmt {
	var f F
	return f.PixFmt()
}

// BitsPerPixel resolves the tag type F to its bits per pixel. A tag that is
// not registered in the catalog means the binary was built against a
// mismatched catalog, so BitsPerPixel panics rather than returning an error.
func BitsPerPixel[F PixelFormat]() uint8 {
	f := Of[F]()
	if !f.IsValid() {
		panic(fmt.Sprintf("pixfmt: tag %T resolves to unregistered format %s", *new(F), f))
	}
	return catalog[f].bitsPerPixel
}
