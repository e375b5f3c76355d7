package main

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/kevmo314/go-mvf/pkg/digest"
	"github.com/kevmo314/go-mvf/pkg/imageview"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/kevmo314/go-mvf/pkg/rawfile"
)

// report is everything the inspector shows about one frame file.
type report struct {
	Geometry string
	Length   int
	Digest   digest.Digest
	Rows     []digest.Digest
	// Preview is nil for formats with no image.Image view.
	Preview image.Image
}

type inspectFunc func(path string, width, height uint32, stride int, thumbWidth int) (*report, error)

var inspectors = map[pixfmt.PixFmt]inspectFunc{
	pixfmt.PixFmtMono8:      inspect[pixfmt.Mono8],
	pixfmt.PixFmtMono32f:    inspect[pixfmt.Mono32f],
	pixfmt.PixFmtRGB8:       inspect[pixfmt.RGB8],
	pixfmt.PixFmtRGBA8:      inspect[pixfmt.RGBA8],
	pixfmt.PixFmtBayerRG8:   inspect[pixfmt.BayerRG8],
	pixfmt.PixFmtBayerRG32f: inspect[pixfmt.BayerRG32f],
	pixfmt.PixFmtBayerBG8:   inspect[pixfmt.BayerBG8],
	pixfmt.PixFmtBayerBG32f: inspect[pixfmt.BayerBG32f],
	pixfmt.PixFmtBayerGB8:   inspect[pixfmt.BayerGB8],
	pixfmt.PixFmtBayerGB32f: inspect[pixfmt.BayerGB32f],
	pixfmt.PixFmtBayerGR8:   inspect[pixfmt.BayerGR8],
	pixfmt.PixFmtBayerGR32f: inspect[pixfmt.BayerGR32f],
	pixfmt.PixFmtYUV444:     inspect[pixfmt.YUV444],
	pixfmt.PixFmtYUV422:     inspect[pixfmt.YUV422],
	pixfmt.PixFmtNV12:       inspect[pixfmt.NV12],
}

// packedStride is rawfile.PackedStride for a format known only at runtime.
func packedStride(f pixfmt.PixFmt, width uint32) int {
	return int(uint64(f.BitsPerPixel()) * uint64(width) / 8)
}

func inspectFile(f pixfmt.PixFmt, path string, width, height uint32, stride int, thumbWidth int) (*report, error) {
	fn, ok := inspectors[f]
	if !ok {
		return nil, fmt.Errorf("no inspector for %s", f)
	}
	return fn(path, width, height, stride, thumbWidth)
}

func inspect[F pixfmt.PixelFormat](path string, width, height uint32, stride int, thumbWidth int) (*report, error) {
	m, err := rawfile.Map[F](path, width, height, stride)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	im, err := m.Image()
	if err != nil {
		return nil, err
	}
	r := &report{
		Geometry: fmt.Sprint(im),
		Length:   m.Len(),
		Digest:   digest.Sum[F](im),
		Rows:     digest.Rows[F](im),
	}
	if view, err := imageview.ToImage[F](im); err == nil && width > 0 && height > 0 {
		// The thumbnail is a copy, so it outlives the mapping.
		w := min(thumbWidth, int(width))
		h := max(1, int(height)*w/int(width))
		r.Preview = resize(view, w, h)
	}
	return r, nil
}

func resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
