// Package pixfmt is the catalog of pixel formats understood by mvf.
//
// Each format exists twice: as a PixFmt value, which is convenient at
// runtime, and as a zero-size tag type such as Mono8 or RGB8, which is used as
// a type parameter so that images of different formats cannot be mixed.
package pixfmt

import (
	"fmt"
	"strings"
)

type PixFmt uint8

const (
	PixFmtUnknown PixFmt = iota
	PixFmtMono8
	PixFmtMono32f
	PixFmtRGB8
	PixFmtRGBA8
	PixFmtBayerRG8
	PixFmtBayerRG32f
	PixFmtBayerBG8
	PixFmtBayerBG32f
	PixFmtBayerGB8
	PixFmtBayerGB32f
	PixFmtBayerGR8
	PixFmtBayerGR32f
	PixFmtYUV444
	PixFmtYUV422
	PixFmtNV12

	pixFmtCount
)

type info struct {
	name         string
	bitsPerPixel uint8
}

var catalog = [pixFmtCount]info{
	PixFmtMono8:      {"Mono8", 8},
	PixFmtMono32f:    {"Mono32f", 32},
	PixFmtRGB8:       {"RGB8", 24},
	PixFmtRGBA8:      {"RGBA8", 32},
	PixFmtBayerRG8:   {"BayerRG8", 8},
	PixFmtBayerRG32f: {"BayerRG32f", 32},
	PixFmtBayerBG8:   {"BayerBG8", 8},
	PixFmtBayerBG32f: {"BayerBG32f", 32},
	PixFmtBayerGB8:   {"BayerGB8", 8},
	PixFmtBayerGB32f: {"BayerGB32f", 32},
	PixFmtBayerGR8:   {"BayerGR8", 8},
	PixFmtBayerGR32f: {"BayerGR32f", 32},
	PixFmtYUV444:     {"YUV444", 24},
	PixFmtYUV422:     {"YUV422", 16},
	// NV12 carries a full-resolution luma plane and a half-resolution
	// interleaved chroma plane, 12 bits per pixel on average.
	PixFmtNV12: {"NV12", 12},
}

// IsValid reports whether f is registered in the catalog.
func (f PixFmt) IsValid() bool {
	return f > PixFmtUnknown && f < pixFmtCount
}

// BitsPerPixel returns the number of bits used to encode one pixel, or 0 if
// the format is not registered.
func (f PixFmt) BitsPerPixel() uint8 {
	if !f.IsValid() {
		return 0
	}
	return catalog[f].bitsPerPixel
}

func (f PixFmt) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("PixFmt(%d)", uint8(f))
	}
	return catalog[f].name
}

// All returns every registered format in catalog order.
func All() []PixFmt {
	fmts := make([]PixFmt, 0, pixFmtCount-1)
	for f := PixFmtUnknown + 1; f < pixFmtCount; f++ {
		fmts = append(fmts, f)
	}
	return fmts
}

// Parse looks up a format by name, ignoring case.
func Parse(name string) (PixFmt, error) {
	for _, f := range All() {
		if strings.EqualFold(catalog[f].name, name) {
			return f, nil
		}
	}
	return PixFmtUnknown, fmt.Errorf("unknown pixel format %q", name)
}
