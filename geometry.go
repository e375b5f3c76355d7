package mvf

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/kevmo314/go-mvf/pkg/pixfmt"
)

// validRowWidth is the number of bytes holding pixel data in each row. The
// division truncates, so a trailing partial byte is not counted.
func validRowWidth(bitsPerPixel uint8, width uint32) uint64 {
	return uint64(bitsPerPixel) * uint64(width) / 8
}

// requiredLen returns stride*(height-1) + validRowWidth, the smallest buffer
// that holds an image. ok is false if the size does not fit in a uint64.
func requiredLen(bitsPerPixel uint8, width, height uint32, stride int) (n uint64, ok bool) {
	if height == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(uint64(stride), uint64(height-1))
	n, carry := bits.Add64(lo, validRowWidth(bitsPerPixel, width), 0)
	return n, hi == 0 && carry == 0
}

// checkGeometry validates that a buffer of bufLen bytes can back an image of
// the given geometry in format F.
func checkGeometry[F pixfmt.PixelFormat](width, height uint32, stride int, bufLen int) error {
	bpp := pixfmt.BitsPerPixel[F]()
	err := geometryError(bpp, width, height, stride, bufLen)
	if err != nil {
		Logger().Debug("rejecting image geometry",
			"format", pixfmt.Of[F](),
			"width", width,
			"height", height,
			"stride", stride,
			"len", bufLen,
			"err", err)
	}
	return err
}

func geometryError(bpp uint8, width, height uint32, stride int, bufLen int) error {
	if stride < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidStride, stride)
	}
	if height == 0 {
		return nil
	}
	if valid := validRowWidth(bpp, width); uint64(stride) < valid {
		return fmt.Errorf("%w: %d is less than the row width of %d bytes", ErrInvalidStride, stride, valid)
	}
	n, ok := requiredLen(bpp, width, height, stride)
	if !ok || n > math.MaxInt {
		return fmt.Errorf("%w: %dx%d with stride %d", ErrImageTooLarge, width, height, stride)
	}
	if uint64(bufLen) < n {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, bufLen, n)
	}
	return nil
}

func describe(kind string, f pixfmt.PixFmt, width, height uint32, stride int) string {
	return fmt.Sprintf("%s{fmt: %s, width: %d, height: %d, stride: %d}", kind, f, width, height, stride)
}
