package mvf

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/kevmo314/go-mvf/pkg/pixfmt"
)

// RowChunks walks the rows of a strided image, yielding the valid bytes of
// each row without the stride padding. It is created by RowChunksExact and
// cannot be restarted.
type RowChunks struct {
	buf         []byte
	stride      int
	validStride int
	rows        uint32
}

// RowChunksExact returns a cursor over the rows of im.
//
// The buffer is clamped to stride*height bytes. A buffer without padding
// after the final row is fine; a truncated buffer simply yields fewer rows.
func RowChunksExact[F pixfmt.PixelFormat](im ImageStride[F]) *RowChunks {
	buf, stride, valid, rows := rowGeometry(pixfmt.BitsPerPixel[F](), im.Width(), im.Height(), im.Stride(), im.BufferRef().Data)
	return &RowChunks{buf: buf, stride: stride, validStride: valid, rows: rows}
}

// Next returns the next row. ok is false once the image is exhausted.
func (r *RowChunks) Next() (row []byte, ok bool) {
	var n int
	n, r.rows, ok = advance(len(r.buf), r.stride, r.validStride, r.rows)
	if !ok {
		return nil, false
	}
	row = r.buf[:r.validStride:r.validStride]
	r.buf = r.buf[n:]
	return row, true
}

func (r *RowChunks) String() string {
	return fmt.Sprintf("RowChunksExact{stride: %d, valid_stride: %d}", r.stride, r.validStride)
}

// RowChunksMut is the mutable counterpart of RowChunks. The rows it yields
// never overlap.
type RowChunksMut struct {
	buf         []byte
	stride      int
	validStride int
	rows        uint32
}

// RowChunksExactMut returns a cursor over the mutable rows of im.
func RowChunksExactMut[F pixfmt.PixelFormat](im ImageMutStride[F]) *RowChunksMut {
	buf, stride, valid, rows := rowGeometry(pixfmt.BitsPerPixel[F](), im.Width(), im.Height(), im.Stride(), im.BufferMutRef().Data)
	if stride < valid && rows > 1 {
		// Unvalidated geometry; later rows would overlap the first.
		rows = 1
	}
	return &RowChunksMut{buf: buf, stride: stride, validStride: valid, rows: rows}
}

// Next returns the next row. ok is false once the image is exhausted.
func (r *RowChunksMut) Next() (row []byte, ok bool) {
	var n int
	n, r.rows, ok = advance(len(r.buf), r.stride, r.validStride, r.rows)
	if !ok {
		return nil, false
	}
	row = r.buf[:r.validStride:r.validStride]
	r.buf = r.buf[n:]
	return row, true
}

func (r *RowChunksMut) String() string {
	return fmt.Sprintf("RowChunksExactMut{stride: %d, valid_stride: %d}", r.stride, r.validStride)
}

// Rows iterates over the rows of im with their index. The image's buffer is
// held as shared for the duration of the loop.
func Rows[F pixfmt.PixelFormat](im ImageStride[F]) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		rows := RowChunksExact[F](im)
		defer acquire(im, false)()
		for y := 0; ; y++ {
			row, ok := rows.Next()
			if !ok || !yield(y, row) {
				return
			}
		}
	}
}

// RowsMut iterates over the mutable rows of im with their index. The image's
// buffer is held exclusively for the duration of the loop, so touching the
// image through any other view inside the loop panics.
func RowsMut[F pixfmt.PixelFormat](im ImageMutStride[F]) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		rows := RowChunksExactMut[F](im)
		defer acquire(im, true)()
		for y := 0; ; y++ {
			row, ok := rows.Next()
			if !ok || !yield(y, row) {
				return
			}
		}
	}
}

func rowGeometry(bpp uint8, width, height uint32, stride int, buf []byte) ([]byte, int, int, uint32) {
	if stride < 0 {
		return nil, 0, 0, 0
	}
	valid := validRowWidth(bpp, width)
	maxLen := uint64(len(buf))
	if hi, lo := bits.Mul64(uint64(stride), uint64(height)); hi == 0 && lo < maxLen {
		maxLen = lo
	}
	if valid > maxLen {
		// Not even the first row fits.
		return nil, stride, 0, 0
	}
	return buf[:maxLen], stride, int(valid), height
}

// advance decides whether another row of valid bytes is available in the
// remaining n bytes and how far to move past it: a whole stride, or
// everything that is left when the final row has no trailing padding.
func advance(n, stride, valid int, rows uint32) (consumed int, left uint32, ok bool) {
	if rows == 0 || n < valid {
		return 0, 0, false
	}
	if n > stride {
		return stride, rows - 1, true
	}
	return n, rows - 1, true
}
