// Package digest computes content digests of strided images. Only the pixel
// format, the dimensions and the valid bytes of each row contribute, so two
// images holding the same pixels under different strides hash equally.
package digest

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/kevmo314/go-mvf"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 keyed hash.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first eight hex digits.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:4])
}

// Keys are ASCII domain names zero-padded to 32 bytes. Changing them
// invalidates every stored digest.
var (
	imageKey = [32]byte{
		'm', 'v', 'f', '.', 'i', 'm', 'a', 'g', 'e', 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	rowKey = [32]byte{
		'm', 'v', 'f', '.', 'r', 'o', 'w', 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// Sum hashes the format tag, width, height and every valid row of im.
func Sum[F pixfmt.PixelFormat](im mvf.ImageStride[F]) Digest {
	h := newKeyed(imageKey)
	var hdr [9]byte
	hdr[0] = byte(pixfmt.Of[F]())
	binary.LittleEndian.PutUint32(hdr[1:5], im.Width())
	binary.LittleEndian.PutUint32(hdr[5:9], im.Height())
	_, _ = h.Write(hdr[:])
	for _, row := range mvf.Rows[F](im) {
		_, _ = h.Write(row)
	}
	var d Digest
	h.Sum(d[:0])
	return d
}

// Rows returns one digest per row yielded by mvf.Rows, each covering the
// row's valid bytes only.
func Rows[F pixfmt.PixelFormat](im mvf.ImageStride[F]) []Digest {
	var out []Digest
	for _, row := range mvf.Rows[F](im) {
		h := newKeyed(rowKey)
		_, _ = h.Write(row)
		var d Digest
		h.Sum(d[:0])
		out = append(out, d)
	}
	return out
}

func newKeyed(key [32]byte) *blake3.Hasher {
	h, err := blake3.NewKeyed(key[:])
	if err != nil {
		// Only returned for keys that are not 32 bytes.
		panic(err)
	}
	return h
}
