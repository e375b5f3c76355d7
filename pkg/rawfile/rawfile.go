// Package rawfile stores strided images as headerless files of raw pixel
// bytes. The geometry travels out of band: callers pass the pixel format,
// width, height and stride when opening a file.
package rawfile

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/kevmo314/go-mvf"
	"github.com/kevmo314/go-mvf/pkg/pixfmt"
	"github.com/pkg/errors"
)

var ErrClosed = errors.New("rawfile: mapping is closed")

// PackedStride returns the stride Write produces for an image of the given
// width: the valid bytes of one row, with no padding.
func PackedStride[F pixfmt.PixelFormat](width uint32) int {
	return int(uint64(pixfmt.BitsPerPixel[F]()) * uint64(width) / 8)
}

// Mapped is a read-only memory mapping of a raw frame file.
type Mapped[F pixfmt.PixelFormat] struct {
	mu     sync.Mutex
	im     *mvf.ImageRef[F]
	data   []byte
	unmap  func([]byte) error
	closed bool
}

// Map memory-maps the file at path and validates it against the geometry.
// Views returned by Image must not be used after Close, and their bytes
// must not be written.
func Map[F pixfmt.PixelFormat](path string, width, height uint32, stride int) (*Mapped[F], error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %s", path)
	}
	im, err := mvf.NewImageRef[F](width, height, stride, data)
	if err != nil {
		_ = unmap(data)
		return nil, errors.Wrapf(err, "validating %s", path)
	}
	mvf.Logger().Debug("mapped raw frame", "path", path, "format", pixfmt.Of[F](), "len", len(data))
	return &Mapped[F]{im: im, data: data, unmap: unmap}, nil
}

// Image returns the borrowed view of the mapping, or ErrClosed.
func (m *Mapped[F]) Image() (*mvf.ImageRef[F], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	return m.im, nil
}

// Len returns the size of the mapped file in bytes.
func (m *Mapped[F]) Len() int { return len(m.data) }

func (m *Mapped[F]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	m.im = nil
	data := m.data
	m.data = nil
	return errors.Wrap(m.unmap(data), "unmapping raw frame")
}

// ReadOwned loads the file at path into an owned image. The file bytes
// become the image buffer without a further copy.
func ReadOwned[F pixfmt.PixelFormat](path string, width, height uint32, stride int) (*mvf.OImage[F], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading raw frame")
	}
	im, err := mvf.NewOImage[F](width, height, stride, data)
	if err != nil {
		return nil, errors.Wrapf(err, "validating %s", path)
	}
	return im, nil
}

// WriteTo writes the valid bytes of each row of im to w, dropping padding.
func WriteTo[F pixfmt.PixelFormat](w io.Writer, im mvf.ImageStride[F]) (int64, error) {
	var n int64
	for y, row := range mvf.Rows[F](im) {
		m, err := w.Write(row)
		n += int64(m)
		if err != nil {
			return n, errors.Wrapf(err, "writing row %d", y)
		}
	}
	return n, nil
}

// Write creates or truncates the file at path and writes im to it with a
// stride of PackedStride.
func Write[F pixfmt.PixelFormat](path string, im mvf.ImageStride[F]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating raw frame")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing raw frame")
		}
	}()
	bw := bufio.NewWriter(f)
	if _, err := WriteTo[F](bw, im); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrap(bw.Flush(), "flushing raw frame")
}
