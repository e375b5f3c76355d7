// Package mvf provides types for working with raw image data from machine
// vision cameras.
//
// Image buffers are tagged with a pixel format from package pixfmt as a type
// parameter, so an ImageRef[pixfmt.Mono8] cannot be passed where an RGB8
// image is expected. Three ownership variants are provided:
//
//   - ImageRef and ImageRefMut view bytes owned by someone else, typically a
//     camera driver or a memory-mapped file. They never copy.
//   - OImage owns its bytes.
//   - CowImage holds either an ImageRef or an OImage and copies only when an
//     owned image is actually requested.
//
// All of them implement the capability interfaces ImageData, Stride and
// friends, so algorithms can be written once against ImageStride[F]. Rows of
// any strided image can be walked with RowChunksExact or Rows, which yield
// only the valid bytes of each row and never the stride padding.
//
// Views returned by BufferRef and BufferMutRef alias the image's memory and
// must not be retained past the image they came from. Mutable images guard
// against overlapping mutable and shared access at runtime and panic with
// ErrBorrowConflict when it is attempted.
package mvf
