package mvf

import (
	"errors"

	"github.com/kevmo314/go-mvf/internal/borrow"
)

var (
	ErrBufferTooSmall = errors.New("buffer too small for image geometry")
	ErrInvalidStride  = errors.New("invalid stride")
	ErrImageTooLarge  = errors.New("image size overflows addressable memory")
	// ErrMoved is the panic value when an owned image is used after its
	// buffer was moved out.
	ErrMoved = errors.New("use of image after its buffer was moved")
	// ErrBorrowConflict is wrapped by the panic value when a mutable view and
	// another view of the same image are requested at the same time.
	ErrBorrowConflict = borrow.ErrConflict
)
