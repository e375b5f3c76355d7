// Package borrow implements a runtime exclusive-access guard for byte buffers
// that may be handed out as mutable views.
package borrow

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var ErrConflict = errors.New("borrow: conflicting access to image buffer")

const exclusive = -1

// Flag tracks outstanding accesses: n > 0 shared accesses, or one exclusive
// access. The zero value is unborrowed.
type Flag struct {
	state atomic.Int64
}

// Acquire takes a shared or exclusive borrow and returns the function that
// gives it back. A borrow that conflicts with one already held panics.
func (f *Flag) Acquire(excl bool) (release func()) {
	if excl {
		if !f.state.CompareAndSwap(0, exclusive) {
			panic(fmt.Errorf("%w: exclusive borrow while %s", ErrConflict, f.describe()))
		}
		return func() { f.state.Store(0) }
	}
	for {
		n := f.state.Load()
		if n == exclusive {
			panic(fmt.Errorf("%w: shared borrow while exclusively borrowed", ErrConflict))
		}
		if f.state.CompareAndSwap(n, n+1) {
			return func() { f.state.Add(-1) }
		}
	}
}

// Check panics if an exclusive borrow is outstanding. It is used by accessors
// that hand out short-lived views without tracking their release.
func (f *Flag) Check(excl bool) {
	n := f.state.Load()
	if n == exclusive || (excl && n != 0) {
		panic(fmt.Errorf("%w: access while %s", ErrConflict, f.describe()))
	}
}

func (f *Flag) describe() string {
	n := f.state.Load()
	switch {
	case n == exclusive:
		return "exclusively borrowed"
	case n > 0:
		return fmt.Sprintf("%d shared borrows are held", n)
	}
	return "unborrowed"
}
