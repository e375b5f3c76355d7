package borrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedBorrowsNest(t *testing.T) {
	var f Flag
	r1 := f.Acquire(false)
	r2 := f.Acquire(false)
	assert.NotPanics(t, func() { f.Check(false) })
	assert.Panics(t, func() { f.Acquire(true) })
	assert.Panics(t, func() { f.Check(true) })
	r1()
	r2()
	release := f.Acquire(true)
	release()
}

func TestExclusiveBorrowBlocksEverything(t *testing.T) {
	var f Flag
	release := f.Acquire(true)
	assert.Panics(t, func() { f.Acquire(false) })
	assert.Panics(t, func() { f.Acquire(true) })
	assert.Panics(t, func() { f.Check(false) })
	release()
	assert.NotPanics(t, func() { f.Check(true) })
}

func TestConflictErrorIsWrapped(t *testing.T) {
	var f Flag
	defer f.Acquire(true)()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if assert.True(t, ok) {
			assert.ErrorIs(t, err, ErrConflict)
		}
	}()
	f.Acquire(false)
}
