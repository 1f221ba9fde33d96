// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package buffer

const defaultInitSize = 32

// Deque is a double-ended queue.
type Deque[T any] interface {
	// PushLeft adds [elt] to the left end. Returns true on success.
	PushLeft(elt T) bool
	// PushRight adds [elt] to the right end. Returns true on success.
	PushRight(elt T) bool
	// PopLeft removes and returns the leftmost element.
	// Returns false if the deque is empty.
	PopLeft() (T, bool)
	// PopRight removes and returns the rightmost element.
	// Returns false if the deque is empty.
	PopRight() (T, bool)
	// Len returns the number of elements.
	Len() int
}

var _ Deque[int] = (*UnboundedDeque[int])(nil)

// NewUnboundedDeque returns a new unbounded deque backed by a circular
// buffer with the given initial slot count. [initSize] is just a hint to
// prevent unnecessary resizing.
func NewUnboundedDeque[T any](initSize int) Deque[T] {
	if initSize < 2 {
		initSize = defaultInitSize
	}
	return &UnboundedDeque[T]{
		// Note that [initSize] must be >= 2 to satisfy invariants (1) and (2)
		// while the deque is empty.
		data:  make([]T, initSize),
		right: 1,
	}
}

// UnboundedDeque is an unbounded deque implemented with a circular buffer.
// Invariants after each function call and before the first call:
// (1) The next element pushed left goes at data[left]
// (2) The next element pushed right goes at data[right]
// (3) There are [size] elements in the deque.
type UnboundedDeque[T any] struct {
	size        int
	left, right int
	data        []T
}

func (b *UnboundedDeque[T]) PushLeft(elt T) bool {
	if b.size == len(b.data) {
		b.resize()
	}

	b.data[b.left] = elt
	b.size++
	b.left--
	if b.left < 0 {
		b.left = len(b.data) - 1
	}
	return true
}

func (b *UnboundedDeque[T]) PushRight(elt T) bool {
	if b.size == len(b.data) {
		b.resize()
	}

	b.data[b.right] = elt
	b.size++
	b.right++
	if b.right == len(b.data) {
		b.right = 0
	}
	return true
}

func (b *UnboundedDeque[T]) PopLeft() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}

	idx := b.left + 1
	if idx == len(b.data) {
		idx = 0
	}
	elt := b.data[idx]
	b.data[idx] = zero // give the garbage collector a chance
	b.size--
	b.left = idx
	return elt, true
}

func (b *UnboundedDeque[T]) PopRight() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}

	idx := b.right - 1
	if idx < 0 {
		idx = len(b.data) - 1
	}
	elt := b.data[idx]
	b.data[idx] = zero
	b.size--
	b.right = idx
	return elt, true
}

func (b *UnboundedDeque[T]) Len() int {
	return b.size
}

// Doubles the backing slice, moving the elements to the front.
func (b *UnboundedDeque[T]) resize() {
	newData := make([]T, 2*len(b.data))
	oldSize := b.size
	for i := 0; i < oldSize; i++ {
		elt, _ := b.PopLeft()
		newData[i] = elt
	}
	b.data = newData
	b.size = oldSize
	b.left = len(newData) - 1
	b.right = oldSize
}
