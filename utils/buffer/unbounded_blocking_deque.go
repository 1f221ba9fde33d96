// Copyright (C) 2024-2026, Borealis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package buffer

import "sync"

var _ BlockingDeque[int] = (*UnboundedBlockingDeque[int])(nil)

type BlockingDeque[T any] interface {
	Deque[T]

	// Close and empty the deque.
	Close()
}

// NewUnboundedBlockingDeque returns a new unbounded deque with the given
// initial size. Note that the returned deque is always empty -- [initSize]
// is just a hint to prevent unnecessary resizing.
func NewUnboundedBlockingDeque[T any](initSize int) *UnboundedBlockingDeque[T] {
	q := &UnboundedBlockingDeque[T]{
		deque: NewUnboundedDeque[T](initSize),
	}
	q.cond = sync.NewCond(&q.lock)
	return q
}

// UnboundedBlockingDeque is a thread-safe blocking deque with unbounded
// growth. Pushes never block; pops block until an element is available or
// the deque is closed.
type UnboundedBlockingDeque[T any] struct {
	lock   sync.RWMutex
	cond   *sync.Cond
	closed bool

	deque Deque[T]
}

// If the deque is closed returns false.
func (q *UnboundedBlockingDeque[T]) PushRight(elt T) bool {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	if q.closed {
		return false
	}

	q.deque.PushRight(elt)
	q.cond.Signal()
	return true
}

// If the deque is closed returns false.
func (q *UnboundedBlockingDeque[T]) PushLeft(elt T) bool {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	if q.closed {
		return false
	}

	q.deque.PushLeft(elt)
	q.cond.Signal()
	return true
}

// Blocks until an element is available.
// If the deque is closed returns false.
func (q *UnboundedBlockingDeque[T]) PopLeft() (T, bool) {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	for {
		if q.closed {
			var zero T
			return zero, false
		}
		if q.deque.Len() != 0 {
			return q.deque.PopLeft()
		}
		q.cond.Wait()
	}
}

// Blocks until an element is available.
// If the deque is closed returns false.
func (q *UnboundedBlockingDeque[T]) PopRight() (T, bool) {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	for {
		if q.closed {
			var zero T
			return zero, false
		}
		if q.deque.Len() != 0 {
			return q.deque.PopRight()
		}
		q.cond.Wait()
	}
}

func (q *UnboundedBlockingDeque[T]) Len() int {
	q.lock.RLock()
	defer q.lock.RUnlock()

	if q.closed {
		return 0
	}
	return q.deque.Len()
}

func (q *UnboundedBlockingDeque[T]) Close() {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	if q.closed {
		return
	}

	q.deque = nil
	q.closed = true
	q.cond.Broadcast()
}
