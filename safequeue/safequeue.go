// Package safequeue is the canonical usage example for mytex: a small
// thread-safe FIFO queue built by wrapping one owning lock around a
// slice. Within this package it is impossible to touch the slice without
// going through a guard, which is the entire trick; the queue's observable
// behavior is the same as a slice next to a plain mutex.
package safequeue

import "github.com/barometz/mytex"

// A Queue is a FIFO queue of T, safe for concurrent use. The zero value
// is not usable; call New.
type Queue[T any] struct {
	items *mytex.RWMytex[[]T]
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{items: mytex.NewRW[[]T](nil)}
}

// Push appends v to the back of the queue.
func (q *Queue[T]) Push(v T) {
	g := q.items.Lock()
	defer g.Unlock()
	*g.Deref() = append(*g.Deref(), v)
}

// Pop removes and returns the front of the queue; ok is false if the
// queue was empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	g := q.items.Lock()
	defer g.Unlock()
	items := g.Deref()
	if len(*items) == 0 {
		return v, false
	}
	v, *items = (*items)[0], (*items)[1:]
	return v, true
}

// Len returns the number of queued elements. It takes only a shared
// hold, so concurrent Lens do not serialize each other.
func (q *Queue[T]) Len() int {
	g := q.items.LockShared()
	defer g.Unlock()
	return len(g.Value())
}
