package mytex

import "errors"

// ErrNoValue is returned by the checked Value accessor of an empty
// optional guard.
var ErrNoValue = errors.New("mytex: optional guard holds no value")

// An OptGuard is the result of a non-blocking exclusive acquisition: it
// either holds the lock, in which case it behaves like a Guard, or it is
// empty because the lock was contended. It is a single flat type rather
// than an optional wrapping a Guard, so reaching the value takes one
// step, not two.
//
// Unlike the checked Value, the unchecked accessors (Deref, MustValue,
// Set) panic on an empty guard; callers are expected to test Held first.
//
// The zero OptGuard is empty. A moved-from OptGuard is empty. Unlock on
// an empty OptGuard is a no-op, which makes `defer g.Unlock()` safe
// regardless of whether the acquisition succeeded.
type OptGuard[T any] struct {
	object  *T
	release func()
}

// Held reports whether the guard holds the lock (and therefore a value).
func (g *OptGuard[T]) Held() bool { return g.release != nil }

// Value returns the guarded value, or ErrNoValue if the guard is empty.
func (g *OptGuard[T]) Value() (T, error) {
	if g.release == nil {
		var zero T
		return zero, ErrNoValue
	}
	return *g.object, nil
}

// MustValue returns the guarded value and panics if the guard is empty.
func (g *OptGuard[T]) MustValue() T { return *g.Deref() }

// Deref returns a pointer to the guarded value and panics if the guard
// is empty. The pointer is valid until Unlock.
func (g *OptGuard[T]) Deref() *T {
	if g.release == nil {
		panic("mytex: access through empty optional guard")
	}
	return g.object
}

// Set replaces the guarded value and panics if the guard is empty.
func (g *OptGuard[T]) Set(v T) { *g.Deref() = v }

// Unlock releases the lock if the guard holds it, and does nothing
// otherwise.
func (g *OptGuard[T]) Unlock() {
	if g.release == nil {
		return
	}
	release := g.release
	g.object, g.release = nil, nil
	release()
}

// Unwrap converts a holding optional guard into a plain Guard,
// transferring the acquisition; it panics if the guard is empty. The
// source is empty afterwards.
func (g *OptGuard[T]) Unwrap() *Guard[T] {
	if g.release == nil {
		panic("mytex: unwrap of empty optional guard")
	}
	moved := newGuard(g.object, g.release)
	g.object, g.release = nil, nil
	return moved
}

// Move transfers the guard's state, held or empty, to a new optional
// guard and leaves g empty.
func (g *OptGuard[T]) Move() *OptGuard[T] {
	moved := &OptGuard[T]{object: g.object, release: g.release}
	g.object, g.release = nil, nil
	return moved
}

func (g *OptGuard[T]) opt() (T, bool) {
	if g.release == nil {
		var zero T
		return zero, false
	}
	return *g.object, true
}

// An OptRGuard is the result of a non-blocking shared acquisition. Like
// RGuard it is read-only; like OptGuard it may be empty.
//
// The zero OptRGuard is empty, a moved-from one is empty, and Unlock on
// an empty one is a no-op.
type OptRGuard[T any] struct {
	object  *T
	release func()
}

// Held reports whether the guard holds the lock.
func (g *OptRGuard[T]) Held() bool { return g.release != nil }

// Value returns the guarded value, or ErrNoValue if the guard is empty.
func (g *OptRGuard[T]) Value() (T, error) {
	if g.release == nil {
		var zero T
		return zero, ErrNoValue
	}
	return *g.object, nil
}

// MustValue returns the guarded value and panics if the guard is empty.
func (g *OptRGuard[T]) MustValue() T {
	if g.release == nil {
		panic("mytex: access through empty optional guard")
	}
	return *g.object
}

// Unlock releases the shared hold if the guard has one, and does nothing
// otherwise.
func (g *OptRGuard[T]) Unlock() {
	if g.release == nil {
		return
	}
	release := g.release
	g.object, g.release = nil, nil
	release()
}

// Unwrap converts a holding optional guard into a plain RGuard,
// transferring the hold; it panics if the guard is empty.
func (g *OptRGuard[T]) Unwrap() *RGuard[T] {
	if g.release == nil {
		panic("mytex: unwrap of empty optional guard")
	}
	moved := newRGuard(g.object, g.release)
	g.object, g.release = nil, nil
	return moved
}

// Move transfers the guard's state to a new optional guard and leaves g
// empty.
func (g *OptRGuard[T]) Move() *OptRGuard[T] {
	moved := &OptRGuard[T]{object: g.object, release: g.release}
	g.object, g.release = nil, nil
	return moved
}

func (g *OptRGuard[T]) opt() (T, bool) {
	if g.release == nil {
		var zero T
		return zero, false
	}
	return *g.object, true
}
