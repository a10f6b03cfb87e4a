package mytex

// A Guard is proof of an exclusive acquisition, bundled with the value it
// grants access to. While a Guard is live its holder has sole read-write
// access to the value; Unlock ends that and releases the lock.
//
// A Guard is created only by Mytex.Lock or RWMytex.Lock. The zero Guard
// is released; every method on it panics.
type Guard[T any] struct {
	object  *T
	release func() // nil once released or moved from
}

func newGuard[T any](object *T, release func()) *Guard[T] {
	if release == nil {
		panic("mytex: guard constructed without a held lock")
	}
	return &Guard[T]{object: object, release: release}
}

// Deref returns a pointer to the guarded value, valid until Unlock.
// Keeping the pointer around after Unlock defeats the whole point.
func (g *Guard[T]) Deref() *T {
	if g.release == nil {
		panic("mytex: access through released guard")
	}
	return g.object
}

// Value returns a copy of the guarded value.
func (g *Guard[T]) Value() T { return *g.Deref() }

// Set replaces the guarded value.
func (g *Guard[T]) Set(v T) { *g.Deref() = v }

// Unlock releases the lock. The guard is dead afterwards; unlocking
// twice, or unlocking a moved-from guard, panics.
func (g *Guard[T]) Unlock() {
	if g.release == nil {
		panic("mytex: unlock of released guard")
	}
	release := g.release
	g.object, g.release = nil, nil
	release()
}

// Move transfers the acquisition to a new guard and leaves g released.
// There is exactly one live holder at any time: after Move, only the
// returned guard can access the value or unlock.
func (g *Guard[T]) Move() *Guard[T] {
	moved := newGuard(g.object, g.release)
	g.object, g.release = nil, nil
	return moved
}

func (g *Guard[T]) ref() T { return g.Value() }

// An RGuard is proof of a shared acquisition. Any number of RGuards on
// the same RWMytex may be live at once, so an RGuard only ever hands out
// copies of the value; there is no way to write through it.
//
// An RGuard is created only by RWMytex.LockShared.
type RGuard[T any] struct {
	object  *T
	release func()
}

func newRGuard[T any](object *T, release func()) *RGuard[T] {
	if release == nil {
		panic("mytex: guard constructed without a held lock")
	}
	return &RGuard[T]{object: object, release: release}
}

// Value returns a copy of the guarded value.
func (g *RGuard[T]) Value() T {
	if g.release == nil {
		panic("mytex: access through released guard")
	}
	return *g.object
}

// Unlock releases this shared hold. Unlocking twice panics.
func (g *RGuard[T]) Unlock() {
	if g.release == nil {
		panic("mytex: unlock of released guard")
	}
	release := g.release
	g.object, g.release = nil, nil
	release()
}

// Move transfers the shared hold to a new guard and leaves g released.
func (g *RGuard[T]) Move() *RGuard[T] {
	moved := newRGuard(g.object, g.release)
	g.object, g.release = nil, nil
	return moved
}

func (g *RGuard[T]) ref() T { return g.Value() }
