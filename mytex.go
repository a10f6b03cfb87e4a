package mytex

import "sync"

// A Mytex owns a value of type T together with the lock that protects it.
// The value is reachable only through the guards returned by Lock and
// TryLock, so every access necessarily happens under the lock.
//
// A Mytex must not be copied after first use. The value's address is
// stable for the Mytex's lifetime; a Mytex must not be destroyed (made
// unreachable) while a guard on it is still held.
type Mytex[T any] struct {
	lock   Locker
	object T
}

// New returns a Mytex protecting value, backed by a sync.Mutex.
func New[T any](value T) *Mytex[T] {
	return &Mytex[T]{lock: new(sync.Mutex), object: value}
}

// NewWithLocker returns a Mytex protecting value, backed by the supplied
// lock. This is the constructor to use when the lock cannot be
// default-constructed or is a handle to an external resource, such as a
// named cross-process lock. The lock must be unheld.
func NewWithLocker[T any](lock Locker, value T) *Mytex[T] {
	if lock == nil {
		panic("mytex: NewWithLocker called with nil Locker")
	}
	return &Mytex[T]{lock: lock, object: value}
}

// Lock acquires the lock exclusively, blocking until it is available, and
// returns a guard through which the value can be read and written. The
// lock is held until the guard's Unlock is called.
func (m *Mytex[T]) Lock() *Guard[T] {
	m.lock.Lock()
	return newGuard(&m.object, m.lock.Unlock)
}

// TryLock attempts to acquire the lock exclusively without blocking. The
// returned optional guard is empty if the lock was held, in any mode, by
// anyone else.
func (m *Mytex[T]) TryLock() *OptGuard[T] {
	if !m.lock.TryLock() {
		return &OptGuard[T]{}
	}
	return &OptGuard[T]{object: &m.object, release: m.lock.Unlock}
}

// An RWMytex is a Mytex backed by a reader/writer lock: in addition to
// exclusive acquisition it offers shared acquisition, under which any
// number of holders may read the value concurrently.
//
// The shared-mode operations exist only on this type. Code holding a
// plain Mytex cannot ask for shared access, which keeps "this capability
// has no shared mode" a compile-time fact rather than a run-time check.
//
// An RWMytex must not be copied after first use.
type RWMytex[T any] struct {
	lock   SharedLocker
	object T
}

// NewRW returns an RWMytex protecting value, backed by a sync.RWMutex.
func NewRW[T any](value T) *RWMytex[T] {
	return &RWMytex[T]{lock: new(sync.RWMutex), object: value}
}

// NewRWWithLocker returns an RWMytex protecting value, backed by the
// supplied shared-capable lock. The lock must be unheld.
func NewRWWithLocker[T any](lock SharedLocker, value T) *RWMytex[T] {
	if lock == nil {
		panic("mytex: NewRWWithLocker called with nil SharedLocker")
	}
	return &RWMytex[T]{lock: lock, object: value}
}

// Lock acquires the lock exclusively, blocking until every other holder,
// shared or exclusive, is gone, and returns a read-write guard.
func (m *RWMytex[T]) Lock() *Guard[T] {
	m.lock.Lock()
	return newGuard(&m.object, m.lock.Unlock)
}

// LockShared acquires the lock in shared mode, blocking while an
// exclusive holder exists, and returns a read-only guard. Any number of
// shared guards may be held at once.
func (m *RWMytex[T]) LockShared() *RGuard[T] {
	m.lock.RLock()
	return newRGuard(&m.object, m.lock.RUnlock)
}

// TryLock attempts exclusive acquisition without blocking; the result is
// empty if any holder, shared or exclusive, exists.
func (m *RWMytex[T]) TryLock() *OptGuard[T] {
	if !m.lock.TryLock() {
		return &OptGuard[T]{}
	}
	return &OptGuard[T]{object: &m.object, release: m.lock.Unlock}
}

// TryLockShared attempts shared acquisition without blocking; the result
// is empty if an exclusive holder exists.
func (m *RWMytex[T]) TryLockShared() *OptRGuard[T] {
	if !m.lock.TryRLock() {
		return &OptRGuard[T]{}
	}
	return &OptRGuard[T]{object: &m.object, release: m.lock.RUnlock}
}
