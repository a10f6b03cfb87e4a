package mytex

import "sync"

// Locker is the minimal lock capability a Mytex composes: exclusive
// acquire, release, and non-blocking acquire.
//
// *sync.Mutex satisfies Locker. Implementations need not be reentrant;
// calling Lock twice from the same goroutine on a non-reentrant Locker
// deadlocks, and Mytex does not detect that.
type Locker interface {
	// Lock blocks until the lock is held exclusively.
	Lock()
	// Unlock releases an exclusive hold. Calling it without holding the
	// lock is a run-time error in most implementations.
	Unlock()
	// TryLock attempts to take the lock without blocking and reports
	// whether it succeeded.
	TryLock() bool
}

// SharedLocker extends Locker with a shared (reader) mode: any number of
// shared holders may coexist, but shared and exclusive holds are mutually
// exclusive.
//
// *sync.RWMutex satisfies SharedLocker, as does rwmutex.RWMutex in this
// module. Fairness between readers and writers is whatever the
// implementation provides; RWMytex adds nothing on top.
type SharedLocker interface {
	Locker
	// RLock blocks until the lock is held in shared mode.
	RLock()
	// RUnlock releases one shared hold.
	RUnlock()
	// TryRLock attempts to take a shared hold without blocking and
	// reports whether it succeeded.
	TryRLock() bool
}

var (
	_ Locker       = (*sync.Mutex)(nil)
	_ SharedLocker = (*sync.RWMutex)(nil)
)
