// Package rwmutex implements a reader/writer mutual-exclusion lock on top
// of channels. It exists mostly as an alternative lock capability for
// mytex: it satisfies mytex.SharedLocker without touching the sync
// package, which makes it a convenient stand-in when a test or example
// needs a second, observable lock implementation.
package rwmutex

// A RWMutex is a reader/writer mutual exclusion lock. The lock can be
// held by an arbitrary number of readers or a single writer.
//
// Recursive read locking is prohibited: if a goroutine holds the lock for
// reading and another goroutine calls Lock, no goroutine should expect to
// acquire a read lock until the first read lock is released.
//
// Use New; the zero value is not usable.
type RWMutex struct {
	w       chan struct{} // write token; empty while any holder exists
	r       chan struct{} // guards readers
	readers int
}

// New creates an unlocked *RWMutex.
func New() *RWMutex {
	mu := &RWMutex{
		w: make(chan struct{}, 1),
		r: make(chan struct{}, 1),
	}
	mu.w <- struct{}{}
	mu.r <- struct{}{}
	return mu
}

// Lock locks rw for writing. If the lock is already held for reading or
// writing, Lock blocks until it is available.
func (rw *RWMutex) Lock() {
	<-rw.w
}

// Unlock unlocks rw for writing. It is a caller error if rw is not locked
// for writing on entry to Unlock.
func (rw *RWMutex) Unlock() {
	rw.w <- struct{}{}
}

// TryLock attempts to lock rw for writing without blocking and reports
// whether it succeeded.
func (rw *RWMutex) TryLock() bool {
	select {
	case <-rw.w:
		return true
	default:
		return false
	}
}

// RLock locks rw for reading. The first reader in takes the write token;
// later readers only bump the count.
func (rw *RWMutex) RLock() {
	<-rw.r
	if rw.readers == 0 {
		<-rw.w
	}
	rw.readers++
	rw.r <- struct{}{}
}

// RUnlock undoes a single RLock call; it does not affect other
// simultaneous readers. It is a caller error if rw is not locked for
// reading on entry to RUnlock.
func (rw *RWMutex) RUnlock() {
	<-rw.r
	rw.readers--
	if rw.readers == 0 {
		rw.w <- struct{}{}
	}
	rw.r <- struct{}{}
}

// TryRLock attempts to lock rw for reading without blocking and reports
// whether it succeeded. Like sync.RWMutex's TryRLock it may fail even
// when a read lock could have been acquired a moment later, for example
// while another reader is mid-RLock.
func (rw *RWMutex) TryRLock() bool {
	select {
	case <-rw.r:
	default:
		return false
	}
	if rw.readers == 0 {
		select {
		case <-rw.w:
		default:
			rw.r <- struct{}{}
			return false
		}
	}
	rw.readers++
	rw.r <- struct{}{}
	return true
}
