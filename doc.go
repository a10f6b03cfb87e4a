// Package mytex provides a mutual-exclusion lock that owns the value it
// protects.
//
// A Mytex (or its reader/writer sibling RWMytex) holds the protected value
// inside itself, and the only way to reach that value is through a guard
// returned by one of the acquisition methods. Forgetting to lock before
// touching the value is therefore a compile error, not a code-review
// convention:
//
//	counter := mytex.New(0)
//
//	g := counter.Lock()
//	g.Set(g.Value() + 1)
//	g.Unlock()
//
// Guards release the lock exactly once, via Unlock; the usual pattern is
// defer. TryLock and TryLockShared never block and return optional guards
// that are either empty or hold the lock.
//
// The lock implementation itself is injectable: anything satisfying Locker
// (or SharedLocker for reader/writer use) can back a Mytex, from
// sync.Mutex to a cross-process lock such as redislock.Lock.
package mytex
