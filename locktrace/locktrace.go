// Package locktrace wraps a lock capability with structured logging.
//
// The wrappers log every acquisition and release, including how long a
// blocking acquisition waited, which is usually enough to find the
// contended lock or the missing Unlock without reaching for a profiler.
// They are drop-in: a wrapped capability still satisfies mytex.Locker or
// mytex.SharedLocker and can back a Mytex as usual.
package locktrace

import (
	"time"

	"go.uber.org/zap"

	"github.com/barometz/mytex"
)

type traced struct {
	inner mytex.Locker
	log   *zap.Logger
	name  string
}

// Wrap returns l with acquire/release logging at debug level. The name
// identifies the lock in log output.
func Wrap(l mytex.Locker, log *zap.Logger, name string) mytex.Locker {
	return &traced{inner: l, log: log, name: name}
}

func (t *traced) Lock() {
	start := time.Now()
	t.inner.Lock()
	t.log.Debug("lock acquired",
		zap.String("lock", t.name),
		zap.Duration("wait", time.Since(start)))
}

func (t *traced) Unlock() {
	t.inner.Unlock()
	t.log.Debug("lock released", zap.String("lock", t.name))
}

func (t *traced) TryLock() bool {
	ok := t.inner.TryLock()
	t.log.Debug("trylock",
		zap.String("lock", t.name),
		zap.Bool("acquired", ok))
	return ok
}

type tracedShared struct {
	traced
	shared mytex.SharedLocker
}

// WrapShared is Wrap for shared-capable capabilities; shared-mode
// operations are logged with a mode field.
func WrapShared(l mytex.SharedLocker, log *zap.Logger, name string) mytex.SharedLocker {
	return &tracedShared{
		traced: traced{inner: l, log: log, name: name},
		shared: l,
	}
}

func (t *tracedShared) RLock() {
	start := time.Now()
	t.shared.RLock()
	t.log.Debug("lock acquired",
		zap.String("lock", t.name),
		zap.String("mode", "shared"),
		zap.Duration("wait", time.Since(start)))
}

func (t *tracedShared) RUnlock() {
	t.shared.RUnlock()
	t.log.Debug("lock released",
		zap.String("lock", t.name),
		zap.String("mode", "shared"))
}

func (t *tracedShared) TryRLock() bool {
	ok := t.shared.TryRLock()
	t.log.Debug("trylock",
		zap.String("lock", t.name),
		zap.String("mode", "shared"),
		zap.Bool("acquired", ok))
	return ok
}
