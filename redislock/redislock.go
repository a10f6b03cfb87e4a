// Package redislock implements a named, cross-process lock stored in
// Redis.
//
// The lock is a single key written with SET NX and a TTL; the holder is
// identified by a random owner token so that only the goroutine (or
// process) that acquired the lock can release it. While the lock is held
// a background goroutine keeps extending the TTL, so the key only
// expires if the holder dies.
//
// A *Lock satisfies mytex.Locker, which makes it usable as the capability
// behind a Mytex: the protected value then lives in this process, but the
// critical sections exclude every process sharing the Redis key. The
// context-aware Acquire/TryAcquire/Release methods are the primary API;
// the Lock/TryLock/Unlock adapters exist for the capability interface and
// turn transport errors into panics, since that interface has no error
// channel.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/barometz/mytex"
)

var _ mytex.Locker = (*Lock)(nil)

var (
	// ErrNotHeld is returned by Release when the lock is not held.
	ErrNotHeld = errors.New("redislock: lock is not held")
	// ErrLost is returned by Release when the key had already expired
	// and possibly been taken over; the critical section was not
	// protected for its whole duration.
	ErrLost = errors.New("redislock: lock was lost before release")
)

// releaseScript deletes the key only if we still own it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// refreshScript extends the TTL only if we still own the key.
var refreshScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
end
return 0
`)

// A Lock is one holder's handle to the named lock. Handles in different
// processes contend through the shared key; a single handle may also be
// shared by goroutines, in which case it behaves like a non-reentrant
// mutex.
type Lock struct {
	rdb   redis.UniversalClient
	key   string
	ttl   time.Duration
	retry time.Duration
	clock clockwork.Clock
	ctx   context.Context

	mu    sync.Mutex
	owner string        // "" while not held by this handle
	stop  chan struct{} // closed to stop the refresher
	done  chan struct{} // closed when the refresher has exited
}

// An Option adjusts a Lock at construction time.
type Option func(*Lock)

// WithTTL sets how long the key lives without a refresh. Shorter means
// faster recovery from a dead holder, at the cost of more refresh
// traffic. Default 10s.
func WithTTL(d time.Duration) Option {
	return func(l *Lock) { l.ttl = d }
}

// WithRetryInterval sets how often a blocked Acquire re-attempts the
// acquisition. Default 50ms.
func WithRetryInterval(d time.Duration) Option {
	return func(l *Lock) { l.retry = d }
}

// WithClock injects the clock driving retries and TTL refreshes; tests
// pass a clockwork fake.
func WithClock(c clockwork.Clock) Option {
	return func(l *Lock) { l.clock = c }
}

// WithContext sets the context used by the Lock/TryLock/Unlock capability
// adapters and by the TTL refresher. Default context.Background.
func WithContext(ctx context.Context) Option {
	return func(l *Lock) { l.ctx = ctx }
}

// New returns a handle to the lock named key.
func New(rdb redis.UniversalClient, key string, opts ...Option) *Lock {
	l := &Lock{
		rdb:   rdb,
		key:   key,
		ttl:   10 * time.Second,
		retry: 50 * time.Millisecond,
		clock: clockwork.NewRealClock(),
		ctx:   context.Background(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TryAcquire attempts to take the lock without blocking and reports
// whether it succeeded. It fails, without error, whenever any holder
// exists, including this handle.
func (l *Lock) TryAcquire(ctx context.Context) (bool, error) {
	owner := uuid.Must(uuid.NewV4()).String()

	ok, err := l.rdb.SetNX(ctx, l.key, owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redislock: acquire %q: %w", l.key, err)
	}
	if !ok {
		return false, nil
	}

	l.mu.Lock()
	if l.owner != "" {
		// SET NX succeeded while we thought we held the key, so the key
		// expired out from under us; retire the stale refresher before
		// installing the new one.
		close(l.stop)
		<-l.done
	}
	l.owner = owner
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.refresh(owner, l.stop, l.done)
	l.mu.Unlock()
	return true, nil
}

// Acquire takes the lock, retrying until it succeeds or ctx is done.
func (l *Lock) Acquire(ctx context.Context) error {
	ticker := l.clock.NewTicker(l.retry)
	defer ticker.Stop()
	for {
		ok, err := l.TryAcquire(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
		}
	}
}

// Release drops the lock. It returns ErrNotHeld if this handle does not
// hold it, and ErrLost if the key had already expired out from under us.
func (l *Lock) Release(ctx context.Context) error {
	l.mu.Lock()
	owner, stop, done := l.owner, l.stop, l.done
	l.owner, l.stop, l.done = "", nil, nil
	l.mu.Unlock()

	if owner == "" {
		return ErrNotHeld
	}
	close(stop)
	<-done

	n, err := releaseScript.Run(ctx, l.rdb, []string{l.key}, owner).Int()
	if err != nil {
		return fmt.Errorf("redislock: release %q: %w", l.key, err)
	}
	if n == 0 {
		return ErrLost
	}
	return nil
}

// refresh keeps the key's TTL topped up until stop closes. A refresh that
// fails is retried at the next tick; if the key expires despite that,
// Release reports ErrLost.
func (l *Lock) refresh(owner string, stop, done chan struct{}) {
	defer close(done)
	ticker := l.clock.NewTicker(l.ttl / 3)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			_, _ = refreshScript.Run(l.ctx, l.rdb, []string{l.key}, owner, l.ttl.Milliseconds()).Result()
		}
	}
}

// Lock blocks until the lock is acquired. It is the mytex.Locker
// rendering of Acquire; Redis errors panic.
func (l *Lock) Lock() {
	if err := l.Acquire(l.ctx); err != nil {
		panic(err)
	}
}

// TryLock attempts the acquisition without blocking. It is the
// mytex.Locker rendering of TryAcquire; Redis errors panic.
func (l *Lock) TryLock() bool {
	ok, err := l.TryAcquire(l.ctx)
	if err != nil {
		panic(err)
	}
	return ok
}

// Unlock releases the lock. It is the mytex.Locker rendering of Release;
// unlocking an unheld lock, losing the key to expiry, and Redis errors
// all panic.
func (l *Lock) Unlock() {
	if err := l.Release(l.ctx); err != nil {
		panic(err)
	}
}
