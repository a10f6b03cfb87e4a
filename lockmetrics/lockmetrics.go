// Package lockmetrics wraps a lock capability with Prometheus
// instrumentation: acquisition counts, non-blocking acquisition failures,
// wait time, and whether a lock is currently held.
//
// One Metrics value owns the collectors; its Wrap methods then instrument
// any number of locks, distinguished by the name label. Wrapped
// capabilities still satisfy mytex.Locker / mytex.SharedLocker.
package lockmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/barometz/mytex"
)

// Metrics holds the collectors shared by all locks it instruments.
// Labels: name is the lock's identity, mode is "exclusive" or "shared".
type Metrics struct {
	acquisitions *prometheus.CounterVec
	tryFailures  *prometheus.CounterVec
	waitSeconds  *prometheus.HistogramVec
	held         *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		acquisitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lock_acquisitions_total",
			Help: "Completed lock acquisitions.",
		}, []string{"name", "mode"}),
		tryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lock_try_failures_total",
			Help: "Non-blocking acquisition attempts that found the lock held.",
		}, []string{"name", "mode"}),
		waitSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lock_wait_seconds",
			Help:    "Time blocked waiting for a lock.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"name", "mode"}),
		held: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lock_held",
			Help: "Current holders of the lock (0 or 1 exclusive, 0..n shared).",
		}, []string{"name", "mode"}),
	}
}

const (
	modeExclusive = "exclusive"
	modeShared    = "shared"
)

type instrumented struct {
	inner mytex.Locker
	m     *Metrics
	name  string
}

// Wrap returns l with instrumentation under the given name.
func (m *Metrics) Wrap(l mytex.Locker, name string) mytex.Locker {
	return &instrumented{inner: l, m: m, name: name}
}

func (i *instrumented) Lock() {
	start := time.Now()
	i.inner.Lock()
	i.m.waitSeconds.WithLabelValues(i.name, modeExclusive).Observe(time.Since(start).Seconds())
	i.m.acquisitions.WithLabelValues(i.name, modeExclusive).Inc()
	i.m.held.WithLabelValues(i.name, modeExclusive).Set(1)
}

func (i *instrumented) Unlock() {
	i.m.held.WithLabelValues(i.name, modeExclusive).Set(0)
	i.inner.Unlock()
}

func (i *instrumented) TryLock() bool {
	if !i.inner.TryLock() {
		i.m.tryFailures.WithLabelValues(i.name, modeExclusive).Inc()
		return false
	}
	i.m.acquisitions.WithLabelValues(i.name, modeExclusive).Inc()
	i.m.held.WithLabelValues(i.name, modeExclusive).Set(1)
	return true
}

type instrumentedShared struct {
	instrumented
	shared mytex.SharedLocker
}

// WrapShared is Wrap for shared-capable capabilities.
func (m *Metrics) WrapShared(l mytex.SharedLocker, name string) mytex.SharedLocker {
	return &instrumentedShared{
		instrumented: instrumented{inner: l, m: m, name: name},
		shared:       l,
	}
}

func (i *instrumentedShared) RLock() {
	start := time.Now()
	i.shared.RLock()
	i.m.waitSeconds.WithLabelValues(i.name, modeShared).Observe(time.Since(start).Seconds())
	i.m.acquisitions.WithLabelValues(i.name, modeShared).Inc()
	i.m.held.WithLabelValues(i.name, modeShared).Inc()
}

func (i *instrumentedShared) RUnlock() {
	i.m.held.WithLabelValues(i.name, modeShared).Dec()
	i.shared.RUnlock()
}

func (i *instrumentedShared) TryRLock() bool {
	if !i.shared.TryRLock() {
		i.m.tryFailures.WithLabelValues(i.name, modeShared).Inc()
		return false
	}
	i.m.acquisitions.WithLabelValues(i.name, modeShared).Inc()
	i.m.held.WithLabelValues(i.name, modeShared).Inc()
	return true
}
