package metrics

import (
	"context"
	"time"

	"github.com/pwnedgod/synchro/mutex"
)

type meteredLocker struct {
	locker    mutex.Locker
	collector *Collector
}

// NewLocker wraps locker so that every Obtain and Release is recorded in c.
func NewLocker(locker mutex.Locker, c *Collector) mutex.Locker {
	return &meteredLocker{
		locker:    locker,
		collector: c,
	}
}

func (lr meteredLocker) Obtain(ctx context.Context, key string) (mutex.Lock, error) {
	start := time.Now()
	lock, err := lr.locker.Obtain(ctx, key)
	lr.collector.WaitSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		lr.collector.Failures.WithLabelValues("obtain").Inc()
		return nil, err
	}

	lr.collector.Acquired.Inc()
	lr.collector.Held.Inc()
	return &meteredLock{lock: lock, collector: lr.collector}, nil
}

func (lr meteredLocker) Close() error {
	return lr.locker.Close()
}

type meteredLock struct {
	lock      mutex.Lock
	collector *Collector
}

func (l meteredLock) Key() string {
	return l.lock.Key()
}

func (l meteredLock) Release(ctx context.Context) error {
	if err := l.lock.Release(ctx); err != nil {
		l.collector.Failures.WithLabelValues("release").Inc()
		return err
	}

	l.collector.Released.Inc()
	l.collector.Held.Dec()
	return nil
}
