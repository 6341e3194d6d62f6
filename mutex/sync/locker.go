// Package sync is the default in-process backend. Each busy key is backed by a
// sync.Mutex, so waiters are parked by the runtime instead of polling.
package sync

import (
	"context"
	"sync/atomic"

	"github.com/pwnedgod/synchro/mutex"
)

type syncMutexLocker struct {
	mm     *mutex.MultiMutex
	closed atomic.Bool
}

func NewLocker() mutex.Locker {
	return NewLockerWithMultiMutex(mutex.NewMultiMutex(NewMutexFactory()))
}

// NewLockerWithMultiMutex uses mm as the key table, e.g. one built with a custom shard count.
func NewLockerWithMultiMutex(mm *mutex.MultiMutex) mutex.Locker {
	return &syncMutexLocker{
		mm: mm,
	}
}

func (lr *syncMutexLocker) Obtain(ctx context.Context, key string) (mutex.Lock, error) {
	if lr.closed.Load() {
		return nil, mutex.ErrClosed
	}

	if err := lr.mm.Lock(ctx, key); err != nil {
		return nil, mutex.ErrFailedLock
	}

	return &syncMutexLock{
		mm:  lr.mm,
		key: key,
	}, nil
}

// Close rejects further Obtain calls. Held locks can still be released and goroutines
// already waiting keep waiting for their key.
func (lr *syncMutexLocker) Close() error {
	if !lr.closed.CompareAndSwap(false, true) {
		return mutex.ErrClosed
	}
	return nil
}

type syncMutexLock struct {
	mm       *mutex.MultiMutex
	key      string
	released atomic.Bool
}

func (l *syncMutexLock) Key() string {
	return l.key
}

func (l *syncMutexLock) Release(ctx context.Context) error {
	if !l.released.CompareAndSwap(false, true) {
		return mutex.ErrFailedUnlock
	}
	if err := l.mm.Unlock(ctx, l.key); err != nil {
		return mutex.ErrFailedUnlock
	}
	return nil
}
