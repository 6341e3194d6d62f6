// Package poll implements a Locker over a table of per-key busy flags. A waiter
// re-checks its key at a fixed interval until the flag is clear, so admission among
// waiters of one key is unordered.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pwnedgod/synchro/mutex"
)

// pollLocker keeps one entry per busy key, holding the owner token of the current
// hold. A key without an entry is free; entries are removed on release, so the
// table never outgrows the set of held keys.
type pollLocker struct {
	// mu makes check-then-set on the table atomic.
	mu     sync.Mutex
	table  map[string]string
	closed bool

	pollInterval time.Duration
}

func NewLocker(opts ...Option) mutex.Locker {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &pollLocker{
		table:        make(map[string]string),
		pollInterval: o.pollInterval,
	}
}

func (lr *pollLocker) Obtain(ctx context.Context, key string) (mutex.Lock, error) {
	for {
		lock, err := lr.tryObtain(key)
		if err != nil {
			return nil, err
		}
		if lock != nil {
			return lock, nil
		}
		time.Sleep(lr.pollInterval)
	}
}

// Close rejects further Obtain calls. Locks still held may be released afterwards;
// waiters fail with mutex.ErrClosed on their next check.
func (lr *pollLocker) Close() error {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	if lr.closed {
		return mutex.ErrClosed
	}
	lr.closed = true
	return nil
}

func (lr *pollLocker) tryObtain(key string) (*pollLock, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	if lr.closed {
		return nil, mutex.ErrClosed
	}
	if _, busy := lr.table[key]; busy {
		return nil, nil
	}

	owner := uuid.NewString()
	lr.table[key] = owner

	return &pollLock{
		lr:    lr,
		key:   key,
		owner: owner,
	}, nil
}

// release clears the flag only for the hold that set it, so a repeated or stale
// Release cannot free a key owned by another caller.
func (lr *pollLocker) release(l *pollLock) error {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	if owner, ok := lr.table[l.key]; !ok || owner != l.owner {
		return mutex.ErrFailedUnlock
	}
	delete(lr.table, l.key)
	return nil
}

type pollLock struct {
	lr    *pollLocker
	key   string
	owner string
}

func (l *pollLock) Key() string {
	return l.key
}

func (l *pollLock) Release(ctx context.Context) error {
	return l.lr.release(l)
}
