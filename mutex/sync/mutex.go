package sync

import (
	"context"
	"sync"

	"github.com/pwnedgod/synchro/mutex"
)

type syncMutexFactory struct {
}

// NewMutexFactory returns a factory of in-process mutexes. Waiters block in the
// runtime scheduler rather than polling, and ctx is not consulted while waiting.
func NewMutexFactory() mutex.MutexFactory {
	return &syncMutexFactory{}
}

func (f syncMutexFactory) Make(string) mutex.Mutex {
	return &syncMutex{}
}

// syncMutex never fails: both methods always return nil.
type syncMutex struct {
	mu sync.Mutex
}

func (m *syncMutex) Lock(context.Context) error {
	m.mu.Lock()
	return nil
}

func (m *syncMutex) Unlock(context.Context) error {
	m.mu.Unlock()
	return nil
}
