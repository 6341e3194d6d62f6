package mutex

import "context"

// MutexFactory makes the per-key mutexes held by a MultiMutex. The factory is
// called once per key that has no waiters or holders; the MultiMutex owns the
// per-key refcount and drops the mutex when the count returns to zero, so a
// factory never has to track or free what it makes.
type MutexFactory interface {
	Make(key string) Mutex
}

// Mutex guards a single key. Lock blocks until the key is held by the caller.
// Unlock is called exactly once for each Lock that returned nil.
type Mutex interface {
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
}
