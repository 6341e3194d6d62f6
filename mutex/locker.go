package mutex

import (
	"context"
	"io"
)

// Locker hands out exclusive locks by key.
//
// Obtain waits until the key is free. Implementations in this module never abandon a
// pending Obtain: ctx is carried for the lock's lifetime but does not cancel the wait.
// Obtaining a key that the caller already holds waits forever.
type Locker interface {
	io.Closer

	Obtain(ctx context.Context, key string) (Lock, error)
}

// Lock is a held key. Release must be called exactly once.
type Lock interface {
	Key() string
	Release(ctx context.Context) error
}
