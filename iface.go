// Package synchro runs operations under per-key mutual exclusion.
//
// At most one operation runs at a time for a given key; operations under different
// keys run concurrently. Waiters for a busy key are admitted in no particular order.
// Locks are in-process only and are not reentrant: running an operation for a key
// from inside another operation holding the same key never returns.
package synchro

import (
	"context"
	"crypto/sha1"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

type (
	OperationFunc func(ctx context.Context) (interface{}, error)

	KeyedLock interface {
		io.Closer

		// Run the operation once the key is free and release the key when it returns.
		//
		// The key is resolved first; keys that cannot be resolved fail with ErrInvalidKey
		// without running the operation. Errors returned by the operation are returned
		// unchanged. The key is released on every exit path, including a panic, which is
		// propagated after the release.
		//
		// A pending call cannot be cancelled; ctx is handed to the operation and the lock.
		RunExclusive(ctx context.Context, key interface{}, operation OperationFunc) (interface{}, error)
	}

	Keyable interface {
		Key() (string, error)
	}

	KeyableMap map[string]interface{}
)

func (m KeyableMap) Key() (string, error) {
	hash := sha1.New()
	enc := msgpack.NewEncoder(hash)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(map[string]interface{}(m)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
