package synchro

import (
	"context"
	"crypto/sha1"
	"fmt"
	"reflect"

	"github.com/pwnedgod/synchro/codec"
	"github.com/pwnedgod/synchro/codec/msgpack"
	"github.com/pwnedgod/synchro/logger"
	"github.com/pwnedgod/synchro/logger/nop"
	"github.com/pwnedgod/synchro/mutex"
)

type defaultKeyedLock struct {
	locker mutex.Locker
	codec  codec.Codec
	logger logger.Logger
}

// NewKeyedLock returns a KeyedLock whose key table is owned by locker. The codec
// hashes keys that are neither strings, Keyable nor fmt.Stringer. A nil codec
// defaults to msgpack and a nil logger discards everything.
func NewKeyedLock(locker mutex.Locker, codec codec.Codec, logger logger.Logger) KeyedLock {
	if codec == nil {
		codec = msgpack.NewCodec()
	}
	if logger == nil {
		logger = nop.NewLogger()
	}

	return &defaultKeyedLock{
		locker: locker,
		codec:  codec,
		logger: logger,
	}
}

func (kl defaultKeyedLock) RunExclusive(ctx context.Context, kv interface{}, operation OperationFunc) (value interface{}, err error) {
	if operation == nil {
		panic("nil operation")
	}

	key, err := kl.getKey(kv)
	if err != nil {
		return nil, err
	}

	lock, err := kl.locker.Obtain(ctx, key)
	if err != nil {
		kl.logger.Error("lock obtain failed", "key", key, "error", err)
		return nil, newLockError("obtain", "error while obtaining lock", key, err)
	}
	kl.logger.Debug("lock acquired", "key", key)

	defer func() {
		releaseErr := lock.Release(ctx)
		if releaseErr != nil {
			kl.logger.Error("lock release failed", "key", key, "error", releaseErr)
		} else {
			kl.logger.Debug("lock released", "key", key)
		}

		// The operation's own error takes precedence.
		if releaseErr != nil && err == nil {
			value = nil
			err = newLockError("release", "error while releasing lock", key, releaseErr)
		}
	}()

	return operation(ctx)
}

func (kl defaultKeyedLock) Close() error {
	return kl.locker.Close()
}

func (kl defaultKeyedLock) getKey(kv interface{}) (string, error) {
	key, err := kl.makeKey(kv)
	if err != nil {
		return "", newKeyError("error while creating key", err)
	}
	if key == "" {
		return "", newKeyError("empty key", nil)
	}
	return key, nil
}

func (kl defaultKeyedLock) makeKey(kv interface{}) (string, error) {
	// A nil pointer would panic inside Key or String.
	if rv := reflect.ValueOf(kv); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return "", nil
	}

	switch k := kv.(type) {
	case nil:
		return "", nil
	case string:
		return k, nil
	case Keyable:
		return k.Key()
	case fmt.Stringer:
		return k.String(), nil
	}

	data, err := kl.codec.Marshal(kv)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", sha1.Sum(data)), nil
}
