package mutex

import "errors"

var (
	ErrFailedLock   = errors.New("synchro: failed lock")
	ErrFailedUnlock = errors.New("synchro: failed unlock")
	ErrClosed       = errors.New("synchro: locker closed")
)
