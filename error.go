package synchro

import (
	"errors"
	"fmt"
)

var ErrInvalidKey = errors.New("synchro: invalid key")

type (
	baseError struct {
		category    string
		message     string
		previousErr error
	}

	keyError struct {
		baseError
	}

	lockError struct {
		baseError
		key string
	}
)

func newKeyError(message string, previousErr error) *keyError {
	return &keyError{
		baseError: baseError{
			category:    "key",
			message:     message,
			previousErr: previousErr,
		},
	}
}

func newLockError(category string, message string, key string, previousErr error) *lockError {
	return &lockError{
		baseError: baseError{
			category:    category,
			message:     message,
			previousErr: previousErr,
		},
		key: key,
	}
}

func (e baseError) Error() string {
	if e.previousErr == nil {
		return e.message
	}
	return fmt.Sprintf("%s (%s)", e.message, e.previousErr.Error())
}

func (e baseError) Unwrap() error {
	return e.previousErr
}

func (e keyError) Is(target error) bool {
	return target == ErrInvalidKey
}

func (e lockError) Error() string {
	return fmt.Sprintf("%s: %s", e.key, e.baseError.Error())
}
