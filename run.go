package synchro

import "context"

// Run is RunExclusive with a typed result.
func Run[T any](ctx context.Context, kl KeyedLock, key interface{}, operation func(ctx context.Context) (T, error)) (T, error) {
	if operation == nil {
		panic("nil operation")
	}

	value, err := kl.RunExclusive(ctx, key, func(ctx context.Context) (interface{}, error) {
		return operation(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	// value is nil when T is an interface type and the operation returned nil.
	result, _ := value.(T)
	return result, nil
}
