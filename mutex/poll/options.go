package poll

import "time"

const DefaultPollInterval = 10 * time.Millisecond

type Option func(*options)

type options struct {
	pollInterval time.Duration
}

func defaultOptions() options {
	return options{
		pollInterval: DefaultPollInterval,
	}
}

// WithPollInterval sets how long a waiter sleeps between checks of a busy key.
// Non-positive values keep the default of 10ms.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pollInterval = d
		}
	}
}
