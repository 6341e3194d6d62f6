// Package metrics exposes Prometheus collectors for keyed locks and a Locker
// decorator that feeds them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector groups the lock metrics of one KeyedLock. Keys are not used as labels
// since their cardinality is unbounded.
type Collector struct {
	// Acquired counts successful Obtain calls.
	Acquired prometheus.Counter
	// Released counts successful Release calls.
	Released prometheus.Counter
	// Failures counts failed Obtain and Release calls.
	Failures *prometheus.CounterVec
	// Held reports the number of keys currently held.
	Held prometheus.Gauge
	// WaitSeconds observes how long Obtain took, including time spent behind a busy key.
	WaitSeconds prometheus.Histogram
}

func NewCollector(namespace string) *Collector {
	return &Collector{
		Acquired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_acquired_total",
			Help:      "Total number of keyed locks acquired",
		}),
		Released: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_released_total",
			Help:      "Total number of keyed locks released",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_failures_total",
			Help:      "Total number of failed lock obtains and releases",
		}, []string{"op"}),
		Held: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lock_held",
			Help:      "Current number of held keyed locks",
		}),
		WaitSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lock_wait_seconds",
			Help:      "Time spent obtaining a keyed lock",
			Buckets:   []float64{.0001, .001, .005, .01, .025, .05, .1, .25, .5, 1, 5},
		}),
	}
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.Acquired, c.Released, c.Failures, c.Held, c.WaitSeconds}
}

// Register registers every metric of c on reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (c *Collector) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(c.collectors()...)
}
