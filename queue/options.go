package queue

import (
	"github.com/cbrady321/MeteredBlockingQueue/metric"
)

// Option configures queue behavior using the functional options pattern.
type Option[T any] func(*queueOptions[T])

// queueOptions holds internal configuration for queue instances.
// Statistics are ALWAYS collected; metrics are optional via WithMetrics().
type queueOptions[T any] struct {
	// fair selects FIFO wake order among blocked waiters. When false the
	// wake order is unspecified.
	fair bool

	// metricsReg is optional - if provided, queue activity is also exposed
	// as Prometheus metrics
	metricsReg *metric.Registry

	// metricsComponent is used as the component label for Prometheus metrics
	metricsComponent string
}

// WithFairness selects whether blocked producers and the waiting consumer
// are woken in first-in-first-out order. Defaults to false (unspecified
// order). Fairness governs wake order only; Go provides no control over
// lock-acquisition order itself.
func WithFairness[T any](fair bool) Option[T] {
	return func(opts *queueOptions[T]) {
		opts.fair = fair
	}
}

// WithMetrics enables Prometheus metrics export for queue activity.
// If registry is nil or component is empty, this option is ignored.
func WithMetrics[T any](registry *metric.Registry, component string) Option[T] {
	return func(opts *queueOptions[T]) {
		if registry != nil && component != "" {
			opts.metricsReg = registry
			opts.metricsComponent = component
		}
	}
}

// applyOptions applies functional options to create final queue configuration.
func applyOptions[T any](options ...Option[T]) *queueOptions[T] {
	opts := &queueOptions[T]{}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
