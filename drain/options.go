package drain

import (
	"log/slog"
	"time"

	"github.com/cbrady321/MeteredBlockingQueue/metric"
	"github.com/cbrady321/MeteredBlockingQueue/pkg/retry"
)

// Option represents a configuration option for the consumer
type Option[T any] func(*Consumer[T])

// WithDrainWait sets how long each work cycle waits for the queue to reach
// its fill line before draining whatever is present. Zero or negative
// disables waiting, turning the loop into a busy poll.
func WithDrainWait[T any](wait time.Duration) Option[T] {
	return func(c *Consumer[T]) {
		c.drainWait = wait
	}
}

// WithRetry sets the backoff configuration used for transient handler
// failures. Defaults to retry.DefaultConfig().
func WithRetry[T any](cfg retry.Config) Option[T] {
	return func(c *Consumer[T]) {
		c.retryCfg = cfg
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *Consumer[T]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics enables Prometheus metrics, registered with the given
// registry under the component label. Ignored if registry is nil or
// component is empty.
func WithMetrics[T any](registry *metric.Registry, component string) Option[T] {
	return func(c *Consumer[T]) {
		c.metricsRegistry = registry
		c.metricsComponent = component
	}
}
