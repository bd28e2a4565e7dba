package drain

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cbrady321/MeteredBlockingQueue/errors"
	"github.com/cbrady321/MeteredBlockingQueue/metric"
	"github.com/cbrady321/MeteredBlockingQueue/pkg/retry"
	"github.com/cbrady321/MeteredBlockingQueue/queue"
)

// Handler processes one drained batch. Items arrive in insertion order.
// A nil return acknowledges the batch; a transient error triggers a retry
// of the same batch; an invalid, fatal, or cancelled error drops it.
type Handler[T any] func(ctx context.Context, batch []T) error

// Consumer runs the single consumer goroutine for a queue: it drains in
// a loop, dispatches non-empty batches to a handler, and exits once the
// queue is poisoned and empty.
type Consumer[T any] struct {
	// Configuration
	queue   *queue.Queue[T]
	handler Handler[T]

	drainWait time.Duration
	retryCfg  retry.Config
	logger    *slog.Logger

	// Lifecycle management
	lifecycleMu sync.Mutex
	started     bool
	stopped     bool
	wg          *sync.WaitGroup

	// Statistics (atomic)
	batches         int64
	items           int64
	handlerFailures int64
	droppedBatches  int64

	// Metrics configuration
	metricsRegistry  *metric.Registry
	metricsComponent string
	metrics          *consumerMetrics
}

// New creates a consumer for the given queue and handler.
func New[T any](q *queue.Queue[T], handler Handler[T], opts ...Option[T]) (*Consumer[T], error) {
	if q == nil {
		return nil, errors.WrapInvalid(errors.ErrNilQueue, "Consumer", "New", "queue validation")
	}
	if handler == nil {
		return nil, errors.WrapInvalid(errors.ErrNilHandler, "Consumer", "New", "handler validation")
	}

	c := &Consumer[T]{
		queue:     q,
		handler:   handler,
		drainWait: time.Second,
		retryCfg:  retry.DefaultConfig(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.metricsRegistry != nil && c.metricsComponent != "" {
		metrics, err := newConsumerMetrics(c.metricsRegistry, c.metricsComponent)
		if err != nil {
			return nil, errors.WrapTransient(err, "Consumer", "New", "metrics registration")
		}
		c.metrics = metrics
	}

	return c, nil
}

// Start launches the consumer goroutine. The context bounds the loop: when
// it is cancelled the consumer exits without waiting for the queue to empty.
func (c *Consumer[T]) Start(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.started {
		return errors.ErrAlreadyStarted
	}

	c.wg = &sync.WaitGroup{}
	c.wg.Add(1)
	go c.run(ctx)

	c.started = true
	return nil
}

// Stop poisons the queue and waits for the consumer to finish draining the
// remaining items. The context bounds the wait; on expiry the loop is left
// running and ErrStopTimeout is returned.
func (c *Consumer[T]) Stop(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if !c.started {
		return errors.ErrNotStarted
	}
	if c.stopped {
		return errors.ErrAlreadyStopped
	}

	c.queue.Poison()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.stopped = true
		return nil
	case <-ctx.Done():
		return errors.ErrStopTimeout
	}
}

// run is the consumer loop. One work cycle: a bounded drain, then a handler
// dispatch if anything was collected, then the shutdown check.
func (c *Consumer[T]) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		batch := make(queue.SliceSink[T], 0, c.queue.FillLine())
		n, err := c.queue.DrainTo(ctx, &batch, c.drainWait)
		if err != nil {
			c.logger.Info("consumer loop exiting", "reason", "context cancelled", "error", err)
			return
		}

		if n > 0 {
			c.dispatch(ctx, batch)
		}

		if c.queue.IsPoisoned() && n == 0 && c.queue.Size() == 0 {
			c.logger.Info("consumer loop exiting",
				"reason", "poisoned and empty",
				"batches", atomic.LoadInt64(&c.batches),
				"items", atomic.LoadInt64(&c.items))
			return
		}
	}
}

// dispatch hands a batch to the handler, retrying transient failures. A
// batch that cannot be handled is dropped so the loop keeps draining.
func (c *Consumer[T]) dispatch(ctx context.Context, batch []T) {
	err := retry.Do(ctx, c.retryCfg, func() error {
		handlerErr := c.handler(ctx, batch)
		if handlerErr == nil {
			return nil
		}

		atomic.AddInt64(&c.handlerFailures, 1)
		if c.metrics != nil {
			c.metrics.handlerFailures.Inc()
		}

		if errors.IsInvalid(handlerErr) || errors.IsFatal(handlerErr) || errors.IsCancelled(handlerErr) {
			return retry.NonRetryable(handlerErr)
		}
		return handlerErr
	})
	if err != nil {
		atomic.AddInt64(&c.droppedBatches, 1)
		if c.metrics != nil {
			c.metrics.droppedBatches.Inc()
		}
		c.logger.Error("dropping batch after handler failure",
			"batch_size", len(batch),
			"error", err)
		return
	}

	atomic.AddInt64(&c.batches, 1)
	atomic.AddInt64(&c.items, int64(len(batch)))
	if c.metrics != nil {
		c.metrics.recordBatch(len(batch))
	}
}

// Stats returns current consumer statistics.
func (c *Consumer[T]) Stats() ConsumerStats {
	return ConsumerStats{
		Batches:         atomic.LoadInt64(&c.batches),
		Items:           atomic.LoadInt64(&c.items),
		HandlerFailures: atomic.LoadInt64(&c.handlerFailures),
		DroppedBatches:  atomic.LoadInt64(&c.droppedBatches),
	}
}

// ConsumerStats represents consumer loop statistics.
type ConsumerStats struct {
	Batches         int64 `json:"batches"`
	Items           int64 `json:"items"`
	HandlerFailures int64 `json:"handler_failures"`
	DroppedBatches  int64 `json:"dropped_batches"`
}
