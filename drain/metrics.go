package drain

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cbrady321/MeteredBlockingQueue/metric"
)

// consumerMetrics holds Prometheus metrics for consumer loop activity.
type consumerMetrics struct {
	batches         prometheus.Counter
	items           prometheus.Counter
	handlerFailures prometheus.Counter
	droppedBatches  prometheus.Counter
	batchSize       prometheus.Histogram
}

// newConsumerMetrics creates and registers consumer metrics with the provided registry.
func newConsumerMetrics(registry *metric.Registry, component string) (*consumerMetrics, error) {
	labels := prometheus.Labels{"component": component}

	m := &consumerMetrics{
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "consumer",
			Name:        "batches_total",
			ConstLabels: labels,
			Help:        "Total number of batches handled successfully",
		}),
		items: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "consumer",
			Name:        "items_total",
			ConstLabels: labels,
			Help:        "Total number of items handled successfully",
		}),
		handlerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "consumer",
			Name:        "handler_failures_total",
			ConstLabels: labels,
			Help:        "Total number of handler invocations that returned an error, retries included",
		}),
		droppedBatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "consumer",
			Name:        "dropped_batches_total",
			ConstLabels: labels,
			Help:        "Total number of batches dropped after handler failures exhausted retries",
		}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "consumer",
			Name:        "batch_size",
			ConstLabels: labels,
			Help:        "Distribution of items per handled batch",
			Buckets:     prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(component, "consumer_batches", m.batches); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "consumer_items", m.items); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "consumer_handler_failures", m.handlerFailures); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "consumer_dropped_batches", m.droppedBatches); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogram(component, "consumer_batch_size", m.batchSize); err != nil {
		return nil, err
	}

	return m, nil
}

// recordBatch records a successfully handled batch.
func (m *consumerMetrics) recordBatch(n int) {
	m.batches.Inc()
	m.items.Add(float64(n))
	m.batchSize.Observe(float64(n))
}
