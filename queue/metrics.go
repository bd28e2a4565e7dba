package queue

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cbrady321/MeteredBlockingQueue/metric"
)

// queueMetrics holds Prometheus metrics for queue activity.
type queueMetrics struct {
	// Counter metrics
	offers        prometheus.Counter
	offerTimeouts prometheus.Counter
	cancellations prometheus.Counter
	drains        prometheus.Counter
	itemsDrained  prometheus.Counter

	// Gauge metrics
	size        prometheus.Gauge
	utilization prometheus.Gauge
	poisoned    prometheus.Gauge

	// Histogram metrics
	batchSize prometheus.Histogram
}

// newQueueMetrics creates and registers queue metrics with the provided registry.
func newQueueMetrics(registry *metric.Registry, component string) (*queueMetrics, error) {
	labels := prometheus.Labels{"component": component}

	m := &queueMetrics{
		offers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "offers_total",
			ConstLabels: labels,
			Help:        "Total number of items successfully enqueued",
		}),
		offerTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "offer_timeouts_total",
			ConstLabels: labels,
			Help:        "Total number of enqueue attempts that timed out waiting for space",
		}),
		cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "cancellations_total",
			ConstLabels: labels,
			Help:        "Total number of blocking waits ended by context cancellation",
		}),
		drains: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "drains_total",
			ConstLabels: labels,
			Help:        "Total number of drain operations, empty drains included",
		}),
		itemsDrained: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "items_drained_total",
			ConstLabels: labels,
			Help:        "Total number of items moved to sinks by drain operations",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of live items in the queue",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "utilization",
			ConstLabels: labels,
			Help:        "Queue utilization as a fraction of capacity (0.0 to 1.0)",
		}),
		poisoned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "poisoned",
			ConstLabels: labels,
			Help:        "1 once the queue has been poisoned, 0 before",
		}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "meteredqueue",
			Subsystem:   "queue",
			Name:        "drain_batch_size",
			ConstLabels: labels,
			Help:        "Distribution of items moved per non-empty drain",
			Buckets:     prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(component, "queue_offers", m.offers); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "queue_offer_timeouts", m.offerTimeouts); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "queue_cancellations", m.cancellations); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "queue_drains", m.drains); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(component, "queue_items_drained", m.itemsDrained); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(component, "queue_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(component, "queue_utilization", m.utilization); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(component, "queue_poisoned", m.poisoned); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogram(component, "queue_drain_batch_size", m.batchSize); err != nil {
		return nil, err
	}

	return m, nil
}

// recordOffer increments the offer counter and updates size/utilization.
func (m *queueMetrics) recordOffer(size, capacity int) {
	m.offers.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordOfferTimeout increments the offer timeout counter.
func (m *queueMetrics) recordOfferTimeout() {
	m.offerTimeouts.Inc()
}

// recordCancellation increments the cancellation counter.
func (m *queueMetrics) recordCancellation() {
	m.cancellations.Inc()
}

// recordDrain increments drain counters and updates size/utilization.
func (m *queueMetrics) recordDrain(n, size, capacity int) {
	m.drains.Inc()
	if n > 0 {
		m.itemsDrained.Add(float64(n))
		m.batchSize.Observe(float64(n))
	}
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordPoison marks the poisoned gauge.
func (m *queueMetrics) recordPoison() {
	m.poisoned.Set(1)
}
