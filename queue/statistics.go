package queue

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks queue activity. It is always enabled: hot-path updates
// are atomic counters, so collection costs no allocation and no lock.
type Statistics struct {
	// Atomic counters for thread-safe updates
	offers        int64
	offerTimeouts int64
	cancellations int64
	drains        int64
	emptyDrains   int64
	itemsDrained  int64
	poisons       int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
	maxBatch    int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Offer records a successful enqueue.
func (s *Statistics) Offer() {
	atomic.AddInt64(&s.offers, 1)
}

// OfferTimeout records an enqueue that gave up without inserting.
func (s *Statistics) OfferTimeout() {
	atomic.AddInt64(&s.offerTimeouts, 1)
}

// Cancellation records a blocking wait interrupted by its context.
func (s *Statistics) Cancellation() {
	atomic.AddInt64(&s.cancellations, 1)
}

// Drain records a bulk dequeue that moved n items to the sink.
func (s *Statistics) Drain(n int) {
	atomic.AddInt64(&s.drains, 1)
	if n == 0 {
		atomic.AddInt64(&s.emptyDrains, 1)
		return
	}
	atomic.AddInt64(&s.itemsDrained, int64(n))

	s.mu.Lock()
	if int64(n) > s.maxBatch {
		s.maxBatch = int64(n)
	}
	s.mu.Unlock()
}

// Poison records the first poisoning of the queue.
func (s *Statistics) Poison() {
	atomic.AddInt64(&s.poisons, 1)
}

// UpdateSize updates the current live-item count.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Offers returns the total number of successful enqueues.
func (s *Statistics) Offers() int64 {
	return atomic.LoadInt64(&s.offers)
}

// OfferTimeouts returns the number of enqueues that timed out.
func (s *Statistics) OfferTimeouts() int64 {
	return atomic.LoadInt64(&s.offerTimeouts)
}

// Cancellations returns the number of waits ended by context cancellation.
func (s *Statistics) Cancellations() int64 {
	return atomic.LoadInt64(&s.cancellations)
}

// Drains returns the total number of drain calls, empty drains included.
func (s *Statistics) Drains() int64 {
	return atomic.LoadInt64(&s.drains)
}

// EmptyDrains returns the number of drains that moved no items.
func (s *Statistics) EmptyDrains() int64 {
	return atomic.LoadInt64(&s.emptyDrains)
}

// ItemsDrained returns the total number of items moved to sinks.
func (s *Statistics) ItemsDrained() int64 {
	return atomic.LoadInt64(&s.itemsDrained)
}

// CurrentSize returns the live-item count at the last update.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the highest live-item count observed.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// MaxBatch returns the largest single drain batch observed.
func (s *Statistics) MaxBatch() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxBatch
}

// AvgBatchSize returns the mean batch size across non-empty drains.
func (s *Statistics) AvgBatchSize() float64 {
	nonEmpty := s.Drains() - s.EmptyDrains()
	if nonEmpty == 0 {
		return 0.0
	}
	return float64(s.ItemsDrained()) / float64(nonEmpty)
}

// OfferThroughput returns the average number of successful enqueues per second.
func (s *Statistics) OfferThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Offers()) / elapsed.Seconds()
}

// TimeoutRate returns the fraction of offer attempts that timed out (0.0 to 1.0).
func (s *Statistics) TimeoutRate() float64 {
	offers := s.Offers()
	timeouts := s.OfferTimeouts()

	attempts := offers + timeouts
	if attempts == 0 {
		return 0.0
	}

	return float64(timeouts) / float64(attempts)
}

// Uptime returns how long the queue has existed.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.offers, 0)
	atomic.StoreInt64(&s.offerTimeouts, 0)
	atomic.StoreInt64(&s.cancellations, 0)
	atomic.StoreInt64(&s.drains, 0)
	atomic.StoreInt64(&s.emptyDrains, 0)
	atomic.StoreInt64(&s.itemsDrained, 0)
	atomic.StoreInt64(&s.poisons, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.maxBatch = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Offers          int64         `json:"offers"`
	OfferTimeouts   int64         `json:"offer_timeouts"`
	Cancellations   int64         `json:"cancellations"`
	Drains          int64         `json:"drains"`
	EmptyDrains     int64         `json:"empty_drains"`
	ItemsDrained    int64         `json:"items_drained"`
	CurrentSize     int64         `json:"current_size"`
	MaxSize         int64         `json:"max_size"`
	MaxBatch        int64         `json:"max_batch"`
	AvgBatchSize    float64       `json:"avg_batch_size"`
	OfferThroughput float64       `json:"offer_throughput"`
	TimeoutRate     float64       `json:"timeout_rate"`
	Uptime          time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Offers:          s.Offers(),
		OfferTimeouts:   s.OfferTimeouts(),
		Cancellations:   s.Cancellations(),
		Drains:          s.Drains(),
		EmptyDrains:     s.EmptyDrains(),
		ItemsDrained:    s.ItemsDrained(),
		CurrentSize:     s.CurrentSize(),
		MaxSize:         s.MaxSize(),
		MaxBatch:        s.MaxBatch(),
		AvgBatchSize:    s.AvgBatchSize(),
		OfferThroughput: s.OfferThroughput(),
		TimeoutRate:     s.TimeoutRate(),
		Uptime:          s.Uptime(),
	}
}
