package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cbrady321/MeteredBlockingQueue/errors"
)

// Sink collects items removed from a queue during a drain.
// Implementations are caller-owned; the queue only appends to them.
type Sink[T any] interface {
	// Add appends one item to the sink.
	Add(item T)
}

// SliceSink is a slice-backed Sink.
type SliceSink[T any] []T

// Add appends item to the underlying slice.
func (s *SliceSink[T]) Add(item T) {
	*s = append(*s, item)
}

// Queue is a fixed-capacity circular buffer that batches items until a fill
// line is reached, the queue is poisoned, or a consumer-specified wait
// elapses. Any number of producers may call Offer concurrently; exactly one
// consumer is expected to call DrainTo.
//
// All buffer state is guarded by one mutex with two condition queues
// hanging off it: producers wait for space, the consumer waits for the fill
// line. The poison flag lives in its own atomic so liveness polling never
// contends with producers for the lock.
type Queue[T any] struct {
	// Buffer state, guarded by mu
	store []T
	head  int // next read position
	tail  int // next write position
	count int

	fillLine int

	mu             sync.Mutex
	notFull        waitList // producers wait here; only a drain frees space
	notEmptyEnough waitList // the consumer waits here for the fill line

	// Shutdown signal: independent synchronization domain, lock-free reads
	poisoned atomic.Bool

	stats   *Statistics
	metrics *queueMetrics
}

// New creates a Queue with the given fill line and capacity.
//
// The fill line is the live-item count at which a waiting consumer is woken.
// Both values must be positive and the fill line must not exceed capacity:
// a fill line the buffer can never reach would make every drain run out its
// full timeout, so it is rejected rather than constructed.
func New[T any](fillLine, capacity int, options ...Option[T]) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Queue", "New", "validate capacity")
	}
	if fillLine <= 0 || fillLine > capacity {
		return nil, errors.WrapInvalid(errors.ErrInvalidFillLine, "Queue", "New", "validate fill line")
	}

	opts := applyOptions(options...)

	var metrics *queueMetrics
	if opts.metricsReg != nil && opts.metricsComponent != "" {
		var err error
		metrics, err = newQueueMetrics(opts.metricsReg, opts.metricsComponent)
		if err != nil {
			return nil, errors.WrapTransient(err, "Queue", "New", "metrics registration")
		}
	}

	q := &Queue[T]{
		store:          make([]T, capacity),
		fillLine:       fillLine,
		notFull:        waitList{fair: opts.fair},
		notEmptyEnough: waitList{fair: opts.fair},
		stats:          NewStatistics(),
		metrics:        metrics,
	}
	return q, nil
}

// Offer inserts item at the tail of the queue, waiting up to timeout for
// space to become available if the queue is full. A timeout <= 0 means do
// not wait. Returns true if the item was inserted, false if the timeout
// elapsed with the queue still full.
//
// Cancellation of ctx during the wait surfaces as a Cancelled error; the
// interrupted caller re-signals the space condition first so a sibling
// producer is not starved by this caller's cancellation.
func (q *Queue[T]) Offer(ctx context.Context, item T, timeout time.Duration) (bool, error) {
	if any(item) == nil {
		return false, errors.WrapInvalid(errors.ErrNilItem, "Queue", "Offer", "validate item")
	}
	if err := ctx.Err(); err != nil {
		return false, errors.WrapCancelled(err, "Queue", "Offer", "enter")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	deadline := time.Now().Add(timeout)
	for {
		if q.count < len(q.store) {
			q.insert(item)
			return true, nil
		}
		remaining := time.Until(deadline)
		if timeout <= 0 || remaining <= 0 {
			q.stats.OfferTimeout()
			if q.metrics != nil {
				q.metrics.recordOfferTimeout()
			}
			return false, nil
		}
		if _, err := q.await(ctx, &q.notFull, remaining); err != nil {
			// Propagate the wakeup to a non-cancelled producer.
			q.notFull.signal()
			q.stats.Cancellation()
			if q.metrics != nil {
				q.metrics.recordCancellation()
			}
			return false, errors.WrapCancelled(err, "Queue", "Offer", "wait for space")
		}
		// Re-check the predicate: the wakeup may have been spurious or the
		// freed space already claimed by another producer.
	}
}

// insert places item at the tail and advances the circular indices.
// Call only while holding the lock with count < capacity.
func (q *Queue[T]) insert(item T) {
	q.store[q.tail] = item
	q.tail = q.inc(q.tail)
	q.count++

	q.stats.Offer()
	q.stats.UpdateSize(int64(q.count))
	if q.metrics != nil {
		q.metrics.recordOffer(q.count, len(q.store))
	}

	if q.count >= q.fillLine {
		q.notEmptyEnough.signal()
	}
}

// DrainTo atomically removes every live item from the queue into sink, in
// insertion order, and returns the number of items added.
//
// Unless the queue is already poisoned, the call first waits up to maxWait
// on the fill-line condition. The wait is a single bounded wait with no
// predicate re-check: a wakeup from a producer crossing the fill line, from
// Poison, from timeout expiry, or a spurious one all mean the same thing,
// drain whatever is present, possibly nothing. Cancellation of ctx during
// the wait re-signals the fill-line condition and returns a Cancelled error
// without draining.
//
// A drain that removed at least one item resets the queue's internal
// addressing to zero and wakes all producers blocked on space.
func (q *Queue[T]) DrainTo(ctx context.Context, sink Sink[T], maxWait time.Duration) (int, error) {
	if sink == nil {
		return 0, errors.WrapInvalid(errors.ErrNilSink, "Queue", "DrainTo", "validate sink")
	}
	if self, ok := any(sink).(*Queue[T]); ok && self == q {
		return 0, errors.WrapInvalid(errors.ErrSelfDrain, "Queue", "DrainTo", "validate sink")
	}
	if err := ctx.Err(); err != nil {
		return 0, errors.WrapCancelled(err, "Queue", "DrainTo", "enter")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.poisoned.Load() && maxWait > 0 {
		if _, err := q.await(ctx, &q.notEmptyEnough, maxWait); err != nil {
			// Propagate the wakeup opportunity to a consumer substitute.
			q.notEmptyEnough.signal()
			q.stats.Cancellation()
			if q.metrics != nil {
				q.metrics.recordCancellation()
			}
			return 0, errors.WrapCancelled(err, "Queue", "DrainTo", "wait for fill line")
		}
	}

	n := 0
	var zero T
	for i, k := q.head, q.count; k > 0; k-- {
		sink.Add(q.store[i])
		q.store[i] = zero
		i = q.inc(i)
		n++
	}
	if n > 0 {
		q.head = 0
		q.tail = 0
		q.count = 0
		q.notFull.broadcast()
	}

	q.stats.Drain(n)
	q.stats.UpdateSize(int64(q.count))
	if q.metrics != nil {
		q.metrics.recordDrain(n, q.count, len(q.store))
	}

	return n, nil
}

// Poison marks the queue as shut down: no further items are expected and
// subsequent drains return immediately with whatever is present. The flag
// transitions false to true at most once; calling Poison again only
// re-signals a consumer that may be waiting. Poisoning does not discard
// queued items.
func (q *Queue[T]) Poison() {
	if q.poisoned.CompareAndSwap(false, true) {
		q.stats.Poison()
		if q.metrics != nil {
			q.metrics.recordPoison()
		}
	}

	// Unblock a consumer currently waiting on the fill line so it observes
	// the poisoned state promptly instead of waiting out its timeout.
	q.mu.Lock()
	q.notEmptyEnough.signal()
	q.mu.Unlock()
}

// IsPoisoned reports whether the queue has been poisoned. It never blocks
// and never contends with producers or the consumer for the lock.
func (q *Queue[T]) IsPoisoned() bool {
	return q.poisoned.Load()
}

// Size returns the number of live items currently stored.
func (q *Queue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Capacity returns the fixed capacity of the queue.
func (q *Queue[T]) Capacity() int {
	return len(q.store) // immutable after construction
}

// FillLine returns the consumer wake-up threshold.
func (q *Queue[T]) FillLine() int {
	return q.fillLine
}

// Stats returns the queue's always-on statistics.
func (q *Queue[T]) Stats() *Statistics {
	return q.stats
}

// await parks the caller on wl for up to d, or until ctx is done. The queue
// lock is released while parked and reacquired before returning. Reports
// whether the waiter was signaled; a non-nil error means ctx ended the wait.
func (q *Queue[T]) await(ctx context.Context, wl *waitList, d time.Duration) (bool, error) {
	w := wl.add()
	timer := time.NewTimer(d)
	q.mu.Unlock()

	var signaled bool
	var err error
	select {
	case <-w:
		signaled = true
	case <-timer.C:
	case <-ctx.Done():
		err = ctx.Err()
	}
	timer.Stop()

	q.mu.Lock()
	if !signaled {
		// A signal may have raced with the timeout or cancellation; claim
		// it here so the caller can re-check its predicate, then leave the
		// list.
		select {
		case <-w:
			signaled = true
		default:
		}
		wl.remove(w)
	}
	return signaled, err
}

// inc circularly increments i.
func (q *Queue[T]) inc(i int) int {
	i++
	if i == len(q.store) {
		return 0
	}
	return i
}
