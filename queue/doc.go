// Package queue provides a bounded, thread-safe metered queue with bulk
// draining, built-in statistics tracking, and optional Prometheus metrics
// integration.
//
// # Overview
//
// The queue decouples many concurrent producers from a single consumer.
// Producers enqueue items one at a time with a bounded wait; the consumer
// removes the entire current contents in one atomic drain, amortizing its
// wake-ups across batches of producer activity. The consumer is woken when
// the live-item count reaches a configurable fill line, when the queue is
// poisoned, or when its own wait times out, whichever comes first.
//
// # Quick Start
//
// Create a queue with fill line 64 and capacity 256:
//
//	q, err := queue.New[Event](64, 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Producers:
//
//	inserted, err := q.Offer(ctx, event, 50*time.Millisecond)
//	if err != nil {
//		return err // invalid item, or ctx cancelled during the wait
//	}
//	if !inserted {
//		// backpressure: no space freed within the timeout
//	}
//
// The single consumer:
//
//	for {
//		var batch queue.SliceSink[Event]
//		n, err := q.DrainTo(ctx, &batch, time.Second)
//		if err != nil {
//			return err // ctx cancelled
//		}
//		if n > 0 {
//			process(batch)
//		}
//		if q.IsPoisoned() && n == 0 && q.Size() == 0 {
//			return nil // poisoned and empty: shut down
//		}
//	}
//
// # Fill Line
//
// The fill line meters consumer wake-ups: each insert that leaves the count
// at or above the fill line signals the fill-line condition. A consumer
// blocked in DrainTo therefore wakes as soon as a batch worth collecting
// exists, instead of once per item. In steady state batches are at least
// fill-line sized; near shutdown they may be smaller.
//
// # Shutdown
//
// Poison() is a one-way shutdown signal meaning "no more items will
// arrive". It never discards queued items. After poisoning, DrainTo skips
// its wait entirely and returns whatever is present, possibly nothing.
// IsPoisoned() is a lock-free poll, safe to call from liveness checks
// without contending with producers for the queue lock. The canonical
// consumer termination predicate is: poisoned, and a drain returned zero,
// and Size() is zero.
//
// # Waiting, Timeouts, and Cancellation
//
// Offer re-checks its space predicate in a loop around each wait, guarding
// against spurious wakeups and racing producers. DrainTo deliberately does
// not: it performs one bounded wait and then drains whatever is present.
// Both operations treat context cancellation as a first-class outcome: the
// cancelled waiter re-signals its condition before the error propagates, so
// cancellation never consumes a wakeup another waiter needed.
//
// # Fairness
//
// WithFairness(true) wakes blocked waiters in arrival order; the default
// leaves wake order unspecified. This governs condition wake order only;
// Go exposes no control over lock-acquisition order.
//
// # Observability
//
// Statistics are always on, collected with atomic counters and available
// via Stats(). Prometheus export is optional via WithMetrics(), following
// the dual-tracking pattern: in-process statistics work with zero
// configuration and no external dependencies, while metrics serve
// time-series monitoring when a registry is wired in.
//
// # Concurrency Contract
//
// Any number of goroutines may call Offer concurrently. Exactly one
// goroutine is expected to call DrainTo; concurrent drains are not
// defined-safe. Poison, IsPoisoned, Size, and Stats are safe from any
// goroutine.
package queue
