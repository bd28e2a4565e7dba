// Package meteredblockingqueue provides a bounded, thread-safe queue that
// meters consumer wake-ups: producers enqueue one item at a time, and a
// single consumer removes the entire contents in bulk once a configurable
// fill line is reached.
//
// # Architecture
//
// The module separates the synchronization core from its collaborators:
//
//	┌──────────────┐   Offer(ctx, item, timeout)   ┌──────────────┐
//	│  Producers   │──────────────────────────────→│    queue     │
//	│ (many)       │                               │  (circular   │
//	└──────────────┘                               │   store, two │
//	┌──────────────┐   DrainTo(ctx, sink, wait)    │   wait-lists,│
//	│  Consumer    │←──────────────────────────────│   poison)    │
//	│ (exactly one)│                               └──────────────┘
//	└──────────────┘
//
// The fill line is the metering mechanism: the consumer sleeps until at
// least fillLine items have accumulated (or its wait times out, or the
// queue is poisoned), then removes everything in one atomic drain. This
// amortizes consumer wake-ups over batches instead of paying one per item.
//
// Shutdown is a cooperative handshake: Poison marks the queue as closed to
// meaningful new work without discarding anything already queued; the
// consumer keeps draining until the queue is poisoned and empty.
//
// # Packages
//
// Core:
//   - queue: the generic bounded metered queue with statistics and
//     optional Prometheus metrics
//   - drain: single-goroutine consumer loop with handler dispatch,
//     retry of transient failures, and lifecycle management
//
// Infrastructure:
//   - errors: classified error handling (transient, invalid, cancelled,
//     fatal) with standard wrapping helpers
//   - metric: Prometheus metrics registry with duplicate detection and
//     an HTTP exposition handler
//   - pkg/retry: exponential backoff with jitter
//
// # Usage
//
// Producers and a consumer around one queue:
//
//	q, err := queue.New[Event](64, 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// producers, any number of goroutines
//	inserted, err := q.Offer(ctx, event, 50*time.Millisecond)
//
//	// consumer, exactly one goroutine
//	c, err := drain.New(q, func(ctx context.Context, batch []Event) error {
//		return store.WriteAll(ctx, batch)
//	})
//	c.Start(ctx)
//	defer c.Stop(shutdownCtx) // poisons q, drains the remainder
//
// # Design Principles
//
// Bounded everything:
//   - Fixed capacity, bounded waits, bounded shutdown
//   - Backpressure surfaces as a false return, not an error
//
// Explicit outcomes:
//   - Timeout, cancellation, and invalid input are distinct results
//   - Poisoning never loses items
//
// Observability without obligation:
//   - In-process statistics are always on
//   - Prometheus export is opt-in per component
package meteredblockingqueue
