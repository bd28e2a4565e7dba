// Package drain provides the consumer side of a metered queue: a single
// goroutine that drains batches in a loop and dispatches them to a handler.
//
// The consumer owns the queue's drain end. Each work cycle performs one
// bounded DrainTo, hands any collected items to the handler, and checks the
// shutdown predicate: once the queue is poisoned and a drain comes back
// empty with nothing left in the store, the loop exits. Poisoning never
// discards items, so everything offered before shutdown still reaches the
// handler.
//
// Transient handler errors are retried with exponential backoff. Errors
// classified as invalid, fatal, or cancelled drop the batch immediately so
// a bad batch cannot wedge the loop.
//
//	q, _ := queue.New[Event](64, 256)
//	c, err := drain.New(q, func(ctx context.Context, batch []Event) error {
//		return store.WriteAll(ctx, batch)
//	}, drain.WithDrainWait[Event](time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := c.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer c.Stop(shutdownCtx)
//
// Stop poisons the queue and waits for the final drains to complete,
// bounded by its context.
package drain
