// Package retry provides simple exponential backoff retry logic for transient failures.
//
// # Overview
//
// This package offers a minimal retry mechanism with exponential backoff.
// Within this module it serves two callers: the drain consumer retries
// transient batch-handler failures, and producers under sustained
// backpressure may wrap their Offer loops with it.
//
// # Core Functions
//
//   - Do: Execute function with retry and exponential backoff
//   - DoWithResult: Execute function with retry, returns both result and error
//
// # Configuration Presets
//
//   - DefaultConfig(): 3 attempts, 100ms-5s delay (normal operations)
//   - Quick(): 10 attempts, 50ms-1s delay (tight consumer loops)
//
// # Usage
//
// Retry a flaky batch handler:
//
//	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
//	    return handler(ctx, batch)
//	})
//
// Mark an error as terminal so the loop stops immediately:
//
//	return retry.NonRetryable(err)
//
// # Design Philosophy
//
// This package is intentionally minimal: no circuit breakers, no metrics
// collection, no error classification of its own (callers decide what to
// retry, typically via the module's errors package). Just exponential
// backoff with jitter.
//
// # Context Cancellation
//
// All retry operations respect context cancellation and stop immediately
// when the context is cancelled, whether during an attempt or during a
// backoff delay.
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package retry
