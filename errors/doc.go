// Package errors provides standardized error handling patterns for the
// metered queue module.
//
// # Overview
//
// The errors package implements a four-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable),
// Cancelled (a blocking call interrupted by its context, terminal for that
// call), and Fatal (unrecoverable, stop processing).
//
// Cancelled is its own class rather than a flavor of Transient because the
// queue's contract makes cancellation a first-class outcome of every
// blocking wait: the interrupted caller re-signals its condition before the
// error propagates, and the caller must not treat the outcome as a timeout
// or silently retry it.
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if capacity <= 0 {
//	    return errors.ErrInvalidCapacity
//	}
//
// Wrap errors with component context:
//
//	if err := handler(ctx, batch); err != nil {
//	    return errors.Wrap(err, "Consumer", "dispatch", "batch handling")
//	}
//
// Check classification to decide handling:
//
//	if errors.IsCancelled(err) {
//	    return err // terminal for this call
//	}
//	if errors.IsTransient(err) {
//	    // safe to retry with backoff
//	}
//
// # Classification Rules
//
// Classification is determined by, in order: an explicit *ClassifiedError
// in the chain, context.Canceled / context.DeadlineExceeded (Cancelled),
// the package's sentinel variables (Invalid), and finally a Transient
// default so unknown errors remain retryable.
package errors
