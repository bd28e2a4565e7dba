package queue

// waiter receives at most one wakeup. The channel is buffered so a signaler
// holding the queue lock never blocks on delivery.
type waiter chan struct{}

// waitList is an explicitly ordered condition queue. Go's sync.Cond cannot
// wait with a timeout or react to context cancellation, so each condition
// is kept as a list of waiter channels instead: callers park on their own
// channel and select against timers and contexts.
//
// Signaling with no waiters is a no-op; signals do not accumulate, which
// preserves condition-variable semantics (as opposed to semaphore permits).
//
// All methods must be called with the owning queue's lock held.
type waitList struct {
	fair    bool
	waiters []waiter
}

// add parks a new waiter at the end of the list and returns its channel.
func (wl *waitList) add() waiter {
	w := make(waiter, 1)
	wl.waiters = append(wl.waiters, w)
	return w
}

// signal wakes exactly one waiter, if any. Fair lists wake the oldest
// waiter first; unfair lists wake the newest, leaving the order among
// remaining waiters unspecified.
func (wl *waitList) signal() {
	if len(wl.waiters) == 0 {
		return
	}
	var w waiter
	if wl.fair {
		w = wl.waiters[0]
		wl.waiters = wl.waiters[1:]
	} else {
		n := len(wl.waiters) - 1
		w = wl.waiters[n]
		wl.waiters = wl.waiters[:n]
	}
	w <- struct{}{}
}

// broadcast wakes every waiter and empties the list.
func (wl *waitList) broadcast() {
	for _, w := range wl.waiters {
		w <- struct{}{}
	}
	wl.waiters = nil
}

// remove unparks a waiter that gave up (timeout or cancellation) without
// being signaled. No-op if a racing signal already removed it.
func (wl *waitList) remove(target waiter) {
	for i, w := range wl.waiters {
		if w == target {
			wl.waiters = append(wl.waiters[:i], wl.waiters[i+1:]...)
			return
		}
	}
}

// len reports the number of parked waiters.
func (wl *waitList) len() int {
	return len(wl.waiters)
}
