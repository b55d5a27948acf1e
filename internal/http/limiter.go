package http

import (
	"context"
	"sync"

	"github.com/alos-no/cloudflare-client/pkg/cloudflare"
)

// Limiter is the local admission mechanism bounding concurrent in-flight
// requests per client. Callers over the concurrency limit wait in a FIFO
// queue of bounded capacity; callers beyond the queue capacity fail
// immediately with cloudflare.ErrRateLimitQueueFull. The limiter is purely
// local state, shared by every call of one client and never coordinated
// across clients or processes.
type Limiter struct {
	mu       sync.Mutex
	inFlight int
	capacity int
	queue    []chan struct{}
	maxQueue int
	disabled bool
}

// NewLimiter creates a limiter admitting maxInFlight concurrent requests
// with a wait queue of queueSize.
func NewLimiter(maxInFlight, queueSize int) *Limiter {
	if maxInFlight < 1 {
		maxInFlight = 1
	}

	if queueSize < 0 {
		queueSize = 0
	}

	return &Limiter{
		capacity: maxInFlight,
		maxQueue: queueSize,
	}
}

// NewDisabledLimiter creates a limiter that admits every call
// unconditionally.
func NewDisabledLimiter() *Limiter {
	return &Limiter{disabled: true}
}

// Acquire blocks until a permit is available, the queue overflows, or ctx
// is cancelled. A caller whose context fires while waiting releases its
// queue slot immediately and never occupies a permit.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l.disabled {
		return nil
	}

	l.mu.Lock()

	if l.inFlight < l.capacity {
		l.inFlight++
		l.mu.Unlock()

		return nil
	}

	if len(l.queue) >= l.maxQueue {
		l.mu.Unlock()

		return cloudflare.ErrRateLimitQueueFull
	}

	slot := make(chan struct{})
	l.queue = append(l.queue, slot)
	l.mu.Unlock()

	select {
	case <-slot:
		return nil
	case <-ctx.Done():
		l.abandon(slot)

		return ctx.Err()
	}
}

// Release returns a permit. If a caller is waiting, the permit is handed
// directly to the eldest waiter so admission stays first-in-first-out.
func (l *Limiter) Release() {
	if l.disabled {
		return
	}

	l.mu.Lock()

	if len(l.queue) > 0 {
		slot := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()

		close(slot)

		return
	}

	if l.inFlight > 0 {
		l.inFlight--
	}

	l.mu.Unlock()
}

// abandon removes a cancelled waiter from the queue. If Release already
// granted the slot, the permit is passed on instead of leaking.
func (l *Limiter) abandon(slot chan struct{}) {
	l.mu.Lock()

	for i, queued := range l.queue {
		if queued == slot {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			l.mu.Unlock()

			return
		}
	}

	l.mu.Unlock()

	// Lost the race with Release: the slot was granted between the context
	// firing and the queue scan.
	l.Release()
}

// InFlight reports the number of currently held permits.
func (l *Limiter) InFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inFlight
}

// Waiting reports the number of queued callers.
func (l *Limiter) Waiting() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.queue)
}
