package runtime

import (
	"chat-sync/contract"
	"context"
	"sync"
)

// Subscription is the handle of one live query.
// Apply and Close share a mutex: once Close returns no snapshot of this
// handle is applied anymore, even one already queued for delivery.
type Subscription struct {
	kind   contract.SubscriptionKind
	target string
	apply  contract.Applier
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

func (s *Subscription) Kind() contract.SubscriptionKind { return s.kind }

func (s *Subscription) Target() string { return s.target }

func (s *Subscription) Apply(payload any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.apply(payload)
	return true
}

func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

func (s *Subscription) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Done is closed when the producer goroutine has returned.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
