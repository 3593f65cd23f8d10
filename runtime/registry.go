package runtime

import (
	"chat-sync/contract"
	"context"
	"log/slog"
	"sync"
)

// Registry keeps at most one live subscription per kind for the session.
// Producers run in their own goroutine and push snapshots to a shared
// delivery channel consumed by a single reconciler.
type Registry struct {
	mu         sync.Mutex
	ctx        context.Context
	log        *slog.Logger
	deliveries chan<- contract.Delivery
	reporter   contract.IReporter
	active     map[contract.SubscriptionKind]*Subscription
	wg         sync.WaitGroup
}

func NewRegistry(ctx context.Context, log *slog.Logger, deliveries chan<- contract.Delivery, reporter contract.IReporter) *Registry {
	return &Registry{
		ctx:        ctx,
		log:        log,
		deliveries: deliveries,
		reporter:   reporter,
		active:     make(map[contract.SubscriptionKind]*Subscription),
	}
}

// Replace closes the current handle of the same kind before starting
// the new producer, so two producers of a kind never run together.
// Handles are closed outside the registry lock: an applier may itself
// open a subscription of another kind.
func (r *Registry) Replace(kind contract.SubscriptionKind, target string, produce contract.Producer, apply contract.Applier) contract.ISubscription {
	ctx, cancel := context.WithCancel(r.ctx)
	sub := &Subscription{
		kind:   kind,
		target: target,
		apply:  apply,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	r.mu.Lock()
	previous, replaced := r.active[kind]
	r.active[kind] = sub
	r.wg.Add(1)
	r.mu.Unlock()

	if replaced {
		previous.Close()
		r.log.Debug("Subscription replaced", "kind", kind, "previous", previous.target, "target", target)
	}

	go func() {
		defer r.wg.Done()
		defer close(sub.done)
		defer cancel()

		err := produce(ctx, func(payload any) {
			select {
			case r.deliveries <- contract.Delivery{Subscription: sub, Payload: payload}:
			case <-ctx.Done():
			}
		})
		if err != nil && ctx.Err() == nil {
			r.log.Warn("Subscription failed", "kind", kind, "target", target, "error", err)
			r.reporter.Report(err)
		}
	}()

	r.log.Debug("Subscription opened", "kind", kind, "target", target)
	return sub
}

func (r *Registry) Close(kind contract.SubscriptionKind) {
	r.mu.Lock()
	sub, ok := r.active[kind]
	delete(r.active, kind)
	r.mu.Unlock()

	if ok {
		sub.Close()
		r.log.Debug("Subscription closed", "kind", kind, "target", sub.target)
	}
}

// Active returns the open handle of a kind, if any.
func (r *Registry) Active(kind contract.SubscriptionKind) (contract.ISubscription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.active[kind]
	if !ok || sub.Closed() {
		return nil, false
	}
	return sub, true
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	subs := make([]*Subscription, 0, len(r.active))
	for kind, sub := range r.active {
		subs = append(subs, sub)
		delete(r.active, kind)
	}
	r.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

// Wait blocks until every producer goroutine has returned.
func (r *Registry) Wait() {
	r.wg.Wait()
}
