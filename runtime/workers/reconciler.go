package workers

import (
	"chat-sync/contract"
	"context"
	"log/slog"
)

// Reconciler applies subscription snapshots to view state.
// It is the only consumer of the delivery channel, so appliers never
// run concurrently with each other.
type Reconciler struct {
	log        *slog.Logger
	deliveries <-chan contract.Delivery
}

func NewReconciler(log *slog.Logger, deliveries <-chan contract.Delivery) *Reconciler {
	return &Reconciler{log: log, deliveries: deliveries}
}

func (w *Reconciler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery := <-w.deliveries:
			sub := delivery.Subscription
			if !sub.Apply(delivery.Payload) {
				w.log.Debug("Dropping snapshot of closed subscription", "kind", sub.Kind(), "target", sub.Target())
			}
		}
	}
}
