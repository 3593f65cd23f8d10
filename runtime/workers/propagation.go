package workers

import (
	"chat-sync/contract"
	"chat-sync/domain"
	"context"
	"log/slog"
)

// PropagationWorker rewrites embedded profile copies after a profile
// change. It runs apart from the roster so a slow fan-out never delays
// snapshot delivery.
type PropagationWorker struct {
	log        *slog.Logger
	changes    <-chan domain.ProfileChange
	propagator contract.IPropagator
	reporter   contract.IReporter
}

func NewPropagationWorker(log *slog.Logger, changes <-chan domain.ProfileChange, propagator contract.IPropagator, reporter contract.IReporter) *PropagationWorker {
	return &PropagationWorker{log: log, changes: changes, propagator: propagator, reporter: reporter}
}

func (w *PropagationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-w.changes:
			if err := w.propagator.Propagate(ctx, change); err != nil {
				w.reporter.Report(err)
			}
		}
	}
}
