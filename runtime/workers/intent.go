package workers

import (
	"chat-sync/contract"
	"context"
	"log/slog"
)

// IntentWorker executes user intents one after the other.
// A failed intent is reported, which clears the busy flag.
type IntentWorker struct {
	log      *slog.Logger
	intents  <-chan contract.Intent
	reporter contract.IReporter
	busy     func(bool)
}

func NewIntentWorker(log *slog.Logger, intents <-chan contract.Intent, reporter contract.IReporter, busy func(bool)) *IntentWorker {
	return &IntentWorker{log: log, intents: intents, reporter: reporter, busy: busy}
}

func (w *IntentWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case intent := <-w.intents:
			w.execute(ctx, intent)
		}
	}
}

func (w *IntentWorker) execute(ctx context.Context, intent contract.Intent) {
	if intent.Busy {
		w.busy(true)
	}
	w.log.Debug("Executing intent", "name", intent.Name)
	if err := intent.Run(ctx); err != nil {
		w.log.Debug("Intent failed", "name", intent.Name, "error", err)
		w.reporter.Report(err)
		return
	}
	if intent.Busy {
		w.busy(false)
	}
}
