//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-sync/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// It is used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type SubscriptionKind string

const (
	KindProfile  SubscriptionKind = "profile"
	KindRoster   SubscriptionKind = "roster"
	KindMessages SubscriptionKind = "messages"
)

// Producer runs a live query until ctx is canceled, calling emit for
// every snapshot.
type Producer func(ctx context.Context, emit func(payload any)) error

// Applier writes one snapshot into view state.
type Applier func(payload any)

// ISubscription is the handle of one live query.
type ISubscription interface {
	Kind() SubscriptionKind
	Target() string
	// Apply runs the applier unless the handle is closed.
	Apply(payload any) bool
	// Close is idempotent. Once it returns, Apply never runs again.
	Close()
	Closed() bool
}

// ISubscriptionRegistry keeps at most one live handle per kind.
type ISubscriptionRegistry interface {
	Replace(kind SubscriptionKind, target string, produce Producer, apply Applier) ISubscription
	Close(kind SubscriptionKind)
	Active(kind SubscriptionKind) (ISubscription, bool)
	CloseAll()
}

// Delivery is a snapshot on its way from a producer to the reconciler.
type Delivery struct {
	Subscription ISubscription
	Payload      any
}

// Intent is a user action executed off the caller's goroutine.
type Intent struct {
	Name string
	Busy bool
	Run  func(ctx context.Context) error
}

// IReporter turns a failure into a one-shot user event.
type IReporter interface {
	Report(err error)
}

type IPropagator interface {
	Propagate(ctx context.Context, change domain.ProfileChange) error
}
