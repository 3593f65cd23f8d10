package services

import (
	"chat-sync/contract"
	"chat-sync/domain"
	"chat-sync/infrastructure/docstore"
	"chat-sync/repositories"
	"chat-sync/runtime"
	"chat-sync/runtime/workers"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

const eventually = 2 * time.Second

// harness wires an in-memory store, a registry and a running reconciler,
// the same way a session does.
type harness struct {
	db       *badger.DB
	store    *docstore.Store
	state    *runtime.State
	registry *runtime.Registry
	profiles *repositories.ProfileRepository
	chats    *repositories.ChatRepository
	messages *repositories.MessageRepository
	changes  chan domain.ProfileChange
}

func newHarness(t *testing.T) *harness {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	log := slog.Default()
	store := docstore.NewStore(db, log)
	state := runtime.NewState()

	ctx, cancel := context.WithCancel(context.Background())
	deliveries := make(chan contract.Delivery)
	registry := runtime.NewRegistry(ctx, log, deliveries, runtime.NewReporter(log, state))
	go func() { _ = workers.NewReconciler(log, deliveries).Run(ctx) }()

	t.Cleanup(func() {
		registry.CloseAll()
		cancel()
		registry.Wait()
		_ = db.Close()
	})

	return &harness{
		db:       db,
		store:    store,
		state:    state,
		registry: registry,
		profiles: repositories.NewProfileRepository(store, log),
		chats:    repositories.NewChatRepository(store, log),
		messages: repositories.NewMessageRepository(store, log),
		changes:  make(chan domain.ProfileChange, 10),
	}
}

func (h *harness) signIn(principalID string) {
	h.state.Principal.Set(principalID)
	h.state.Session.Set(domain.SignedIn)
	h.state.SignedIn.Set(true)
}

func profileOf(id, name, number string) domain.Profile {
	return domain.Profile{ID: id, DisplayName: name, PhoneNumber: number}
}

func newHarnessState(principalID string) *runtime.State {
	state := runtime.NewState()
	state.Principal.Set(principalID)
	return state
}
