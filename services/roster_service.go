//go:generate go run go.uber.org/mock/mockgen -source=roster_service.go -destination=../mocks/mock_roster_service.go -package=mocks
package services

import (
	"chat-sync/contract"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/repositories"
	"chat-sync/runtime"
	"context"
	"log/slog"
)

type IRosterService interface {
	Start(principalID string) error
	Stop()
}

// RosterService keeps the chat list of the principal live. Each snapshot
// replaces the list as a whole, in delivered order.
type RosterService struct {
	log      *slog.Logger
	repo     repositories.IChatRepository
	registry contract.ISubscriptionRegistry
	state    *runtime.State
}

func NewRosterService(log *slog.Logger, repo repositories.IChatRepository, registry contract.ISubscriptionRegistry, state *runtime.State) *RosterService {
	return &RosterService{log: log, repo: repo, registry: registry, state: state}
}

func (s *RosterService) Start(principalID string) error {
	if principalID == "" {
		return errors.ErrNotSignedIn
	}
	s.state.BusyChats.Set(true)
	s.registry.Replace(contract.KindRoster, principalID,
		func(ctx context.Context, emit func(any)) error {
			return s.repo.WatchForParticipant(ctx, principalID, func(chats []domain.Chat) {
				emit(chats)
			})
		},
		func(payload any) {
			s.state.ChatList.Set(payload.([]domain.Chat))
			s.state.BusyChats.Set(false)
		},
	)
	return nil
}

func (s *RosterService) Stop() {
	s.registry.Close(contract.KindRoster)
	s.state.ChatList.Set(nil)
	s.state.BusyChats.Set(false)
}
