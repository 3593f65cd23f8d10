package services

import (
	"chat-sync/auth"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/repositories"
	"chat-sync/runtime"
	"context"
	"log/slog"
)

// ContactService opens a chat with the owner of a phone number.
// Checking for an existing pair and creating the chat are two separate
// store calls, so two clients adding each other at once may both succeed.
type ContactService struct {
	log      *slog.Logger
	profiles repositories.IProfileRepository
	chats    repositories.IChatRepository
	state    *runtime.State
}

func NewContactService(log *slog.Logger, profiles repositories.IProfileRepository, chats repositories.IChatRepository, state *runtime.State) *ContactService {
	return &ContactService{log: log, profiles: profiles, chats: chats, state: state}
}

func (s *ContactService) AddContact(ctx context.Context, phone string) (domain.Chat, error) {
	if err := auth.ValidatePhone(phone); err != nil {
		return domain.Chat{}, err
	}
	self := s.state.Profile.Get()
	if self == nil {
		return domain.Chat{}, errors.ErrNotSignedIn
	}
	if phone == self.PhoneNumber {
		return domain.Chat{}, errors.New(errors.ErrValidation, "You can not add yourself")
	}

	existing, err := s.chats.FindPair(ctx, self.ID, phone)
	if err != nil {
		return domain.Chat{}, err
	}
	if len(existing) > 0 {
		return domain.Chat{}, errors.New(errors.ErrDuplicate, "Chat already exists")
	}

	peers, err := s.profiles.FindByNumber(ctx, phone)
	if err != nil {
		return domain.Chat{}, err
	}
	if len(peers) == 0 {
		return domain.Chat{}, errors.New(errors.ErrNotFound, "number not found")
	}
	peer := peers[0]
	if len(peers) > 1 {
		s.log.Warn("Phone number shared by several profiles", "number", phone, "count", len(peers))
	}
	if peer.ID == self.ID {
		return domain.Chat{}, errors.New(errors.ErrValidation, "You can not add yourself")
	}

	chat := domain.Chat{
		ChatID:       s.chats.NewChatID(),
		ParticipantA: self.Snapshot(),
		ParticipantB: peer.Snapshot(),
	}
	if err := s.chats.Create(ctx, chat); err != nil {
		return domain.Chat{}, err
	}
	s.log.Info("Chat created", "chat", chat.ChatID, "user1", self.ID, "user2", peer.ID)
	return chat, nil
}
