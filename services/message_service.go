//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"chat-sync/contract"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/repositories"
	"chat-sync/runtime"
	"context"
	"log/slog"
	"strings"
	"time"
)

type IMessageService interface {
	Open(chatID string) error
	Close()
	Send(ctx context.Context, chatID, senderID, body string) error
}

// MessageService streams the messages of at most one chat at a time.
type MessageService struct {
	log      *slog.Logger
	repo     repositories.IMessageRepository
	registry contract.ISubscriptionRegistry
	state    *runtime.State
	now      func() time.Time
}

func NewMessageService(log *slog.Logger, repo repositories.IMessageRepository, registry contract.ISubscriptionRegistry, state *runtime.State) *MessageService {
	return &MessageService{log: log, repo: repo, registry: registry, state: state, now: time.Now}
}

// Open releases the current stream before anything else, so a late
// snapshot of the previous chat can never land in the new buffer.
func (s *MessageService) Open(chatID string) error {
	if strings.TrimSpace(chatID) == "" {
		return errors.New(errors.ErrValidation, "No chat selected")
	}
	s.registry.Close(contract.KindMessages)
	s.state.ActiveMessages.Set(nil)
	s.state.ActiveChat.Set(chatID)
	s.state.BusyMessages.Set(true)

	s.registry.Replace(contract.KindMessages, chatID,
		func(ctx context.Context, emit func(any)) error {
			return s.repo.Watch(ctx, chatID, func(messages []domain.Message) {
				emit(messages)
			})
		},
		func(payload any) {
			s.state.ActiveMessages.Set(payload.([]domain.Message))
			s.state.BusyMessages.Set(false)
		},
	)
	return nil
}

// Close is idempotent.
func (s *MessageService) Close() {
	s.registry.Close(contract.KindMessages)
	s.state.ActiveMessages.Set(nil)
	s.state.ActiveChat.Set("")
	s.state.BusyMessages.Set(false)
}

func (s *MessageService) Send(ctx context.Context, chatID, senderID, body string) error {
	if senderID == "" {
		return errors.ErrNotSignedIn
	}
	if strings.TrimSpace(chatID) == "" {
		return errors.New(errors.ErrValidation, "No chat selected")
	}
	if strings.TrimSpace(body) == "" {
		return errors.New(errors.ErrValidation, "Message can not be empty")
	}
	message := domain.Message{
		ID:       s.repo.NewMessageID(),
		SenderID: senderID,
		Body:     body,
		SentAt:   s.now().UTC(),
	}
	return s.repo.Append(ctx, chatID, message)
}
