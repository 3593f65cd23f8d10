//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-sync/auth"
	"chat-sync/domain"
	"chat-sync/infrastructure/docstore"
	"context"
	"log/slog"

	"github.com/samber/lo"
)

type IMessageRepository interface {
	NewMessageID() string
	Append(ctx context.Context, chatID string, message domain.Message) error
	Watch(ctx context.Context, chatID string, onSnapshot func([]domain.Message)) error
}

// MessageRepository maps the "chats/{chatId}/messages" sub collections.
type MessageRepository struct {
	store docstore.IStore
	log   *slog.Logger
}

func NewMessageRepository(store docstore.IStore, log *slog.Logger) *MessageRepository {
	return &MessageRepository{store: store, log: log}
}

func (r MessageRepository) NewMessageID() string {
	return r.store.NewID()
}

// Append stores a message. The timestamp is written in TimestampLayout.
func (r MessageRepository) Append(ctx context.Context, chatID string, message domain.Message) error {
	if err := validID(chatID); err != nil {
		return err
	}
	if message.ID == "" {
		message.ID = r.NewMessageID()
	}
	err := r.store.Set(ctx, MessagesCollection(chatID), message.ID, map[string]any{
		fieldSendBy:    message.SenderID,
		fieldMessage:   message.Body,
		fieldTimeStamp: FormatTimestamp(message.SentAt),
	})
	if err != nil {
		return remote("Can not send message", err)
	}
	return nil
}

// Watch streams the full sorted message list of a chat on every change.
func (r MessageRepository) Watch(ctx context.Context, chatID string, onSnapshot func([]domain.Message)) error {
	if err := validID(chatID); err != nil {
		return err
	}
	err := r.store.Listen(ctx, docstore.Query{Collection: MessagesCollection(chatID)},
		func(docs []docstore.Document) {
			onSnapshot(r.decodeAll(docs))
		})
	if err != nil {
		return remote("Can not retrieve messages", err)
	}
	return nil
}

func (r MessageRepository) decodeAll(docs []docstore.Document) []domain.Message {
	messages := lo.FilterMap(docs, func(doc docstore.Document, _ int) (domain.Message, bool) {
		message, err := toMessage(doc)
		if err != nil {
			r.log.Warn("Skipping message record", "id", doc.ID, "error", err)
			return domain.Message{}, false
		}
		return message, true
	})
	domain.SortMessages(messages)
	return messages
}

func toMessage(doc docstore.Document) (domain.Message, error) {
	fields := documentFields(doc)
	sender, err := optionalString(fields, fieldSendBy)
	if err != nil {
		return domain.Message{}, err
	}
	body, err := optionalString(fields, fieldMessage)
	if err != nil {
		return domain.Message{}, err
	}
	rawTime, err := optionalString(fields, fieldTimeStamp)
	if err != nil {
		return domain.Message{}, err
	}
	sentAt, err := ParseTimestamp(rawTime)
	if err != nil {
		return domain.Message{}, err
	}
	message := domain.Message{ID: doc.ID, SenderID: sender, Body: body, SentAt: sentAt}
	if err := auth.ValidateDecoded(message); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}
