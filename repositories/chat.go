//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"chat-sync/auth"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/infrastructure/docstore"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

type IChatRepository interface {
	NewChatID() string
	Create(ctx context.Context, chat domain.Chat) error
	FindByParticipant(ctx context.Context, slot domain.Slot, userID string) ([]domain.Chat, error)
	FindPair(ctx context.Context, userID, peerNumber string) ([]domain.Chat, error)
	PatchParticipant(ctx context.Context, chatID string, slot domain.Slot, fields domain.ProfileFields) error
	WatchForParticipant(ctx context.Context, userID string, onSnapshot func([]domain.Chat)) error
}

// ChatRepository maps the "chats" collection. Each chat embeds a copy of
// both participants under "user1" and "user2".
type ChatRepository struct {
	store docstore.IStore
	log   *slog.Logger
}

func NewChatRepository(store docstore.IStore, log *slog.Logger) *ChatRepository {
	return &ChatRepository{store: store, log: log}
}

func slotField(slot domain.Slot) string {
	if slot == domain.SlotA {
		return fieldUser1
	}
	return fieldUser2
}

func (r ChatRepository) NewChatID() string {
	return r.store.NewID()
}

func (r ChatRepository) Create(ctx context.Context, chat domain.Chat) error {
	if err := validID(chat.ChatID); err != nil {
		return err
	}
	err := r.store.Create(ctx, ChatsCollection, chat.ChatID, fromChat(chat))
	if errors.Is(err, docstore.ErrDocumentExists) {
		return errors.New(errors.ErrDuplicate, "Chat already exists")
	}
	if err != nil {
		return remote("Can not create chat", err)
	}
	return nil
}

func (r ChatRepository) FindByParticipant(ctx context.Context, slot domain.Slot, userID string) ([]domain.Chat, error) {
	docs, err := r.store.Find(ctx, docstore.Query{
		Collection: ChatsCollection,
		Filter:     docstore.Eq(slotField(slot)+"."+fieldUserID, userID),
	})
	if err != nil {
		return nil, remote("Can not search chats", err)
	}
	return r.decodeAll(docs), nil
}

// FindPair returns chats linking userID to the user owning peerNumber,
// whichever slot each of them holds.
func (r ChatRepository) FindPair(ctx context.Context, userID, peerNumber string) ([]domain.Chat, error) {
	docs, err := r.store.Find(ctx, docstore.Query{
		Collection: ChatsCollection,
		Filter: docstore.Or(
			docstore.And(
				docstore.Eq(fieldUser1+"."+fieldUserID, userID),
				docstore.Eq(fieldUser2+"."+fieldNumber, peerNumber),
			),
			docstore.And(
				docstore.Eq(fieldUser1+"."+fieldNumber, peerNumber),
				docstore.Eq(fieldUser2+"."+fieldUserID, userID),
			),
		),
	})
	if err != nil {
		return nil, remote("Can not search chats", err)
	}
	return r.decodeAll(docs), nil
}

// PatchParticipant rewrites the given fields of one embedded participant.
func (r ChatRepository) PatchParticipant(ctx context.Context, chatID string, slot domain.Slot, fields domain.ProfileFields) error {
	if err := validID(chatID); err != nil {
		return err
	}
	patch := profilePatch(slotField(slot), fields)
	if len(patch) == 0 {
		return nil
	}
	if err := r.store.Update(ctx, ChatsCollection, chatID, patch); err != nil {
		return remote(fmt.Sprintf("Can not update chat %s", chatID), err)
	}
	return nil
}

// WatchForParticipant streams every chat where userID sits in either slot.
func (r ChatRepository) WatchForParticipant(ctx context.Context, userID string, onSnapshot func([]domain.Chat)) error {
	err := r.store.Listen(ctx, docstore.Query{
		Collection: ChatsCollection,
		Filter: docstore.Or(
			docstore.Eq(fieldUser1+"."+fieldUserID, userID),
			docstore.Eq(fieldUser2+"."+fieldUserID, userID),
		),
	}, func(docs []docstore.Document) {
		onSnapshot(r.decodeAll(docs))
	})
	if err != nil {
		return remote("Can not retrieve chats", err)
	}
	return nil
}

func (r ChatRepository) decodeAll(docs []docstore.Document) []domain.Chat {
	return lo.FilterMap(docs, func(doc docstore.Document, _ int) (domain.Chat, bool) {
		chat, err := toChat(doc)
		if err != nil {
			r.log.Warn("Skipping chat record", "id", doc.ID, "error", err)
			return domain.Chat{}, false
		}
		return chat, true
	})
}

func toChat(doc docstore.Document) (domain.Chat, error) {
	fields := documentFields(doc)
	chatID, err := optionalString(fields, fieldChatID)
	if err != nil {
		return domain.Chat{}, err
	}
	if chatID == "" {
		chatID = doc.ID
	}
	chat := domain.Chat{ChatID: chatID}
	for _, slot := range domain.Slots {
		raw, ok := fields[slotField(slot)].(map[string]any)
		if !ok {
			return domain.Chat{}, fmt.Errorf("%w: missing %s", errors.ErrDecode, slotField(slot))
		}
		snapshot, err := toSnapshot(raw)
		if err != nil {
			return domain.Chat{}, err
		}
		if slot == domain.SlotA {
			chat.ParticipantA = snapshot
		} else {
			chat.ParticipantB = snapshot
		}
	}
	if err := auth.ValidateDecoded(chat); err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

func fromChat(chat domain.Chat) map[string]any {
	return map[string]any{
		fieldChatID: chat.ChatID,
		fieldUser1:  fromSnapshot(chat.ParticipantA),
		fieldUser2:  fromSnapshot(chat.ParticipantB),
	}
}
