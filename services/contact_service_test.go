package services

import (
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/mocks"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContactService_AddContact(t *testing.T) {
	alice := profileOf("alice", "Alice", "111")
	bob := profileOf("bob", "Bob", "5551234")

	newService := func(t *testing.T) (*ContactService, *mocks.MockIProfileRepository, *mocks.MockIChatRepository) {
		ctrl := gomock.NewController(t)
		profiles := mocks.NewMockIProfileRepository(ctrl)
		chats := mocks.NewMockIChatRepository(ctrl)
		state := newHarnessState(alice.ID)
		state.Profile.Set(&alice)
		return NewContactService(slog.Default(), profiles, chats, state), profiles, chats
	}

	t.Run("should create a chat with both snapshots", func(t *testing.T) {
		req := require.New(t)
		svc, profiles, chats := newService(t)

		chats.EXPECT().FindPair(gomock.Any(), "alice", "5551234").Return(nil, nil)
		profiles.EXPECT().FindByNumber(gomock.Any(), "5551234").Return([]domain.Profile{bob}, nil)
		chats.EXPECT().NewChatID().Return("c1")
		expected := domain.Chat{ChatID: "c1", ParticipantA: alice.Snapshot(), ParticipantB: bob.Snapshot()}
		chats.EXPECT().Create(gomock.Any(), expected).Return(nil)

		chat, err := svc.AddContact(context.Background(), "5551234")

		req.NoError(err)
		req.Equal(expected, chat)
	})

	t.Run("should report a duplicate and write nothing", func(t *testing.T) {
		req := require.New(t)
		svc, profiles, chats := newService(t)

		chats.EXPECT().FindPair(gomock.Any(), "alice", "5551234").
			Return([]domain.Chat{{ChatID: "c0", ParticipantA: bob.Snapshot(), ParticipantB: alice.Snapshot()}}, nil)
		profiles.EXPECT().FindByNumber(gomock.Any(), gomock.Any()).Times(0)
		chats.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.AddContact(context.Background(), "5551234")

		req.ErrorIs(err, errors.ErrDuplicate)
		req.Equal("Chat already exists", errors.Message(err))
	})

	t.Run("should report an unknown number", func(t *testing.T) {
		req := require.New(t)
		svc, profiles, chats := newService(t)

		chats.EXPECT().FindPair(gomock.Any(), "alice", "999").Return(nil, nil)
		profiles.EXPECT().FindByNumber(gomock.Any(), "999").Return(nil, nil)
		chats.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.AddContact(context.Background(), "999")

		req.ErrorIs(err, errors.ErrNotFound)
		req.Equal("number not found", errors.Message(err))
	})

	t.Run("should reject a non numeric number without remote call", func(t *testing.T) {
		req := require.New(t)
		svc, _, _ := newService(t)

		_, err := svc.AddContact(context.Background(), "abc")

		req.ErrorIs(err, errors.ErrValidation)
		req.Equal("Field can have digits only", errors.Message(err))
	})

	t.Run("should reject an empty number without remote call", func(t *testing.T) {
		req := require.New(t)
		svc, _, _ := newService(t)

		_, err := svc.AddContact(context.Background(), "")

		req.ErrorIs(err, errors.ErrValidation)
	})

	t.Run("should reject the own number", func(t *testing.T) {
		req := require.New(t)
		svc, _, _ := newService(t)

		_, err := svc.AddContact(context.Background(), "111")

		req.ErrorIs(err, errors.ErrValidation)
	})

	t.Run("should surface remote failures", func(t *testing.T) {
		req := require.New(t)
		svc, _, chats := newService(t)
		chats.EXPECT().FindPair(gomock.Any(), "alice", "222").
			Return(nil, errors.Wrap(errors.ErrRemote, "Can not list chats", context.DeadlineExceeded))

		_, err := svc.AddContact(context.Background(), "222")

		req.ErrorIs(err, errors.ErrRemote)
	})
}

func TestContactService_Duplicate_Detected_From_Either_Slot(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	ctx := context.Background()
	alice := profileOf("alice", "Alice", "111")
	bob := profileOf("bob", "Bob", "222")
	req.NoError(h.profiles.Create(ctx, alice))
	req.NoError(h.profiles.Create(ctx, bob))

	// Given bob already added alice
	req.NoError(h.chats.Create(ctx, domain.Chat{ChatID: "c1", ParticipantA: bob.Snapshot(), ParticipantB: alice.Snapshot()}))
	h.state.Profile.Set(&alice)
	svc := NewContactService(slog.Default(), h.profiles, h.chats, h.state)

	// When alice adds bob back
	_, err := svc.AddContact(ctx, "222")

	// Then no second chat is created
	req.ErrorIs(err, errors.ErrDuplicate)
	all, err := h.chats.FindByParticipant(ctx, domain.SlotB, "alice")
	req.NoError(err)
	req.Len(all, 1)
	mine, err := h.chats.FindByParticipant(ctx, domain.SlotA, "alice")
	req.NoError(err)
	req.Empty(mine)
}
