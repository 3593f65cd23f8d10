package services

import (
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/mocks"
	"context"
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPropagator_Patches_Only_The_Principal_Side(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	ctx := context.Background()
	alice := domain.Profile{ID: "alice", DisplayName: "Alice", PhoneNumber: "111", AvatarRef: "a.png"}
	bob := profileOf("bob", "Bob", "222")
	clara := profileOf("clara", "Clara", "333")

	// Given alice in slot A of one chat and slot B of another
	req.NoError(h.chats.Create(ctx, domain.Chat{ChatID: "c1", ParticipantA: alice.Snapshot(), ParticipantB: bob.Snapshot()}))
	req.NoError(h.chats.Create(ctx, domain.Chat{ChatID: "c2", ParticipantA: clara.Snapshot(), ParticipantB: alice.Snapshot()}))
	req.NoError(h.chats.Create(ctx, domain.Chat{ChatID: "c3", ParticipantA: bob.Snapshot(), ParticipantB: clara.Snapshot()}))
	propagator := NewPropagator(slog.Default(), h.chats)

	// When her display name change is propagated
	err := propagator.Propagate(ctx, domain.ProfileChange{
		PrincipalID: "alice",
		Fields:      domain.ProfileFields{DisplayName: lo.ToPtr("X")},
	})

	// Then her copy changes everywhere and nothing else does
	req.NoError(err)
	asA, err := h.chats.FindByParticipant(ctx, domain.SlotA, "alice")
	req.NoError(err)
	req.Len(asA, 1)
	req.Equal(domain.ProfileSnapshot{ID: "alice", DisplayName: "X", PhoneNumber: "111", AvatarRef: "a.png"}, asA[0].ParticipantA)
	req.Equal(bob.Snapshot(), asA[0].ParticipantB)

	asB, err := h.chats.FindByParticipant(ctx, domain.SlotB, "alice")
	req.NoError(err)
	req.Len(asB, 1)
	req.Equal("X", asB[0].ParticipantB.DisplayName)
	req.Equal("a.png", asB[0].ParticipantB.AvatarRef)
	req.Equal(clara.Snapshot(), asB[0].ParticipantA)

	untouched, err := h.chats.FindByParticipant(ctx, domain.SlotA, "bob")
	req.NoError(err)
	req.Equal(bob.Snapshot(), untouched[0].ParticipantA)
}

func TestPropagator_Continues_Past_Failures(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chats := mocks.NewMockIChatRepository(ctrl)
	fields := domain.ProfileFields{AvatarRef: lo.ToPtr("new.png")}
	boom := errors.Wrap(errors.ErrRemote, "Can not update chat", context.DeadlineExceeded)

	chats.EXPECT().FindByParticipant(gomock.Any(), domain.SlotA, "alice").
		Return([]domain.Chat{{ChatID: "c1"}, {ChatID: "c2"}}, nil)
	chats.EXPECT().FindByParticipant(gomock.Any(), domain.SlotB, "alice").
		Return([]domain.Chat{{ChatID: "c3"}}, nil)
	chats.EXPECT().PatchParticipant(gomock.Any(), "c1", domain.SlotA, fields).Return(boom)
	chats.EXPECT().PatchParticipant(gomock.Any(), "c2", domain.SlotA, fields).Return(nil)
	chats.EXPECT().PatchParticipant(gomock.Any(), "c3", domain.SlotB, fields).Return(nil)

	err := NewPropagator(slog.Default(), chats).Propagate(context.Background(), domain.ProfileChange{PrincipalID: "alice", Fields: fields})

	req.ErrorIs(err, errors.ErrRemote)
	req.Equal("Error updating chat documents", errors.Message(err))
}

func TestPropagator_Empty_Change_Does_Nothing(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	chats := mocks.NewMockIChatRepository(ctrl)

	err := NewPropagator(slog.Default(), chats).Propagate(context.Background(), domain.ProfileChange{PrincipalID: "alice"})

	req.NoError(err)
}
