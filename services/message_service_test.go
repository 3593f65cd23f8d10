package services

import (
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/mocks"
	"context"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bodies(messages []domain.Message) []string {
	return lo.Map(messages, func(m domain.Message, _ int) string { return m.Body })
}

func TestMessageService_Send_And_Stream_In_Order(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	svc := NewMessageService(slog.Default(), h.messages, h.registry, h.state)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	req.NoError(svc.Open("c1"))
	req.Eventually(func() bool { return !h.state.BusyMessages.Get() }, eventually, 10*time.Millisecond)

	req.NoError(svc.Send(ctx, "c1", "alice", "hi"))
	req.NoError(svc.Send(ctx, "c1", "bob", "hello"))

	req.Eventually(func() bool {
		return slices.Equal(bodies(h.state.ActiveMessages.Get()), []string{"hi", "hello"})
	}, eventually, 10*time.Millisecond)
	messages := h.state.ActiveMessages.Get()
	req.Equal("alice", messages[0].SenderID)
	req.True(messages[1].SentAt.After(messages[0].SentAt))
	req.Equal("c1", h.state.ActiveChat.Get())
}

func TestMessageService_Switching_Chats_Never_Mixes_Messages(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	svc := NewMessageService(slog.Default(), h.messages, h.registry, h.state)
	ctx := context.Background()

	// Given chat A is open with a message
	req.NoError(svc.Send(ctx, "A", "alice", "in A"))
	req.NoError(svc.Open("A"))
	req.Eventually(func() bool { return len(h.state.ActiveMessages.Get()) == 1 }, eventually, 10*time.Millisecond)

	// When chat B is opened while A keeps receiving messages
	stop := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case <-stop:
				return
			default:
				_ = svc.Send(ctx, "A", "bob", "more A")
				time.Sleep(time.Millisecond)
			}
		}
	}()
	req.NoError(svc.Open("B"))

	// Then the buffer is emptied before any snapshot of B
	req.Empty(lo.Filter(h.state.ActiveMessages.Get(), func(m domain.Message, _ int) bool { return m.Body != "in B" }))
	req.NoError(svc.Send(ctx, "B", "alice", "in B"))
	req.Eventually(func() bool { return len(h.state.ActiveMessages.Get()) == 1 }, eventually, 10*time.Millisecond)

	// And no message of A shows up afterwards
	req.Never(func() bool {
		return lo.ContainsBy(h.state.ActiveMessages.Get(), func(m domain.Message) bool { return m.Body != "in B" })
	}, 200*time.Millisecond, 5*time.Millisecond)
	close(stop)
	<-writerDone
	req.Equal("B", h.state.ActiveChat.Get())
}

func TestMessageService_Close_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	svc := NewMessageService(slog.Default(), h.messages, h.registry, h.state)
	ctx := context.Background()

	req.NoError(svc.Send(ctx, "c1", "alice", "hi"))
	req.NoError(svc.Open("c1"))
	req.Eventually(func() bool { return len(h.state.ActiveMessages.Get()) == 1 }, eventually, 10*time.Millisecond)

	svc.Close()
	svc.Close()

	req.Empty(h.state.ActiveMessages.Get())
	req.Empty(h.state.ActiveChat.Get())
	req.NoError(svc.Send(ctx, "c1", "alice", "after close"))
	req.Never(func() bool { return len(h.state.ActiveMessages.Get()) > 0 }, 200*time.Millisecond, 10*time.Millisecond)
}

func TestMessageService_Send_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIMessageRepository(ctrl)
	svc := NewMessageService(slog.Default(), repo, mocks.NewMockISubscriptionRegistry(ctrl), newHarnessState("alice"))
	repo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	t.Run("should fail on an empty body", func(t *testing.T) {
		req := require.New(t)
		err := svc.Send(context.Background(), "c1", "alice", "   ")
		req.ErrorIs(err, errors.ErrValidation)
	})

	t.Run("should fail without a sender", func(t *testing.T) {
		req := require.New(t)
		err := svc.Send(context.Background(), "c1", "", "hi")
		req.ErrorIs(err, errors.ErrNotSignedIn)
	})

	t.Run("should fail to open an empty chat id", func(t *testing.T) {
		req := require.New(t)
		req.ErrorIs(svc.Open(""), errors.ErrValidation)
	})
}

func TestMessageService_Send_Remote_Failure_Is_Returned(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIMessageRepository(ctrl)
	svc := NewMessageService(slog.Default(), repo, mocks.NewMockISubscriptionRegistry(ctrl), newHarnessState("alice"))
	failure := errors.Wrap(errors.ErrRemote, "Can not send message", context.DeadlineExceeded)

	repo.EXPECT().NewMessageID().Return("m1")
	repo.EXPECT().Append(gomock.Any(), "c1", gomock.Any()).DoAndReturn(
		func(ctx context.Context, chatID string, message domain.Message) error {
			req.Equal("m1", message.ID)
			req.Equal("alice", message.SenderID)
			req.Equal(time.UTC, message.SentAt.Location())
			return failure
		})

	err := svc.Send(context.Background(), "c1", "alice", "hi")

	req.ErrorIs(err, errors.ErrRemote)
}
