package repositories

import (
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/infrastructure/docstore"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*badger.DB, *docstore.Store) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, docstore.NewStore(db, slog.Default())
}

// firstSnapshot returns the current messages of a chat as a listener sees them.
func firstSnapshot(t *testing.T, repo *MessageRepository, chatID string) []domain.Message {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	snapshots := make(chan []domain.Message, 1)
	go func() {
		_ = repo.Watch(ctx, chatID, func(messages []domain.Message) {
			select {
			case snapshots <- messages:
			default:
			}
		})
	}()
	select {
	case messages := <-snapshots:
		return messages
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no message snapshot delivered")
		return nil
	}
}

func alice() domain.Profile {
	return domain.Profile{ID: "alice", DisplayName: "Alice", PhoneNumber: "111", AvatarRef: "a.png"}
}

func bob() domain.Profile {
	return domain.Profile{ID: "bob", DisplayName: "Bob", PhoneNumber: "222"}
}

func TestProfileRepository_Create_Patch_Find(t *testing.T) {
	req := require.New(t)
	_, store := newTestDB(t)
	repo := NewProfileRepository(store, slog.Default())
	ctx := context.Background()

	// Given a stored profile
	req.NoError(repo.Create(ctx, alice()))

	// When only the display name is patched
	req.NoError(repo.Patch(ctx, "alice", domain.ProfileFields{DisplayName: lo.ToPtr("Alicia")}))

	// Then the other fields are preserved
	profile, err := repo.Get(ctx, "alice")
	req.NoError(err)
	req.Equal(domain.Profile{ID: "alice", DisplayName: "Alicia", PhoneNumber: "111", AvatarRef: "a.png"}, profile)

	found, err := repo.FindByNumber(ctx, "111")
	req.NoError(err)
	req.Len(found, 1)
	req.Equal("alice", found[0].ID)

	none, err := repo.FindByNumber(ctx, "999")
	req.NoError(err)
	req.Empty(none)
}

func TestProfileRepository_Missing_Profile(t *testing.T) {
	req := require.New(t)
	_, store := newTestDB(t)
	repo := NewProfileRepository(store, slog.Default())
	ctx := context.Background()

	_, err := repo.Get(ctx, "ghost")
	req.ErrorIs(err, errors.ErrNotFound)

	err = repo.Patch(ctx, "ghost", domain.ProfileFields{DisplayName: lo.ToPtr("x")})
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = repo.Get(ctx, "bad:id")
	req.ErrorIs(err, errors.ErrValidation)
}

func TestProfileRepository_Watch(t *testing.T) {
	req := require.New(t)
	_, store := newTestDB(t)
	repo := NewProfileRepository(store, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type snapshot struct {
		profile domain.Profile
		exists  bool
	}
	snapshots := make(chan snapshot, 100)
	go func() {
		_ = repo.Watch(ctx, "alice", func(p domain.Profile, exists bool) {
			snapshots <- snapshot{p, exists}
		})
	}()

	// Given the profile does not exist yet
	first := <-snapshots
	req.False(first.exists)

	// When it is created
	req.NoError(repo.Create(context.Background(), alice()))

	// Then the listener sees it
	req.Eventually(func() bool {
		select {
		case s := <-snapshots:
			return s.exists && s.profile.DisplayName == "Alice"
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestChatRepository_Create_Find_Patch(t *testing.T) {
	req := require.New(t)
	_, store := newTestDB(t)
	repo := NewChatRepository(store, slog.Default())
	ctx := context.Background()

	chat := domain.Chat{ChatID: repo.NewChatID(), ParticipantA: alice().Snapshot(), ParticipantB: bob().Snapshot()}
	req.NoError(repo.Create(ctx, chat))

	// Creating the same id twice is refused
	req.ErrorIs(repo.Create(ctx, chat), errors.ErrDuplicate)

	asA, err := repo.FindByParticipant(ctx, domain.SlotA, "alice")
	req.NoError(err)
	req.Equal([]domain.Chat{chat}, asA)

	asB, err := repo.FindByParticipant(ctx, domain.SlotB, "alice")
	req.NoError(err)
	req.Empty(asB)

	// The pair is found from both sides
	pair, err := repo.FindPair(ctx, "alice", "222")
	req.NoError(err)
	req.Len(pair, 1)
	pair, err = repo.FindPair(ctx, "bob", "111")
	req.NoError(err)
	req.Len(pair, 1)
	pair, err = repo.FindPair(ctx, "alice", "333")
	req.NoError(err)
	req.Empty(pair)

	// When bob's embedded copy is patched
	req.NoError(repo.PatchParticipant(ctx, chat.ChatID, domain.SlotB, domain.ProfileFields{DisplayName: lo.ToPtr("Bobby")}))

	// Then only that side changes
	updated, err := repo.FindByParticipant(ctx, domain.SlotB, "bob")
	req.NoError(err)
	req.Len(updated, 1)
	req.Equal("Bobby", updated[0].ParticipantB.DisplayName)
	req.Equal("222", updated[0].ParticipantB.PhoneNumber)
	req.Equal(alice().Snapshot(), updated[0].ParticipantA)
}

func TestChatRepository_Skips_Malformed_Chats(t *testing.T) {
	req := require.New(t)
	_, store := newTestDB(t)
	repo := NewChatRepository(store, slog.Default())
	ctx := context.Background()

	// Given a valid chat and two malformed ones
	good := domain.Chat{ChatID: "good", ParticipantA: alice().Snapshot(), ParticipantB: bob().Snapshot()}
	req.NoError(repo.Create(ctx, good))
	req.NoError(store.Set(ctx, ChatsCollection, "no-user2", map[string]any{
		"chatId": "no-user2",
		"user1":  map[string]any{"userId": "alice"},
	}))
	req.NoError(store.Set(ctx, ChatsCollection, "bad-type", map[string]any{
		"chatId": "bad-type",
		"user1":  map[string]any{"userId": "alice"},
		"user2":  map[string]any{"userId": 42.0},
	}))

	chats, err := repo.FindByParticipant(ctx, domain.SlotA, "alice")

	// Then the batch survives with only the valid record
	req.NoError(err)
	req.Equal([]domain.Chat{good}, chats)
}

func TestMessageRepository_Append_Watch_Sorted(t *testing.T) {
	req := require.New(t)
	_, store := newTestDB(t)
	repo := NewMessageRepository(store, slog.Default())
	ctx := context.Background()
	now := time.Now().UTC()

	// Given messages appended out of order
	req.NoError(repo.Append(ctx, "c1", domain.Message{SenderID: "bob", Body: "second", SentAt: now.Add(time.Second)}))
	req.NoError(repo.Append(ctx, "c1", domain.Message{SenderID: "alice", Body: "first", SentAt: now}))
	req.NoError(repo.Append(ctx, "c2", domain.Message{SenderID: "alice", Body: "elsewhere", SentAt: now}))

	messages := firstSnapshot(t, repo, "c1")

	// Then they come back in chronological order, scoped to their chat
	req.Equal([]string{"first", "second"}, lo.Map(messages, func(m domain.Message, _ int) string { return m.Body }))
	req.Equal("alice", messages[0].SenderID)
	req.True(messages[0].SentAt.Equal(now))
}

func TestMessageRepository_Skips_Undecodable_Message(t *testing.T) {
	req := require.New(t)
	_, store := newTestDB(t)
	repo := NewMessageRepository(store, slog.Default())
	ctx := context.Background()

	req.NoError(repo.Append(ctx, "c1", domain.Message{SenderID: "alice", Body: "ok", SentAt: time.Now()}))
	req.NoError(store.Set(ctx, MessagesCollection("c1"), "broken", map[string]any{
		"sendBy": "alice", "message": "?", "timeStamp": "yesterday",
	}))

	messages := firstSnapshot(t, repo, "c1")

	req.Len(messages, 1)
	req.Equal("ok", messages[0].Body)
}

func TestTimestamp_Lexicographic_Order_Is_Chronological(t *testing.T) {
	req := require.New(t)
	base := time.Date(2024, 1, 9, 23, 59, 59, 5, time.FixedZone("X", 3600))

	earlier := FormatTimestamp(base)
	later := FormatTimestamp(base.Add(time.Nanosecond * 999))
	muchLater := FormatTimestamp(base.Add(24 * time.Hour))

	req.Len(earlier, len(later))
	req.Less(earlier, later)
	req.Less(later, muchLater)

	parsed, err := ParseTimestamp(earlier)
	req.NoError(err)
	req.True(parsed.Equal(base))

	legacy, err := ParseTimestamp("Tue Jan 09 23:59:59 UTC 2024")
	req.NoError(err)
	req.Equal(2024, legacy.Year())
}

func TestCredentialRepository(t *testing.T) {
	req := require.New(t)
	db, _ := newTestDB(t)
	repo := NewCredentialRepository(db)

	id, err := repo.CreateCredential("Alice@Example.com", "hash")
	req.NoError(err)
	req.NotEmpty(id)

	// The same email can not register twice
	_, err = repo.CreateCredential("alice@example.com", "other")
	req.ErrorIs(err, errors.ErrDuplicate)

	credential, err := repo.GetCredential("alice@example.com")
	req.NoError(err)
	req.Equal(id, credential.PrincipalID)
	req.Equal("hash", credential.PasswordHash)

	_, err = repo.GetCredential("nobody@example.com")
	req.ErrorIs(err, errors.ErrNotFound)
}
