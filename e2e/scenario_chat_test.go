package e2e

import (
	"chat-sync/client"
	"chat-sync/domain"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type testChatSuite struct {
	BaseSessionSuite
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, &testChatSuite{})
}

type account struct {
	name, phone, email, password string
}

// newAccount never collides with a previous run sharing E2E_DATA_DIR
func newAccount(name string) account {
	return account{
		name:     name,
		phone:    fmt.Sprintf("6%09d", rand.IntN(1_000_000_000)),
		email:    uuid.NewString() + "@e2e.test",
		password: "secret123",
	}
}

func (s *testChatSuite) signUp(session *client.Session, a account) domain.Profile {
	session.SignUp(a.name, a.phone, a.email, a.password)
	s.WaitFor(func() bool {
		p := session.View().Profile.Get()
		return p != nil && p.PhoneNumber == a.phone
	}, a.name+" never got a profile")
	return *session.View().Profile.Get()
}

func chatWith(session *client.Session, peerID string) (domain.Chat, bool) {
	return lo.Find(session.View().ChatList.Get(), func(c domain.Chat) bool {
		return c.Pairs(session.View().Principal.Get(), peerID)
	})
}

func (s *testChatSuite) TestConversation_Survives_Restart() {
	alice, bob := newAccount("Alice"), newAccount("Bob")
	var chatID, bobID string

	s.Run("Step 1: Two devices sign up and link by phone number", func() {
		s.Step("Sign up")
		p1, p2 := s.StartSession(), s.StartSession()
		s.signUp(p1, alice)
		bobID = s.signUp(p2, bob).ID

		p1.AddContact(bob.phone)
		s.WaitFor(func() bool { _, ok := chatWith(p2, p1.View().Principal.Get()); return ok }, "chat never reached bob")
		chat, ok := chatWith(p1, bobID)
		s.Require().True(ok)
		chatID = chat.ChatID

		// Linking twice is refused
		p1.AddContact(bob.phone)
		s.Require().Equal("Chat already exists", s.NextEvent(p1))
	})

	s.Run("Step 2: Messages flow both ways in order", func() {
		s.Step("Conversation")
		p1, p2 := s.sessions[0], s.sessions[1]
		p1.OpenChat(chatID)
		p2.OpenChat(chatID)
		p1.SendMessage(chatID, "hello")
		s.WaitFor(func() bool { return len(p2.View().ActiveMessages.Get()) == 1 }, "bob never saw hello")
		p2.SendMessage(chatID, "hi alice")
		s.WaitFor(func() bool { return len(p1.View().ActiveMessages.Get()) == 2 }, "alice never saw the reply")

		bodies := lo.Map(p1.View().ActiveMessages.Get(), func(m domain.Message, _ int) string { return m.Body })
		s.Require().Equal([]string{"hello", "hi alice"}, bodies)

		p2.SaveProfile(domain.ProfileFields{DisplayName: lo.ToPtr("Bobby")})
		s.WaitFor(func() bool {
			chat, ok := chatWith(p1, bobID)
			return ok && chat.Participant(domain.SlotB).DisplayName == "Bobby"
		}, "rename never propagated")
	})

	s.Run("Step 3: Everything is still there after a restart", func() {
		s.Step("Restart")
		s.CloseBackend()
		s.OpenBackend()

		p1 := s.StartSession()
		p1.Login(alice.email, alice.password)
		s.WaitFor(func() bool { _, ok := chatWith(p1, bobID); return ok }, "chat lost after restart")
		chat, _ := chatWith(p1, bobID)
		s.Require().Equal("Bobby", chat.Participant(domain.SlotB).DisplayName)

		p1.OpenChat(chatID)
		s.WaitFor(func() bool { return len(p1.View().ActiveMessages.Get()) == 2 }, "messages lost after restart")
	})
}
