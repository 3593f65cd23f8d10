// Package client is the composition root of a messaging session.
// It owns the view state, the live subscriptions and the workers, and
// turns user intents into asynchronous commands.
package client

import (
	"bytes"
	"chat-sync/auth"
	"chat-sync/contract"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/infrastructure/blob"
	"chat-sync/infrastructure/docstore"
	"chat-sync/repositories"
	"chat-sync/runtime"
	"chat-sync/runtime/workers"
	"chat-sync/services"
	"context"
	"io"
	"log/slog"
	"time"
)

const (
	defaultMaxAvatarSize = 5 << 20
	// An unbuffered intent queue would refuse every intent issued while
	// the previous one runs.
	defaultBufferSize = 16
)

type Dependencies struct {
	Log             *slog.Logger
	Store           docstore.IStore
	Credentials     repositories.ICredentialRepository
	Blobs           blob.IStore
	Tokens          auth.TokenManager
	BufferSize      int
	RestartInterval time.Duration
	MaxAvatarSize   int64
}

// Session holds one signed in principal at a time. Intents never block
// the caller: they are queued and executed by the intent worker, and
// their outcome is observed through the view state.
type Session struct {
	log        *slog.Logger
	state      *runtime.State
	reporter   *runtime.Reporter
	registry   *runtime.Registry
	supervisor *workers.Supervisor
	intents    chan contract.Intent
	identity   *services.IdentityService
	profile    *services.ProfileService
	messages   *services.MessageService
	contacts   *services.ContactService
	avatars    *services.AvatarService
	cancel     context.CancelFunc
	done       chan struct{}
}

// Start wires every component and launches the workers under supervision.
// The session lives until ctx is canceled or Shutdown is called.
func Start(ctx context.Context, deps Dependencies) *Session {
	log := deps.Log
	ctx, cancel := context.WithCancel(ctx)
	maxAvatarSize := deps.MaxAvatarSize
	if maxAvatarSize <= 0 {
		maxAvatarSize = defaultMaxAvatarSize
	}
	bufferSize := deps.BufferSize
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	state := runtime.NewState()
	reporter := runtime.NewReporter(log, state)
	deliveries := make(chan contract.Delivery, bufferSize)
	intents := make(chan contract.Intent, bufferSize)
	changes := make(chan domain.ProfileChange, bufferSize)
	registry := runtime.NewRegistry(ctx, log, deliveries, reporter)

	profileRepository := repositories.NewProfileRepository(deps.Store, log)
	chatRepository := repositories.NewChatRepository(deps.Store, log)
	messageRepository := repositories.NewMessageRepository(deps.Store, log)

	roster := services.NewRosterService(log, chatRepository, registry, state)
	profile := services.NewProfileService(log, profileRepository, registry, roster, state, changes)
	messages := services.NewMessageService(log, messageRepository, registry, state)
	identity := services.NewIdentityService(log, deps.Credentials, profileRepository, deps.Tokens, profile, roster, messages, state)
	propagator := services.NewPropagator(log, chatRepository)

	s := &Session{
		log:        log,
		state:      state,
		reporter:   reporter,
		registry:   registry,
		supervisor: workers.NewSupervisor(log, deps.RestartInterval).OnRestart(func(worker string, attempt int, err error) {
			// A crashed worker may have left Busy set or dropped a snapshot.
			reporter.Report(errors.Wrap(errors.ErrRemote, "Something went wrong, retrying", err))
		}),
		intents:    intents,
		identity:   identity,
		profile:    profile,
		messages:   messages,
		contacts:   services.NewContactService(log, profileRepository, chatRepository, state),
		avatars:    services.NewAvatarService(log, deps.Blobs, profile, maxAvatarSize),
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	s.supervisor.Add(
		workers.NewReconciler(log, deliveries),
		workers.NewIntentWorker(log, intents, reporter, state.Busy.Set),
		workers.NewPropagationWorker(log, changes, propagator, reporter),
	)
	go func() {
		defer close(s.done)
		s.supervisor.Run(ctx)
	}()
	log.Info("Session started")
	return s
}

// View exposes the observable state. It must be treated as read only.
func (s *Session) View() *runtime.State {
	return s.state
}

func (s *Session) Token() string {
	return s.identity.Token()
}

// Shutdown releases every subscription and waits for the workers.
func (s *Session) Shutdown() {
	s.registry.CloseAll()
	s.cancel()
	<-s.done
	s.registry.Wait()
	s.log.Info("Session stopped")
}

// dispatch queues an intent. A full queue is reported to the user
// instead of blocking the caller.
func (s *Session) dispatch(name string, busy bool, run func(ctx context.Context) error) {
	select {
	case s.intents <- contract.Intent{Name: name, Busy: busy, Run: run}:
	default:
		s.log.Warn("Intent queue full, dropping intent", "name", name)
		s.reporter.Report(errors.New(errors.ErrValidation, "Too many pending actions, please retry"))
	}
}

func (s *Session) SignUp(name, phone, email, password string) {
	s.dispatch("sign_up", true, func(ctx context.Context) error {
		return s.identity.SignUp(ctx, auth.SignUpRequest{Name: name, Phone: phone, Email: email, Password: password})
	})
}

func (s *Session) Login(email, password string) {
	s.dispatch("login", true, func(ctx context.Context) error {
		return s.identity.Login(ctx, auth.LoginRequest{Email: email, Password: password})
	})
}

func (s *Session) Restore(token string) {
	s.dispatch("restore", true, func(ctx context.Context) error {
		return s.identity.Restore(ctx, token)
	})
}

func (s *Session) Logout() {
	s.dispatch("logout", false, func(ctx context.Context) error {
		return s.identity.Logout()
	})
}

func (s *Session) SaveProfile(fields domain.ProfileFields) {
	s.dispatch("save_profile", true, func(ctx context.Context) error {
		return s.profile.Save(ctx, fields)
	})
}

// UploadAvatar reads the image before returning so the caller may close r.
func (s *Session) UploadAvatar(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		s.reporter.Report(errors.Wrap(errors.ErrValidation, "Can not read image", err))
		return
	}
	s.dispatch("upload_avatar", true, func(ctx context.Context) error {
		_, err := s.avatars.UploadAvatar(ctx, bytes.NewReader(data))
		return err
	})
}

func (s *Session) OpenChat(chatID string) {
	s.dispatch("open_chat", false, func(ctx context.Context) error {
		return s.messages.Open(chatID)
	})
}

func (s *Session) CloseChat() {
	s.dispatch("close_chat", false, func(ctx context.Context) error {
		s.messages.Close()
		return nil
	})
}

func (s *Session) SendMessage(chatID, body string) {
	s.dispatch("send_message", false, func(ctx context.Context) error {
		return s.messages.Send(ctx, chatID, s.state.Principal.Get(), body)
	})
}

func (s *Session) AddContact(phone string) {
	s.dispatch("add_contact", true, func(ctx context.Context) error {
		_, err := s.contacts.AddContact(ctx, phone)
		return err
	})
}
