package services

import (
	"chat-sync/auth"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/repositories"
	"chat-sync/runtime"
	"context"
	"log/slog"
	"sync/atomic"
)

type IIdentityService interface {
	SignUp(ctx context.Context, req auth.SignUpRequest) error
	Login(ctx context.Context, req auth.LoginRequest) error
	Restore(ctx context.Context, token string) error
	Logout() error
	Token() string
	State() domain.SessionState
}

// IdentityService drives the SignedOut -> Authenticating -> SignedIn
// lifecycle. Every transition goes through a compare-and-swap so two
// concurrent sign-ins can not both succeed.
type IdentityService struct {
	log         *slog.Logger
	credentials repositories.ICredentialRepository
	profiles    repositories.IProfileRepository
	tokens      auth.TokenManager
	profile     IProfileService
	roster      IRosterService
	messages    IMessageService
	state       *runtime.State
	status      atomic.Int32
	token       atomic.Pointer[string]
}

func NewIdentityService(
	log *slog.Logger,
	credentials repositories.ICredentialRepository,
	profiles repositories.IProfileRepository,
	tokens auth.TokenManager,
	profile IProfileService,
	roster IRosterService,
	messages IMessageService,
	state *runtime.State,
) *IdentityService {
	return &IdentityService{
		log:         log,
		credentials: credentials,
		profiles:    profiles,
		tokens:      tokens,
		profile:     profile,
		roster:      roster,
		messages:    messages,
		state:       state,
	}
}

func (s *IdentityService) State() domain.SessionState {
	return domain.SessionState(s.status.Load())
}

func (s *IdentityService) Token() string {
	if t := s.token.Load(); t != nil {
		return *t
	}
	return ""
}

func (s *IdentityService) transition(from, to domain.SessionState) bool {
	if !domain.CanTransition(from, to) {
		return false
	}
	if !s.status.CompareAndSwap(int32(from), int32(to)) {
		return false
	}
	s.state.Session.Set(to)
	s.state.SignedIn.Set(to == domain.SignedIn)
	s.log.Debug("Session transition", "from", from, "to", to)
	return true
}

func (s *IdentityService) begin() error {
	if !s.transition(domain.SignedOut, domain.Authenticating) {
		return errors.New(errors.ErrInvalidTransition, "Already signed in")
	}
	return nil
}

func (s *IdentityService) fail(err error) error {
	s.transition(domain.Authenticating, domain.SignedOut)
	return err
}

func (s *IdentityService) signIn(principalID string) error {
	token, err := s.tokens.Generate(principalID)
	if err != nil {
		return errors.Wrap(errors.ErrAuth, "Log in failed", err)
	}
	s.token.Store(&token)
	s.state.Principal.Set(principalID)
	s.transition(domain.Authenticating, domain.SignedIn)
	return nil
}

// SignUp creates credentials, signs the principal in and writes the
// initial profile with name and phone number.
func (s *IdentityService) SignUp(ctx context.Context, req auth.SignUpRequest) error {
	if err := auth.ValidateSignUp(req); err != nil {
		return err
	}
	if err := s.begin(); err != nil {
		return err
	}

	existing, err := s.profiles.FindByNumber(ctx, req.Phone)
	if err != nil {
		return s.fail(err)
	}
	if len(existing) > 0 {
		return s.fail(errors.New(errors.ErrDuplicate, "Number Already exists"))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return s.fail(errors.Wrap(errors.ErrAuth, "Sign Up failed", err))
	}
	principalID, err := s.credentials.CreateCredential(req.Email, hash)
	if err != nil {
		return s.fail(errors.Wrap(errors.ErrAuth, "Sign Up failed", err))
	}
	if err := s.signIn(principalID); err != nil {
		return s.fail(err)
	}
	s.log.Info("Signed up", "principal", principalID)

	return s.profile.Save(ctx, domain.ProfileFields{DisplayName: &req.Name, PhoneNumber: &req.Phone})
}

func (s *IdentityService) Login(ctx context.Context, req auth.LoginRequest) error {
	if err := auth.ValidateLogin(req); err != nil {
		return err
	}
	if err := s.begin(); err != nil {
		return err
	}

	credential, err := s.credentials.GetCredential(req.Email)
	if errors.Is(err, errors.ErrNotFound) {
		return s.fail(errors.New(errors.ErrAuth, "Log in failed"))
	}
	if err != nil {
		return s.fail(err)
	}
	match, err := auth.ComparePassword(req.Password, credential.PasswordHash)
	if err != nil || !match {
		return s.fail(errors.New(errors.ErrAuth, "Log in failed"))
	}
	if err := s.signIn(credential.PrincipalID); err != nil {
		return s.fail(err)
	}
	s.log.Info("Logged in", "principal", credential.PrincipalID)

	return s.profile.Load(credential.PrincipalID)
}

// Restore resumes a session from a previously issued token.
func (s *IdentityService) Restore(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	principalID, err := s.tokens.Validate(token)
	if err != nil {
		return errors.Wrap(errors.ErrAuth, "Session expired", err)
	}
	if err := s.begin(); err != nil {
		return err
	}
	s.token.Store(&token)
	s.state.Principal.Set(principalID)
	s.transition(domain.Authenticating, domain.SignedIn)
	s.log.Info("Session restored", "principal", principalID)

	return s.profile.Load(principalID)
}

// Logout releases every subscription and clears the view state before
// announcing it on the event channel.
func (s *IdentityService) Logout() error {
	if !s.transition(domain.SignedIn, domain.SignedOut) {
		return errors.New(errors.ErrInvalidTransition, "Not logged in")
	}
	principalID := s.state.Principal.Get()
	s.messages.Close()
	// The profile handle goes first: its applier may still be starting the roster.
	s.profile.Clear()
	s.roster.Stop()
	s.state.Reset()
	s.token.Store(nil)
	s.log.Info("Logged out", "principal", principalID)
	s.state.LastEvent.Publish("Logged Out")
	return nil
}
