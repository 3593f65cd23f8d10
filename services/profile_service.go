//go:generate go run go.uber.org/mock/mockgen -source=profile_service.go -destination=../mocks/mock_profile_service.go -package=mocks
package services

import (
	"chat-sync/auth"
	"chat-sync/contract"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/repositories"
	"chat-sync/runtime"
	"context"
	"log/slog"
	"sync/atomic"
)

type IProfileService interface {
	Load(principalID string) error
	Save(ctx context.Context, fields domain.ProfileFields) error
	Clear()
}

type profileSnapshot struct {
	profile domain.Profile
	exists  bool
}

// ProfileService mirrors the remote profile of the signed in principal
// and writes partial updates back.
type ProfileService struct {
	log           *slog.Logger
	repo          repositories.IProfileRepository
	registry      contract.ISubscriptionRegistry
	roster        IRosterService
	state         *runtime.State
	changes       chan<- domain.ProfileChange
	rosterStarted atomic.Bool
	// generation is bumped by Clear. A snapshot of an older generation
	// never starts the roster.
	generation atomic.Uint64
}

func NewProfileService(
	log *slog.Logger,
	repo repositories.IProfileRepository,
	registry contract.ISubscriptionRegistry,
	roster IRosterService,
	state *runtime.State,
	changes chan<- domain.ProfileChange,
) *ProfileService {
	return &ProfileService{
		log:      log,
		repo:     repo,
		registry: registry,
		roster:   roster,
		state:    state,
		changes:  changes,
	}
}

// Load subscribes to the profile document. Every snapshot replaces the
// local profile and the first existing one starts the roster.
func (s *ProfileService) Load(principalID string) error {
	if principalID == "" {
		return errors.ErrNotSignedIn
	}
	s.state.Busy.Set(true)
	generation := s.generation.Load()
	s.registry.Replace(contract.KindProfile, principalID,
		func(ctx context.Context, emit func(any)) error {
			return s.repo.Watch(ctx, principalID, func(profile domain.Profile, exists bool) {
				emit(profileSnapshot{profile: profile, exists: exists})
			})
		},
		func(payload any) {
			s.apply(principalID, generation, payload.(profileSnapshot))
		},
	)
	return nil
}

func (s *ProfileService) apply(principalID string, generation uint64, snapshot profileSnapshot) {
	if !snapshot.exists {
		s.state.Profile.Set(nil)
		return
	}
	profile := snapshot.profile
	s.state.Profile.Set(&profile)
	s.state.Busy.Set(false)

	if s.generation.Load() != generation {
		return
	}
	if s.rosterStarted.CompareAndSwap(false, true) {
		if err := s.roster.Start(principalID); err != nil {
			s.rosterStarted.Store(false)
			s.log.Warn("Roster not started", "principal", principalID, "error", err)
		}
	}
}

// Save creates the profile when it does not exist yet, otherwise writes
// only the provided fields and queues them for propagation into chats.
// The local profile only changes through the subscription.
func (s *ProfileService) Save(ctx context.Context, fields domain.ProfileFields) error {
	principalID := s.state.Principal.Get()
	if principalID == "" {
		return errors.ErrNotSignedIn
	}
	if err := auth.ValidateProfileFields(fields); err != nil {
		return err
	}

	_, err := s.repo.Get(ctx, principalID)
	if errors.Is(err, errors.ErrNotFound) {
		return s.create(ctx, principalID, fields)
	}
	if err != nil {
		return err
	}

	if fields.IsEmpty() {
		return nil
	}
	if err := s.repo.Patch(ctx, principalID, fields); err != nil {
		return err
	}
	s.log.Debug("Profile patched", "principal", principalID)
	s.enqueue(ctx, domain.ProfileChange{PrincipalID: principalID, Fields: fields})
	return nil
}

func (s *ProfileService) create(ctx context.Context, principalID string, fields domain.ProfileFields) error {
	base := domain.Profile{ID: principalID}
	if current := s.state.Profile.Get(); current != nil {
		base = *current
		base.ID = principalID
	}
	if err := s.repo.Create(ctx, fields.ApplyTo(base)); err != nil {
		return err
	}
	s.log.Debug("Profile created", "principal", principalID)
	if sub, ok := s.registry.Active(contract.KindProfile); ok && sub.Target() == principalID {
		return nil
	}
	return s.Load(principalID)
}

// enqueue hands the change to the propagation worker without waiting
// for it to run.
func (s *ProfileService) enqueue(ctx context.Context, change domain.ProfileChange) {
	select {
	case s.changes <- change:
	case <-ctx.Done():
		s.log.Warn("Profile change not propagated", "principal", change.PrincipalID, "error", ctx.Err())
	}
}

func (s *ProfileService) Clear() {
	s.generation.Add(1)
	s.registry.Close(contract.KindProfile)
	s.rosterStarted.Store(false)
	s.state.Profile.Set(nil)
}
