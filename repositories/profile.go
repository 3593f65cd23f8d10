//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=../mocks/mock_profile_repository.go -package=mocks
package repositories

import (
	"chat-sync/auth"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/infrastructure/docstore"
	"context"
	"log/slog"

	"github.com/samber/lo"
)

type IProfileRepository interface {
	Get(ctx context.Context, id string) (domain.Profile, error)
	Create(ctx context.Context, profile domain.Profile) error
	Patch(ctx context.Context, id string, fields domain.ProfileFields) error
	FindByNumber(ctx context.Context, number string) ([]domain.Profile, error)
	Watch(ctx context.Context, id string, onSnapshot func(profile domain.Profile, exists bool)) error
}

// ProfileRepository maps the "users" collection.
type ProfileRepository struct {
	store docstore.IStore
	log   *slog.Logger
}

func NewProfileRepository(store docstore.IStore, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{store: store, log: log}
}

func (r ProfileRepository) Get(ctx context.Context, id string) (domain.Profile, error) {
	if err := validID(id); err != nil {
		return domain.Profile{}, err
	}
	doc, err := r.store.Get(ctx, UsersCollection, id)
	if errors.Is(err, docstore.ErrDocumentNotFound) {
		return domain.Profile{}, errors.New(errors.ErrNotFound, "User not found")
	}
	if err != nil {
		return domain.Profile{}, remote("Can not retrieve user", err)
	}
	return toProfile(doc)
}

// Create writes the whole profile document.
func (r ProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	if err := validID(profile.ID); err != nil {
		return err
	}
	if err := r.store.Set(ctx, UsersCollection, profile.ID, fromProfile(profile)); err != nil {
		return remote("Can not create user", err)
	}
	return nil
}

// Patch writes only the provided fields.
func (r ProfileRepository) Patch(ctx context.Context, id string, fields domain.ProfileFields) error {
	if err := validID(id); err != nil {
		return err
	}
	patch := profilePatch("", fields)
	if len(patch) == 0 {
		return nil
	}
	err := r.store.Update(ctx, UsersCollection, id, patch)
	if errors.Is(err, docstore.ErrDocumentNotFound) {
		return errors.New(errors.ErrNotFound, "User not found")
	}
	if err != nil {
		return remote("Can not update user data", err)
	}
	return nil
}

func (r ProfileRepository) FindByNumber(ctx context.Context, number string) ([]domain.Profile, error) {
	docs, err := r.store.Find(ctx, docstore.Query{
		Collection: UsersCollection,
		Filter:     docstore.Eq(fieldNumber, number),
	})
	if err != nil {
		return nil, remote("Can not search users", err)
	}
	return r.decodeAll(docs), nil
}

// Watch streams the profile document. exists is false while the document
// is absent.
func (r ProfileRepository) Watch(ctx context.Context, id string, onSnapshot func(domain.Profile, bool)) error {
	if err := validID(id); err != nil {
		return err
	}
	err := r.store.Listen(ctx, docstore.Query{Collection: UsersCollection, Filter: docstore.IDEq(id)},
		func(docs []docstore.Document) {
			profiles := r.decodeAll(docs)
			if len(profiles) == 0 {
				onSnapshot(domain.Profile{}, false)
				return
			}
			onSnapshot(profiles[0], true)
		})
	if err != nil {
		return remote("Can not retrieve user", err)
	}
	return nil
}

func (r ProfileRepository) decodeAll(docs []docstore.Document) []domain.Profile {
	return lo.FilterMap(docs, func(doc docstore.Document, _ int) (domain.Profile, bool) {
		profile, err := toProfile(doc)
		if err != nil {
			r.log.Warn("Skipping user record", "id", doc.ID, "error", err)
			return domain.Profile{}, false
		}
		return profile, true
	})
}

func toProfile(doc docstore.Document) (domain.Profile, error) {
	snapshot, err := toSnapshot(documentFields(doc))
	if err != nil {
		return domain.Profile{}, err
	}
	if snapshot.ID == "" {
		snapshot.ID = doc.ID
	}
	profile := domain.Profile(snapshot)
	if err := auth.ValidateDecoded(profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func fromProfile(p domain.Profile) map[string]any {
	return fromSnapshot(p.Snapshot())
}

// toSnapshot reads the user layout shared by user documents and the
// participants embedded in chats.
func toSnapshot(fields map[string]any) (domain.ProfileSnapshot, error) {
	var snapshot domain.ProfileSnapshot
	var err error
	if snapshot.ID, err = optionalString(fields, fieldUserID); err != nil {
		return snapshot, err
	}
	if snapshot.DisplayName, err = optionalString(fields, fieldName); err != nil {
		return snapshot, err
	}
	if snapshot.PhoneNumber, err = optionalString(fields, fieldNumber); err != nil {
		return snapshot, err
	}
	if snapshot.AvatarRef, err = optionalString(fields, fieldImageURL); err != nil {
		return snapshot, err
	}
	return snapshot, nil
}

func fromSnapshot(s domain.ProfileSnapshot) map[string]any {
	return map[string]any{
		fieldUserID:   s.ID,
		fieldName:     s.DisplayName,
		fieldNumber:   s.PhoneNumber,
		fieldImageURL: s.AvatarRef,
	}
}

// profilePatch builds the dotted-path patch of an edit, optionally under
// an embedded participant prefix such as "user1".
func profilePatch(prefix string, fields domain.ProfileFields) map[string]any {
	path := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}
	patch := make(map[string]any)
	if fields.DisplayName != nil {
		patch[path(fieldName)] = *fields.DisplayName
	}
	if fields.PhoneNumber != nil {
		patch[path(fieldNumber)] = *fields.PhoneNumber
	}
	if fields.AvatarRef != nil {
		patch[path(fieldImageURL)] = *fields.AvatarRef
	}
	return patch
}
