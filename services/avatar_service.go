package services

import (
	"bytes"
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/infrastructure/blob"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const imagesPrefix = "images/"

// AvatarService uploads a profile picture and stores its reference in
// the profile, which propagates it to every chat.
type AvatarService struct {
	log     *slog.Logger
	blobs   blob.IStore
	profile IProfileService
	maxSize int64
}

func NewAvatarService(log *slog.Logger, blobs blob.IStore, profile IProfileService, maxSize int64) *AvatarService {
	return &AvatarService{log: log, blobs: blobs, profile: profile, maxSize: maxSize}
}

func (s *AvatarService) UploadAvatar(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", errors.Wrap(errors.ErrValidation, "Can not read image", err)
	}
	if len(data) == 0 {
		return "", errors.New(errors.ErrValidation, "Please select an image")
	}
	if int64(len(data)) > s.maxSize {
		return "", errors.New(errors.ErrValidation, "Image is too large")
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", errors.New(errors.ErrValidation, "Only images can be uploaded")
	}

	key := imagesPrefix + uuid.NewString() + mtype.Extension()
	if err := s.blobs.Write(ctx, key, bytes.NewReader(data)); err != nil {
		return "", errors.Wrap(errors.ErrRemote, "Can not upload image", err)
	}
	ref, err := s.blobs.URL(ctx, key)
	if err != nil {
		s.discard(key)
		return "", errors.Wrap(errors.ErrRemote, "Can not upload image", err)
	}
	s.log.Debug("Avatar uploaded", "key", key, "mime", mtype.String(), "size", len(data))

	if err := s.profile.Save(ctx, domain.ProfileFields{AvatarRef: &ref}); err != nil {
		s.discard(key)
		return "", err
	}
	return ref, nil
}

// discard removes a blob no profile will ever reference.
func (s *AvatarService) discard(key string) {
	// The upload context may be the reason of the failure.
	if err := s.blobs.Delete(context.Background(), key); err != nil {
		s.log.Warn("Orphan avatar not removed", "key", key, "error", err)
	}
}
