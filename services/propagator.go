package services

import (
	"chat-sync/domain"
	"chat-sync/errors"
	"chat-sync/repositories"
	"context"
	"log/slog"
)

// Propagator rewrites the copies of a profile embedded in chat documents.
// It is best effort: a failed chat does not stop the others and nothing
// is retried.
type Propagator struct {
	log   *slog.Logger
	chats repositories.IChatRepository
}

func NewPropagator(log *slog.Logger, chats repositories.IChatRepository) *Propagator {
	return &Propagator{log: log, chats: chats}
}

// Propagate runs one query per participant slot and patches only the
// slot holding the principal, with only the changed fields.
func (p *Propagator) Propagate(ctx context.Context, change domain.ProfileChange) error {
	if change.Fields.IsEmpty() {
		return nil
	}
	var errs []error
	patched := 0
	for _, slot := range domain.Slots {
		chats, err := p.chats.FindByParticipant(ctx, slot, change.PrincipalID)
		if err != nil {
			p.log.Warn("Chats not listed for propagation", "principal", change.PrincipalID, "slot", slot, "error", err)
			errs = append(errs, err)
			continue
		}
		for _, chat := range chats {
			if err := p.chats.PatchParticipant(ctx, chat.ChatID, slot, change.Fields); err != nil {
				p.log.Warn("Chat not updated", "chat", chat.ChatID, "slot", slot, "error", err)
				errs = append(errs, err)
				continue
			}
			patched++
		}
	}
	p.log.Debug("Profile change propagated", "principal", change.PrincipalID, "chats", patched, "failures", len(errs))
	if len(errs) > 0 {
		return errors.Wrap(errors.ErrRemote, "Error updating chat documents", errors.Join(errs...))
	}
	return nil
}
