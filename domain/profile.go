// Package domain contains core concepts of the messaging client.
// This file defines the Profile entity, its denormalized snapshot and
// the partial field set used by profile edits.
// No runtime, storage, or UI logic should be added here.
package domain

// Profile is the authoritative copy of a user's public data.
// ID is immutable once set.
type Profile struct {
	ID          string `validate:"required"`
	DisplayName string
	PhoneNumber string
	AvatarRef   string
}

// ProfileSnapshot is a point-in-time copy of a Profile embedded in a Chat.
// It only changes when the propagator patches it explicitly.
type ProfileSnapshot struct {
	ID          string `validate:"required"`
	DisplayName string
	PhoneNumber string
	AvatarRef   string
}

func (p Profile) Snapshot() ProfileSnapshot {
	return ProfileSnapshot{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		PhoneNumber: p.PhoneNumber,
		AvatarRef:   p.AvatarRef,
	}
}

// ProfileFields is a partial profile edit. A nil field is left untouched.
type ProfileFields struct {
	DisplayName *string
	PhoneNumber *string
	AvatarRef   *string
}

func (f ProfileFields) IsEmpty() bool {
	return f.DisplayName == nil && f.PhoneNumber == nil && f.AvatarRef == nil
}

// ApplyTo returns p with every provided field overwritten.
func (f ProfileFields) ApplyTo(p Profile) Profile {
	if f.DisplayName != nil {
		p.DisplayName = *f.DisplayName
	}
	if f.PhoneNumber != nil {
		p.PhoneNumber = *f.PhoneNumber
	}
	if f.AvatarRef != nil {
		p.AvatarRef = *f.AvatarRef
	}
	return p
}

// ApplyToSnapshot is ApplyTo for an embedded copy.
func (f ProfileFields) ApplyToSnapshot(s ProfileSnapshot) ProfileSnapshot {
	if f.DisplayName != nil {
		s.DisplayName = *f.DisplayName
	}
	if f.PhoneNumber != nil {
		s.PhoneNumber = *f.PhoneNumber
	}
	if f.AvatarRef != nil {
		s.AvatarRef = *f.AvatarRef
	}
	return s
}

// ProfileChange is handed to the propagator once a patch is acknowledged.
type ProfileChange struct {
	PrincipalID string
	Fields      ProfileFields
}
