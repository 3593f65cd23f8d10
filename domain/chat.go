// Package domain contains core concepts of the messaging client.
// This file defines the Chat record and its two participant slots.
package domain

// Slot designates one of the two participant positions of a Chat.
type Slot int

const (
	SlotA Slot = iota
	SlotB
)

var Slots = []Slot{SlotA, SlotB}

func (s Slot) String() string {
	if s == SlotA {
		return "A"
	}
	return "B"
}

// Chat is a conversation between exactly two participants.
// The unordered pair of participant ids identifies it.
type Chat struct {
	ChatID       string          `validate:"required"`
	ParticipantA ProfileSnapshot
	ParticipantB ProfileSnapshot
}

func (c Chat) Participant(slot Slot) ProfileSnapshot {
	if slot == SlotA {
		return c.ParticipantA
	}
	return c.ParticipantB
}

// SlotsOf lists every slot holding userID.
func (c Chat) SlotsOf(userID string) []Slot {
	var slots []Slot
	for _, slot := range Slots {
		if c.Participant(slot).ID == userID {
			slots = append(slots, slot)
		}
	}
	return slots
}

// Peer returns the participant facing userID.
func (c Chat) Peer(userID string) (ProfileSnapshot, bool) {
	switch userID {
	case c.ParticipantA.ID:
		return c.ParticipantB, true
	case c.ParticipantB.ID:
		return c.ParticipantA, true
	}
	return ProfileSnapshot{}, false
}

// Pairs reports whether the chat links a and b, in either order.
func (c Chat) Pairs(a, b string) bool {
	return (c.ParticipantA.ID == a && c.ParticipantB.ID == b) ||
		(c.ParticipantA.ID == b && c.ParticipantB.ID == a)
}
