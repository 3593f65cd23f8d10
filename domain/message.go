// Package domain contains core concepts of the messaging client.
// This file defines Message events and related rules.
// Messages are immutable once created and owned by one Chat.
package domain

import (
	"sort"
	"time"
)

// Message represents an immutable chat event.
type Message struct {
	ID       string
	SenderID string `validate:"required"`
	Body     string
	SentAt   time.Time
}

// SortMessages orders messages by SentAt ascending, ID breaking ties.
func SortMessages(messages []Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].SentAt.Equal(messages[j].SentAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].SentAt.Before(messages[j].SentAt)
	})
}
