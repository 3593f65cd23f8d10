package repositories

import (
	"chat-sync/errors"
	"chat-sync/infrastructure/docstore"
	"fmt"
	"strings"
	"time"
)

// Persisted layout of the existing store, kept field for field.
const (
	UsersCollection = "users"
	ChatsCollection = "chats"

	fieldUserID   = "userId"
	fieldName     = "name"
	fieldNumber   = "number"
	fieldImageURL = "imageUrl"

	fieldChatID = "chatId"
	fieldUser1  = "user1"
	fieldUser2  = "user2"

	fieldSendBy    = "sendBy"
	fieldMessage   = "message"
	fieldTimeStamp = "timeStamp"
)

// TimestampLayout is fixed width and always UTC, so string order is
// chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// legacyTimestampLayout matches timestamps written by older clients.
const legacyTimestampLayout = "Mon Jan 02 15:04:05 MST 2006"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(legacyTimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", errors.ErrDecode, s)
	}
	return t.UTC(), nil
}

func MessagesCollection(chatID string) string {
	return ChatsCollection + "/" + chatID + "/messages"
}

func validID(id string) error {
	if id == "" || strings.ContainsAny(id, ":/") {
		return fmt.Errorf("%w: invalid id %q", errors.ErrValidation, id)
	}
	return nil
}

// remote classifies a store failure.
func remote(detail string, err error) error {
	return errors.Wrap(errors.ErrRemote, detail, err)
}

// optionalString reads a string field, absent or null meaning "".
func optionalString(fields map[string]any, name string) (string, error) {
	v, ok := fields[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is %T", errors.ErrDecode, name, v)
	}
	return s, nil
}

func documentFields(doc docstore.Document) map[string]any {
	if doc.Fields == nil {
		return map[string]any{}
	}
	return doc.Fields
}
