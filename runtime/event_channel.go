package runtime

import "chat-sync/domain"

// EventChannel carries user-facing one-shot messages.
// A new Publish overwrites an unconsumed message.
type EventChannel struct {
	cell *Cell[*domain.OneShotEvent[string]]
}

func NewEventChannel() *EventChannel {
	return &EventChannel{cell: NewCell[*domain.OneShotEvent[string]](nil)}
}

func (c *EventChannel) Publish(msg string) {
	c.cell.Set(domain.NewOneShotEvent(msg))
}

// Consume returns the pending message once, then ("", false).
func (c *EventChannel) Consume() (string, bool) {
	event := c.cell.Get()
	if event == nil {
		return "", false
	}
	return event.Consume()
}

func (c *EventChannel) Changed() <-chan struct{} {
	return c.cell.Changed()
}
