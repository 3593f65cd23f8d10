package runtime

import (
	"chat-sync/errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCell_Set_Notifies_Watchers(t *testing.T) {
	req := require.New(t)
	cell := NewCell(1)
	changed := cell.Changed()

	cell.Set(2)

	select {
	case <-changed:
	default:
		req.Fail("watcher not notified")
	}
	req.Equal(2, cell.Get())

	// The next Changed channel is a fresh one
	select {
	case <-cell.Changed():
		req.Fail("unexpected notification")
	default:
	}
}

func TestEventChannel_Consumed_Once_Latest_Wins(t *testing.T) {
	req := require.New(t)
	events := NewEventChannel()

	_, ok := events.Consume()
	req.False(ok)

	// Given two messages published before anyone reads
	events.Publish("first")
	events.Publish("Logged Out")

	// Then only the latest is delivered, exactly once
	msg, ok := events.Consume()
	req.True(ok)
	req.Equal("Logged Out", msg)
	_, ok = events.Consume()
	req.False(ok)
}

func TestState_Reset_Keeps_Session_And_Events(t *testing.T) {
	req := require.New(t)
	state := NewState()
	state.Principal.Set("alice")
	state.SignedIn.Set(true)
	state.ActiveChat.Set("c1")
	state.Busy.Set(true)
	state.LastEvent.Publish("hello")

	state.Reset()

	req.Empty(state.Principal.Get())
	req.Empty(state.ActiveChat.Get())
	req.False(state.Busy.Get())
	req.True(state.SignedIn.Get())
	msg, ok := state.LastEvent.Consume()
	req.True(ok)
	req.Equal("hello", msg)
}

func TestReporter_Publishes_Message_And_Clears_Busy(t *testing.T) {
	req := require.New(t)
	state := NewState()
	state.Busy.Set(true)
	reporter := NewReporter(slog.Default(), state)

	reporter.Report(errors.New(errors.ErrNotFound, "number not found"))

	req.False(state.Busy.Get())
	msg, ok := state.LastEvent.Consume()
	req.True(ok)
	req.Equal("number not found", msg)
}
