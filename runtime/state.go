package runtime

import (
	"chat-sync/domain"
	"chat-sync/errors"
	"log/slog"
)

// State is the view state observed by the presentation layer.
// Every field is written by the session runtime only.
type State struct {
	Principal      *Cell[string]
	Session        *Cell[domain.SessionState]
	SignedIn       *Cell[bool]
	Profile        *Cell[*domain.Profile]
	ChatList       *Cell[[]domain.Chat]
	ActiveChat     *Cell[string]
	ActiveMessages *Cell[[]domain.Message]
	Busy           *Cell[bool]
	BusyChats      *Cell[bool]
	BusyMessages   *Cell[bool]
	LastEvent      *EventChannel
}

func NewState() *State {
	return &State{
		Principal:      NewCell(""),
		Session:        NewCell(domain.SignedOut),
		SignedIn:       NewCell(false),
		Profile:        NewCell[*domain.Profile](nil),
		ChatList:       NewCell[[]domain.Chat](nil),
		ActiveChat:     NewCell(""),
		ActiveMessages: NewCell[[]domain.Message](nil),
		Busy:           NewCell(false),
		BusyChats:      NewCell(false),
		BusyMessages:   NewCell(false),
		LastEvent:      NewEventChannel(),
	}
}

// Reset clears everything bound to the signed in principal.
// Session lifecycle cells and the event channel are left alone.
func (s *State) Reset() {
	s.Principal.Set("")
	s.Profile.Set(nil)
	s.ChatList.Set(nil)
	s.ActiveChat.Set("")
	s.ActiveMessages.Set(nil)
	s.Busy.Set(false)
	s.BusyChats.Set(false)
	s.BusyMessages.Set(false)
}

// Reporter publishes failures on the event channel and clears Busy.
type Reporter struct {
	log   *slog.Logger
	state *State
}

func NewReporter(log *slog.Logger, state *State) *Reporter {
	return &Reporter{log: log, state: state}
}

func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	r.log.Warn("Operation failed", "error", err)
	r.state.LastEvent.Publish(errors.Message(err))
	r.state.Busy.Set(false)
}
