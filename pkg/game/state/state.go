package state

import (
	"go.uber.org/zap"

	"wormholes/pkg/game/worm"
)

// Session holds everything about one running game
type Session struct {
	Worm *worm.Worm

	Messages []string

	// Tick counts successful worm mutations
	Tick int

	// PendingGrowth is set while a tailless worm waits for the direction of its first segment
	PendingGrowth *worm.LengthenTaillessError

	Quit bool

	Log *zap.Logger
}

// NewSession creates a session around a worm. A nil logger discards log output.
func NewSession(w *worm.Worm, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		Worm:     w,
		Messages: make([]string, 0),
		Log:      log,
	}
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// AwaitingDirection reports whether a lengthen is waiting for a direction
func (s *Session) AwaitingDirection() bool {
	return s.PendingGrowth != nil
}
